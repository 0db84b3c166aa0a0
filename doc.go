/*
Package aldoc implements a small markup language and renders it as LaTeX or
plain text.

A document is a sequence of blocks separated by blank lines. A block that
starts with # is a heading whose level is the number of leading # characters.
A heading may be at most one level deeper than the heading before it, and the
first heading of a document must be level 1:

	# Groceries

	## Produce

A block that starts with a list marker is a list. Markers are the bullets -,
+ and *, or an enumerator followed by ., ) or -. Enumerators are decimal
numbers, single letters and roman numerals:

	1. fruit
		a) apples
		b) pears
	2. vegetables
		- leeks

Items of a nested list are indented by one more tab than their parent. An
item continues on following lines until the next marker at its own depth or
a blank line. Every other block is a paragraph. Within any text, a pair of *
characters marks a bold span:

	Remember to buy *fresh* bread.

The [github.com/matthewdargan/aldoc/parse] package builds documents,
[github.com/matthewdargan/aldoc/render] writes them, and
[github.com/matthewdargan/aldoc/pdf] hands LaTeX output to an external engine.
*/
package aldoc
