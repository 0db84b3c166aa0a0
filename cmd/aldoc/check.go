package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthewdargan/aldoc/parse"
)

// stats counts the blocks of a document.
type stats struct {
	headings, paragraphs, lists, items int
}

func (s *stats) add(doc *parse.Document) {
	for _, blk := range doc.Blocks {
		switch blk := blk.(type) {
		case parse.Heading:
			s.headings++
		case parse.Paragraph:
			s.paragraphs++
		case parse.List:
			s.lists++
			s.addList(blk)
		}
	}
}

func (s *stats) addList(l parse.List) {
	for _, item := range l.Items {
		s.items++
		if item.List != nil {
			s.addList(*item.List)
		}
	}
}

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <input>...",
		Short: "Report syntax errors without writing output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				doc, err := readDocument(cmd, name)
				if err != nil {
					return err
				}
				var s stats
				s.add(doc)
				a.log.Debug("checked document", "input", name, "blocks", len(doc.Blocks))
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok: %d headings, %d paragraphs, %d lists, %d list items\n",
					name, s.headings, s.paragraphs, s.lists, s.items)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
