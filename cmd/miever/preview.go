package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/miever/internal/box"
	"github.com/alexisbeaulieu97/miever/internal/tui/preview"
	"github.com/alexisbeaulieu97/miever/pkg/style"
)

type previewOptions struct {
	story    string
	document string
	boxName  string
}

var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively tweak a box's layout props",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("preview", "starting the interactive preview", errors.New("stdout is not a terminal"), "Use 'miever stories --format terminal' for non-interactive output.")
			}

			log, err := rootFlags.logger(cmd)
			if err != nil {
				return err
			}

			var (
				root box.Box
				r    *style.Resolver
			)
			if opts.document != "" {
				doc, docResolver, err := loadDocument(cmd, rootFlags, log, opts.document)
				if err != nil {
					return err
				}
				root, r = doc.Boxes[0], docResolver
				if opts.boxName != "" {
					b, err := findBox(cmd, doc, opts.boxName)
					if err != nil {
						return err
					}
					root = *b
				}
			} else {
				story, ok := box.FindStory(opts.story)
				if !ok {
					return newCommandError("preview", fmt.Sprintf("finding story %q", opts.story), errors.New("no such story"), "Run 'miever stories --list' to see the gallery.")
				}
				if r, err = rootFlags.resolver(cmd, log); err != nil {
					return err
				}
				root = story.Root
			}

			return runProgram(preview.New(r, root))
		},
	}

	cmd.Flags().StringVarP(&opts.story, "story", "s", "flexbox", "Story to preview")
	cmd.Flags().StringVarP(&opts.document, "document", "d", "", "Preview a box from a document instead of a story")
	cmd.Flags().StringVarP(&opts.boxName, "box", "b", "", "Box within --document (defaults to the first)")

	return cmd
}
