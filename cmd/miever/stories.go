package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/miever/internal/box"
)

type storiesOptions struct {
	format string
	name   string
	list   bool
}

func newStoriesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &storiesOptions{}

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "Render the built-in box gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				for _, story := range box.Stories() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", story.Name, story.Description)
				}
				return nil
			}

			log, err := rootFlags.logger(cmd)
			if err != nil {
				return err
			}
			r, err := rootFlags.resolver(cmd, log)
			if err != nil {
				return err
			}

			stories := box.Stories()
			if opts.name != "" {
				story, ok := box.FindStory(opts.name)
				if !ok {
					return newCommandError("stories", fmt.Sprintf("finding story %q", opts.name), errors.New("no such story"), "Run 'miever stories --list' to see the gallery.")
				}
				stories = []box.Story{story}
			}

			roots := make([]box.Box, len(stories))
			for i, story := range stories {
				roots[i] = story.Root
			}
			return renderBoxes(cmd, r, opts.format, roots)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "terminal", "Output format: html or terminal")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Render a single story")
	cmd.Flags().BoolVar(&opts.list, "list", false, "List story names")

	return cmd
}
