package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/miever/internal/render"
)

type applyOptions struct {
	boxName  string
	selector string
}

func newApplyCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply <document.yaml> <page.html>",
		Short: "Merge a box's resolved style into matching elements of an HTML page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := rootFlags.logger(cmd)
			if err != nil {
				return err
			}

			doc, r, err := loadDocument(cmd, rootFlags, log, args[0])
			if err != nil {
				return err
			}
			b, err := findBox(cmd, doc, opts.boxName)
			if err != nil {
				return err
			}

			selector := opts.selector
			if selector == "" {
				selector = "#" + b.Name
			}

			file, err := os.Open(args[1])
			if err != nil {
				return newCommandError("apply", fmt.Sprintf("opening page %q", args[1]), err, "Check the HTML file exists and is readable.")
			}
			defer file.Close()

			page, err := goquery.NewDocumentFromReader(file)
			if err != nil {
				return newCommandError("apply", fmt.Sprintf("parsing page %q", args[1]), err, "Check the file contains HTML.")
			}

			matched, err := render.Apply(page, selector, b.Declarations(r))
			if err != nil {
				return newCommandError("apply", fmt.Sprintf("merging style into %q", selector), err, "Fix the existing style attribute on the matched elements.")
			}
			if matched == 0 {
				return newCommandError("apply", fmt.Sprintf("matching %q", selector), errors.New("no elements matched"), "Pass --selector to target existing elements.")
			}
			log.WithFields(map[string]any{"selector": selector, "matched": matched}).Info("style applied")

			html, err := page.Html()
			if err != nil {
				return newCommandError("apply", "serialising page", err, "Report this as a bug.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.boxName, "box", "b", "", "Box whose style is applied")
	cmd.Flags().StringVarP(&opts.selector, "selector", "s", "", "CSS selector of target elements (defaults to #<box>)")
	cmd.MarkFlagRequired("box") //nolint:errcheck

	return cmd
}
