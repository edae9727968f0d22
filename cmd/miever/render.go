package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/miever/internal/box"
	"github.com/alexisbeaulieu97/miever/internal/config"
	"github.com/alexisbeaulieu97/miever/internal/logger"
	"github.com/alexisbeaulieu97/miever/internal/render"
	"github.com/alexisbeaulieu97/miever/pkg/style"
)

type renderOptions struct {
	format  string
	boxName string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <document.yaml>",
		Short: "Render the boxes of a document as HTML or terminal output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := rootFlags.logger(cmd)
			if err != nil {
				return err
			}

			doc, r, err := loadDocument(cmd, rootFlags, log, args[0])
			if err != nil {
				return err
			}

			boxes := doc.Boxes
			if opts.boxName != "" {
				b, err := findBox(cmd, doc, opts.boxName)
				if err != nil {
					return err
				}
				boxes = []box.Box{*b}
			}
			log.WithFields(map[string]any{"boxes": len(boxes), "format": opts.format}).Debug("rendering document")

			return renderBoxes(cmd, r, opts.format, boxes)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "html", "Output format: html or terminal")
	cmd.Flags().StringVarP(&opts.boxName, "box", "b", "", "Render only the named box")

	return cmd
}

func renderBoxes(cmd *cobra.Command, r *style.Resolver, format string, boxes []box.Box) error {
	var output string
	switch format {
	case "html":
		output = render.NewHTMLRenderer(r).RenderAll(boxes)
	case "terminal":
		output = render.NewTerminalRenderer(r, render.DefaultTerminalOptions()).RenderAll(boxes)
	default:
		return newCommandError(cmd.Name(), fmt.Sprintf("selecting output format %q", format), errors.New("unsupported format"), "Use html or terminal.")
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

// loadDocument parses a box document and builds its resolver. An explicit
// --tokens flag overrides the token file referenced by the document.
func loadDocument(cmd *cobra.Command, rootFlags *rootFlags, log *logger.Logger, path string) (*config.Document, *style.Resolver, error) {
	doc, err := config.ParseConfig(path)
	if err != nil {
		return nil, nil, newCommandError(cmd.Name(), fmt.Sprintf("loading document %q", path), err, "Check the YAML syntax and that every box name is unique.")
	}

	opts := []style.Option{unknownTokenWarning(log)}
	if cmd.Flags().Changed("scale") {
		opts = append(opts, style.WithScale(rootFlags.scale))
	}

	if cmd.Flags().Changed("tokens") {
		table, err := rootFlags.tokenTable(cmd)
		if err != nil {
			return nil, nil, err
		}
		scale := doc.Scale
		if cmd.Flags().Changed("scale") || scale <= 0 {
			scale = rootFlags.scale
		}
		return doc, style.NewResolver(table, style.WithScale(scale), unknownTokenWarning(log)), nil
	}

	r, err := doc.Resolver(opts...)
	if err != nil {
		return nil, nil, newCommandError(cmd.Name(), fmt.Sprintf("loading tokens for %q", path), err, "Check the tokens path in the document is correct.")
	}
	log.With("document", path).Debug("document loaded")
	return doc, r, nil
}

func findBox(cmd *cobra.Command, doc *config.Document, name string) (*box.Box, error) {
	b, ok := doc.Box(name)
	if !ok {
		return nil, newCommandError(cmd.Name(), fmt.Sprintf("finding box %q", name), errors.New("no such box"), fmt.Sprintf("Available boxes: %v", doc.Names()))
	}
	return b, nil
}
