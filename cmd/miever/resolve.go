package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/miever/internal/box"
	"github.com/alexisbeaulieu97/miever/internal/render"
	"github.com/alexisbeaulieu97/miever/pkg/style"
)

const tokenPrefix = "token:"

type resolveOptions struct {
	flex      bool
	direction string
	justify   string
	align     string
	width     string
	height    string
	padding   string
	paddingX  string
	paddingY  string
	format    string
	strict    bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve box props into CSS declarations",
		Long: `Resolve box props into an ordered list of CSS declarations.

Length flags accept a number (pixels), any CSS text, or token:<name> to
reference a spacing token explicitly. Numeric padding is multiplied by --scale.`,
		Example: `  miever resolve --flex --direction row --padding sm
  miever resolve --width 200 --padding-x 2 --format computed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.flex, "flex", false, "Use display: flex")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "flex-direction keyword")
	cmd.Flags().StringVar(&opts.justify, "justify", "", "justify-content keyword")
	cmd.Flags().StringVar(&opts.align, "align", "", "align-items keyword")
	cmd.Flags().StringVar(&opts.width, "width", "", "Width")
	cmd.Flags().StringVar(&opts.height, "height", "", "Height")
	cmd.Flags().StringVar(&opts.padding, "padding", "", "Padding on every side")
	cmd.Flags().StringVar(&opts.paddingX, "padding-x", "", "Left and right padding")
	cmd.Flags().StringVar(&opts.paddingY, "padding-y", "", "Top and bottom padding")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "css", "Output format: css, computed, json or html")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on unknown keywords or tokens")

	return cmd
}

func (o *resolveOptions) request() style.Request {
	return style.Request{
		FlexBox:        o.flex,
		Direction:      o.direction,
		JustifyContent: o.justify,
		AlignItems:     o.align,
		Width:          parseFlagLength(o.width),
		Height:         parseFlagLength(o.height),
		Padding:        parseFlagLength(o.padding),
		PaddingX:       parseFlagLength(o.paddingX),
		PaddingY:       parseFlagLength(o.paddingY),
	}
}

func parseFlagLength(value string) style.Length {
	if name, ok := strings.CutPrefix(value, tokenPrefix); ok {
		return style.Token(name)
	}
	return style.ParseLength(value)
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions) error {
	log, err := rootFlags.logger(cmd)
	if err != nil {
		return err
	}
	r, err := rootFlags.resolver(cmd, log)
	if err != nil {
		return err
	}

	req := opts.request()
	if issues := style.Check(req, r.Tokens()); len(issues) > 0 {
		for _, issue := range issues {
			log.With("issue", issue.String()).Warn("suspicious prop")
		}
		if opts.strict {
			lines := make([]string, len(issues))
			for i, issue := range issues {
				lines[i] = issue.String()
			}
			return newCommandError("resolve", "checking props", errors.New(strings.Join(lines, "; ")), "Use a listed keyword or declare the token in your token file.")
		}
	}

	decls := r.Resolve(req)
	log.With("format", opts.format).Debug("resolved style")
	return writeDeclarations(cmd, opts.format, decls, func() string {
		return render.NewHTMLRenderer(r).Render(box.Box{Request: req})
	})
}

func writeDeclarations(cmd *cobra.Command, format string, decls style.Declarations, html func() string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "css":
		for _, d := range decls {
			fmt.Fprintln(out, d.String())
		}
	case "computed":
		for _, d := range decls.Computed() {
			fmt.Fprintln(out, d.String())
		}
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if decls == nil {
			decls = style.Declarations{}
		}
		return encoder.Encode(decls)
	case "html":
		fmt.Fprintln(out, html())
	default:
		return newCommandError(cmd.Name(), fmt.Sprintf("selecting output format %q", format), errors.New("unsupported format"), "Use one of css, computed, json or html.")
	}
	return nil
}
