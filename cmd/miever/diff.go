package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/miever/pkg/diff"
)

type diffOptions struct {
	boxName string
	raw     bool
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <a.yaml> <b.yaml>",
		Short: "Show how a box's resolved style differs between two documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := rootFlags.logger(cmd)
			if err != nil {
				return err
			}

			before, beforeResolver, err := loadDocument(cmd, rootFlags, log, args[0])
			if err != nil {
				return err
			}
			after, afterResolver, err := loadDocument(cmd, rootFlags, log, args[1])
			if err != nil {
				return err
			}

			a, err := findBox(cmd, before, opts.boxName)
			if err != nil {
				return err
			}
			b, err := findBox(cmd, after, opts.boxName)
			if err != nil {
				return err
			}

			expected := a.Declarations(beforeResolver)
			actual := b.Declarations(afterResolver)
			if !opts.raw {
				expected = expected.Computed()
				actual = actual.Computed()
			}

			out := diff.Styles(expected, actual, args[0], args[1])
			if out == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no differences\n", opts.boxName)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.boxName, "box", "b", "", "Box to compare")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Compare declaration lists before cascade evaluation")
	cmd.MarkFlagRequired("box") //nolint:errcheck

	return cmd
}
