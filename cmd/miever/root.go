package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/miever/internal/logger"
	"github.com/alexisbeaulieu97/miever/pkg/style"
	"github.com/alexisbeaulieu97/miever/pkg/tokens"
)

type rootFlags struct {
	verbose  bool
	logLevel string
	tokens   string
	scale    float64
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "miever",
		Short:         "Miever resolves box layout props into CSS declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&flags.tokens, "tokens", "t", "", "Path to a spacing token file (defaults to the built-in scale)")
	cmd.PersistentFlags().Float64Var(&flags.scale, "scale", style.DefaultScale, "Pixels per numeric spacing unit")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newStoriesCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// isTerminal is swapped out in tests.
var isTerminal = func(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}

	out := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{Level: level, HumanReadable: isTerminal(out), Writer: out})
	if err != nil {
		return nil, newCommandError(cmd.Name(), fmt.Sprintf("configuring log level %q", level), err, "Use one of debug, info, warn or error.")
	}
	return log.With("command", cmd.Name()), nil
}

func (f *rootFlags) tokenTable(cmd *cobra.Command) (tokens.Table, error) {
	if f.tokens == "" {
		return tokens.Default(), nil
	}
	table, err := tokens.Load(f.tokens)
	if err != nil {
		return tokens.Table{}, newCommandError(cmd.Name(), fmt.Sprintf("loading tokens from %q", f.tokens), err, "Check the token file exists and lists unique names with non-empty values.")
	}
	return table, nil
}

func (f *rootFlags) resolver(cmd *cobra.Command, log *logger.Logger) (*style.Resolver, error) {
	table, err := f.tokenTable(cmd)
	if err != nil {
		return nil, err
	}
	log.WithFields(map[string]any{"tokens": table.Len(), "scale": f.scale}).Debug("token table ready")
	return style.NewResolver(table, style.WithScale(f.scale), unknownTokenWarning(log)), nil
}

func unknownTokenWarning(log *logger.Logger) style.Option {
	return style.WithUnknownToken(func(field, name string) {
		log.WithFields(map[string]any{"field": field, "token": name}).Warn("unknown spacing token, passing value through")
	})
}
