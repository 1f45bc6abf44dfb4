package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metaphox/monkey/lexer"
	"github.com/metaphox/monkey/parser"
)

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the syntax tree of a program",
		Long: `Parses a Monkey program and prints its syntax tree.

The program is read from file, or from stdin when file is "-" or omitted.
Diagnostics are written to stderr and make the command exit non-zero; the
statements that did parse are still printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			p := parser.New(lexer.New(src))
			prog := p.ParseProgram()
			errs := p.Errors()
			opts.log.Debug("parsed", "source", name, "statements", len(prog.Statements), "errors", len(errs))

			rd := opts.renderer()
			if len(errs) > 0 {
				if err := rd.Diagnostics(cmd.ErrOrStderr(), errs); err != nil {
					return err
				}
				if len(prog.Statements) > 0 {
					if err := rd.Program(cmd.OutOrStdout(), prog); err != nil {
						return err
					}
				}
				return fmt.Errorf("%s: %d syntax error(s)", name, len(errs))
			}
			return rd.Program(cmd.OutOrStdout(), prog)
		},
	}
}
