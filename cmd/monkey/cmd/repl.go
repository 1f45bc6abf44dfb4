package cmd

import (
	"github.com/spf13/cobra"

	"github.com/metaphox/monkey/config"
	"github.com/metaphox/monkey/repl"
)

func newREPLCmd(opts *options) *cobra.Command {
	var mode string

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Reads Monkey source line by line and prints its tokens or syntax tree.

Commands inside the session:
  :tokens  - print tokens
  :ast     - print the syntax tree
  :quit    - leave the session`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("mode") {
				opts.cfg.REPL.Mode = mode
				if err := opts.cfg.Validate(); err != nil {
					return err
				}
			}
			return runREPL(cmd, opts)
		},
	}

	replCmd.Flags().StringVar(&mode, "mode", config.ModeAST, "start mode: tokens or ast")
	return replCmd
}

func runREPL(cmd *cobra.Command, opts *options) error {
	opts.log.Debug("starting repl", "mode", opts.cfg.REPL.Mode, "format", opts.cfg.Output.Format)
	return repl.New(opts.cfg, opts.log).Run(cmd.InOrStdin(), cmd.OutOrStdout())
}
