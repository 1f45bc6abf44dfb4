package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metaphox/monkey/config"
	"github.com/metaphox/monkey/repl"
)

// options carries the persistent flags and the state derived from them.
type options struct {
	cfgFile string
	format  string
	verbose bool
	noColor bool

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "monkey",
		Short: "Monkey lexer and parser",
		Long: `monkey scans and parses programs written in the Monkey language.

Without a subcommand an interactive session is started.

Commands:
  repl   - interactive session (default)
  lex    - print the tokens of a program
  parse  - print the syntax tree of a program`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $"+config.EnvVar+", ./monkey.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newREPLCmd(opts),
		newLexCmd(opts),
		newParseCmd(opts),
	)
	return rootCmd
}

// Execute runs the command line and reports any error on stderr.
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}

// load reads the configuration and applies the flag overrides on top of it.
func (o *options) load(cmd *cobra.Command) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if o.cfgFile != "" {
		path = o.cfgFile
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, path, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = strings.ToLower(o.format)
	}
	if o.noColor {
		cfg.Output.Color = false
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	o.cfg = cfg
	o.log = newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	if path != "" {
		o.log.Debug("config loaded", "path", path)
	}
	return nil
}

func (o *options) renderer() *repl.Renderer {
	return repl.NewRenderer(o.cfg.Output.Format, repl.NewStyles(o.cfg.Output.Color))
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
