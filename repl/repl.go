// Package repl implements the line-oriented front end of the monkey tool.
//
// Each input line is an independent program: it is scanned and either its
// tokens or its syntax tree are printed, followed by any diagnostics. Lines
// starting with ':' are commands (:tokens, :ast, :quit).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/metaphox/monkey/config"
	"github.com/metaphox/monkey/lexer"
	"github.com/metaphox/monkey/parser"
)

const banner = "Monkey front end. Commands: :tokens, :ast, :quit"

// REPL reads source lines and prints what the lexer or parser makes of them.
type REPL struct {
	prompt   string
	mode     string
	banner   bool
	styles   Styles
	renderer *Renderer
	log      *slog.Logger
}

// New creates a REPL from cfg. A nil logger discards log output.
func New(cfg *config.Config, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	styles := NewStyles(cfg.Output.Color)
	return &REPL{
		prompt:   cfg.REPL.Prompt,
		mode:     cfg.REPL.Mode,
		banner:   cfg.REPL.Banner,
		styles:   styles,
		renderer: NewRenderer(cfg.Output.Format, styles),
		log:      logger,
	}
}

// Mode returns the current display mode ("tokens" or "ast").
func (r *REPL) Mode() string { return r.mode }

// Run reads lines from in until EOF or :quit, writing results to out.
func (r *REPL) Run(in io.Reader, out io.Writer) error {
	if r.banner {
		fmt.Fprintln(out, r.styles.banner(banner))
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, r.styles.prompt(r.prompt))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ":") {
			quit, err := r.command(out, line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			continue
		}
		if line == "" {
			continue
		}
		if err := r.Eval(out, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Eval processes one line of source in the current mode.
func (r *REPL) Eval(out io.Writer, src string) error {
	if r.mode == config.ModeTokens {
		toks := lexer.Tokenize(src)
		r.log.Debug("scanned line", "tokens", len(toks))
		return r.renderer.Tokens(out, toks)
	}

	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	errs := p.Errors()
	r.log.Debug("parsed line", "statements", len(prog.Statements), "errors", len(errs))

	return r.renderer.Result(out, prog, errs)
}

// command handles a ':' line and reports whether the loop should stop.
func (r *REPL) command(out io.Writer, line string) (bool, error) {
	switch line {
	case ":q", ":quit":
		return true, nil
	case ":tokens":
		r.mode = config.ModeTokens
	case ":ast":
		r.mode = config.ModeAST
	default:
		r.log.Warn("unknown command", "command", line)
		_, err := fmt.Fprintf(out, "%s unknown command %q\n", r.styles.errorLabel("error:"), line)
		return false, err
	}
	r.log.Info("mode changed", "mode", r.mode)
	return false, nil
}
