package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/metaphox/monkey/lexer"
)

func newLexCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lex [file]",
		Short: "Print the tokens of a program",
		Long: `Scans a Monkey program and prints every token with its position.

The program is read from file, or from stdin when file is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			toks := lexer.Tokenize(src)
			opts.log.Debug("scanned", "source", name, "tokens", len(toks))
			return opts.renderer().Tokens(cmd.OutOrStdout(), toks)
		},
	}
}

// readSource returns the program named by args together with a display name
// for it.
func readSource(stdin io.Reader, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read source: %w", err)
	}
	return string(data), args[0], nil
}
