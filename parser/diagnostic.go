package parser

import (
	"fmt"

	"github.com/metaphox/monkey/ast"
)

// DiagnosticKind classifies a parse diagnostic.
type DiagnosticKind int

const (
	// UnexpectedToken means the peek token was not the one the grammar requires.
	UnexpectedToken DiagnosticKind = iota
	// NoPrefixParseFn means a token appeared where an expression must start but
	// nothing can start with it (including ILLEGAL tokens from the lexer).
	NoPrefixParseFn
	// InvalidInteger means an INT literal does not fit in an int64.
	InvalidInteger
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case NoPrefixParseFn:
		return "no prefix parse function"
	case InvalidInteger:
		return "invalid integer"
	default:
		return "unknown"
	}
}

// Diagnostic is a non-fatal parse problem. The parser records diagnostics and
// keeps going; an empty Errors() list means the program parsed cleanly.
type Diagnostic struct {
	Kind     DiagnosticKind
	Expected ast.TokenType // meaningful for UnexpectedToken only
	Got      ast.Token     // the offending token
	Msg      string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s", d.Got.Line, d.Got.Col, d.Msg)
}
