package repl

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/metaphox/monkey/ast"
	"github.com/metaphox/monkey/config"
	"github.com/metaphox/monkey/parser"
)

// tokenView is the serialisable form of a token.
type tokenView struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Col     int    `json:"col" yaml:"col"`
}

// nodeView is the serialisable form of any AST node. Only the fields that
// make sense for Type are set.
type nodeView struct {
	Type        string      `json:"type" yaml:"type"`
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	Operator    string      `json:"operator,omitempty" yaml:"operator,omitempty"`
	Value       any         `json:"value,omitempty" yaml:"value,omitempty"`
	Expression  *nodeView   `json:"expression,omitempty" yaml:"expression,omitempty"`
	Left        *nodeView   `json:"left,omitempty" yaml:"left,omitempty"`
	Right       *nodeView   `json:"right,omitempty" yaml:"right,omitempty"`
	Condition   *nodeView   `json:"condition,omitempty" yaml:"condition,omitempty"`
	Consequence *nodeView   `json:"consequence,omitempty" yaml:"consequence,omitempty"`
	Alternative *nodeView   `json:"alternative,omitempty" yaml:"alternative,omitempty"`
	Parameters  []string    `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Body        *nodeView   `json:"body,omitempty" yaml:"body,omitempty"`
	Function    *nodeView   `json:"function,omitempty" yaml:"function,omitempty"`
	Arguments   []*nodeView `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Statements  []*nodeView `json:"statements,omitempty" yaml:"statements,omitempty"`
	Line        int         `json:"line,omitempty" yaml:"line,omitempty"`
	Col         int         `json:"col,omitempty" yaml:"col,omitempty"`
}

// diagnosticView is the serialisable form of a parse diagnostic.
type diagnosticView struct {
	Kind     string `json:"kind" yaml:"kind"`
	Message  string `json:"message" yaml:"message"`
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Got      string `json:"got" yaml:"got"`
	Line     int    `json:"line" yaml:"line"`
	Col      int    `json:"col" yaml:"col"`
}

// resultView is the serialisable form of a parse that produced diagnostics.
type resultView struct {
	Errors  []diagnosticView `json:"errors" yaml:"errors"`
	Program *nodeView        `json:"program,omitempty" yaml:"program,omitempty"`
}

func viewTokens(toks []ast.Token) []tokenView {
	out := make([]tokenView, 0, len(toks))
	for _, t := range toks {
		out = append(out, tokenView{Type: t.Type.String(), Literal: t.Literal, Line: t.Line, Col: t.Col})
	}
	return out
}

func viewStatements(stmts []ast.Statement) []*nodeView {
	out := make([]*nodeView, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, view(s))
	}
	return out
}

// view converts a node into its serialisable form. A nil node maps to nil.
func view(n ast.Node) *nodeView {
	switch n := n.(type) {
	case *ast.Program:
		return &nodeView{Type: "Program", Statements: viewStatements(n.Statements)}
	case *ast.LetStatement:
		return &nodeView{Type: "Let", Name: n.Name.Value, Expression: viewExpr(n.Value), Line: n.Token.Line, Col: n.Token.Col}
	case *ast.ReturnStatement:
		return &nodeView{Type: "Return", Expression: viewExpr(n.ReturnValue), Line: n.Token.Line, Col: n.Token.Col}
	case *ast.ExpressionStatement:
		return &nodeView{Type: "ExpressionStatement", Expression: viewExpr(n.Expression), Line: n.Token.Line, Col: n.Token.Col}
	case *ast.BlockStatement:
		if n == nil {
			return nil
		}
		return &nodeView{Type: "Block", Statements: viewStatements(n.Statements), Line: n.Token.Line, Col: n.Token.Col}
	case *ast.Identifier:
		return &nodeView{Type: "Identifier", Name: n.Value, Line: n.Token.Line, Col: n.Token.Col}
	case *ast.IntegerLiteral:
		return &nodeView{Type: "IntegerLiteral", Value: n.Value, Line: n.Token.Line, Col: n.Token.Col}
	case *ast.Boolean:
		return &nodeView{Type: "Boolean", Value: n.Value, Line: n.Token.Line, Col: n.Token.Col}
	case *ast.PrefixExpression:
		return &nodeView{Type: "Prefix", Operator: n.Operator, Right: viewExpr(n.Right), Line: n.Token.Line, Col: n.Token.Col}
	case *ast.InfixExpression:
		return &nodeView{
			Type: "Infix", Operator: n.Operator,
			Left: viewExpr(n.Left), Right: viewExpr(n.Right),
			Line: n.Token.Line, Col: n.Token.Col,
		}
	case *ast.IfExpression:
		return &nodeView{
			Type:        "If",
			Condition:   viewExpr(n.Condition),
			Consequence: view(n.Consequence),
			Alternative: view(n.Alternative),
			Line:        n.Token.Line, Col: n.Token.Col,
		}
	case *ast.FunctionLiteral:
		params := make([]string, 0, len(n.Parameters))
		for _, p := range n.Parameters {
			params = append(params, p.Value)
		}
		return &nodeView{Type: "Function", Parameters: params, Body: view(n.Body), Line: n.Token.Line, Col: n.Token.Col}
	case *ast.CallExpression:
		args := make([]*nodeView, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			args = append(args, viewExpr(a))
		}
		return &nodeView{Type: "Call", Function: viewExpr(n.Function), Arguments: args, Line: n.Token.Line, Col: n.Token.Col}
	default:
		return nil
	}
}

func viewExpr(e ast.Expression) *nodeView {
	if e == nil {
		return nil
	}
	return view(e)
}

func viewDiagnostics(diags []*parser.Diagnostic) []diagnosticView {
	out := make([]diagnosticView, 0, len(diags))
	for _, d := range diags {
		v := diagnosticView{
			Kind:    d.Kind.String(),
			Message: d.Msg,
			Got:     d.Got.Type.String(),
			Line:    d.Got.Line,
			Col:     d.Got.Col,
		}
		if d.Kind == parser.UnexpectedToken {
			v.Expected = d.Expected.String()
		}
		out = append(out, v)
	}
	return out
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Renderer prints tokens, programs and diagnostics in one output format.
type Renderer struct {
	format string
	styles Styles
}

// NewRenderer returns a Renderer for format ("text", "json" or "yaml").
func NewRenderer(format string, styles Styles) *Renderer {
	return &Renderer{format: format, styles: styles}
}

// Tokens writes toks, one per line in text format.
func (r *Renderer) Tokens(w io.Writer, toks []ast.Token) error {
	if r.format != config.FormatText {
		return encode(w, r.format, viewTokens(toks))
	}
	for _, t := range toks {
		pos := r.styles.position(fmt.Sprintf("%d:%d", t.Line, t.Col))
		if _, err := fmt.Fprintf(w, "%s {%s, %q}\n", pos, t.Type, t.Literal); err != nil {
			return err
		}
	}
	return nil
}

// Program writes prog. Text format prints one statement per line.
func (r *Renderer) Program(w io.Writer, prog *ast.Program) error {
	if r.format != config.FormatText {
		return encode(w, r.format, view(prog))
	}
	for _, s := range prog.Statements {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}

// Diagnostics writes diags. Text format prints one styled line per diagnostic.
func (r *Renderer) Diagnostics(w io.Writer, diags []*parser.Diagnostic) error {
	if r.format != config.FormatText {
		return encode(w, r.format, map[string]any{"errors": viewDiagnostics(diags)})
	}
	for _, d := range diags {
		pos := r.styles.position(fmt.Sprintf("%d:%d", d.Got.Line, d.Got.Col))
		if _, err := fmt.Fprintf(w, "%s %s %s\n", r.styles.errorLabel("error:"), pos, d.Msg); err != nil {
			return err
		}
	}
	return nil
}

// Result writes the outcome of parsing one input: its diagnostics followed by
// the statements that did parse. Structured formats emit a single document
// with "errors" and "program" keys.
func (r *Renderer) Result(w io.Writer, prog *ast.Program, diags []*parser.Diagnostic) error {
	if len(diags) == 0 {
		return r.Program(w, prog)
	}
	if r.format != config.FormatText {
		doc := resultView{Errors: viewDiagnostics(diags)}
		if len(prog.Statements) > 0 {
			doc.Program = view(prog)
		}
		return encode(w, r.format, doc)
	}
	if err := r.Diagnostics(w, diags); err != nil {
		return err
	}
	return r.Program(w, prog)
}
