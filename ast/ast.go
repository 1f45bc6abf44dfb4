// Every source construct has a corresponding node type. The hierarchy is:
//
//	Node (interface)
//	  Statement (interface)
//	    LetStatement, ReturnStatement, ExpressionStatement, BlockStatement
//	  Expression (interface)
//	    Identifier, IntegerLiteral, Boolean
//	    PrefixExpression, InfixExpression
//	    IfExpression, FunctionLiteral, CallExpression
//
// Nodes own their children exclusively; the tree has no back references.
// Positional information is available through the Token field of each node.

package ast

import (
	"fmt"
	"strings"
)

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element in the Monkey AST.
type Node interface {
	// TokenLiteral returns the literal string of the token that began this node.
	TokenLiteral() string
	// String returns a compact, fully parenthesised rendering of the node.
	// It is intended for debugging and test output, not pretty-printing.
	String() string
}

// Statement is a Node that appears directly in a Program or a block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// ── Top-level program ─────────────────────────────────────────────────────────

// Program is the root AST node produced by the parser. Statements are kept in
// source order; an empty program is valid.
type Program struct {
	Statements []Statement
}

// TokenLiteral returns the literal of the first statement's starting token,
// or "" for an empty program.
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String returns all statements concatenated, useful for snapshot testing.
func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// ── Statements ────────────────────────────────────────────────────────────────

// LetStatement binds a name to a value.
//
//	let x = 5;
type LetStatement struct {
	Token Token // the 'let' token
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) statementNode()       {}
func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LetStatement) String() string {
	return fmt.Sprintf("%s %s = %s;", s.TokenLiteral(), s.Name.String(), exprString(s.Value))
}

// ReturnStatement returns a value from the enclosing function.
//
//	return 5;
type ReturnStatement struct {
	Token       Token // the 'return' token
	ReturnValue Expression
}

func (s *ReturnStatement) statementNode()       {}
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStatement) String() string {
	return fmt.Sprintf("%s %s;", s.TokenLiteral(), exprString(s.ReturnValue))
}

// ExpressionStatement wraps an expression used in statement position.
//
//	x + 10;
type ExpressionStatement struct {
	Token      Token // the first token of the expression
	Expression Expression
}

func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) String() string       { return exprString(s.Expression) }

// BlockStatement is a brace-delimited list of statements, used as the body
// of if branches and function literals.
type BlockStatement struct {
	Token      Token // the '{' token
	Statements []Statement
}

func (s *BlockStatement) statementNode()       {}
func (s *BlockStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BlockStatement) String() string {
	var out strings.Builder
	for _, st := range s.Statements {
		out.WriteString(st.String())
	}
	return out.String()
}

// ── Expressions ───────────────────────────────────────────────────────────────

// Identifier is a bare name: foobar
type Identifier struct {
	Token Token // the IDENT token
	Value string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) String() string       { return e.Value }

// IntegerLiteral is a decimal integer: 5
type IntegerLiteral struct {
	Token Token
	Value int64
}

func (e *IntegerLiteral) expressionNode()      {}
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntegerLiteral) String() string       { return e.Token.Literal }

// Boolean is true or false.
type Boolean struct {
	Token Token
	Value bool
}

func (e *Boolean) expressionNode()      {}
func (e *Boolean) TokenLiteral() string { return e.Token.Literal }
func (e *Boolean) String() string       { return e.Token.Literal }

// PrefixExpression applies a unary operator: !ok  -x
// Operator is "!" (logical not) or "-" (negation).
type PrefixExpression struct {
	Token    Token // the operator token
	Operator string
	Right    Expression
}

func (e *PrefixExpression) expressionNode()      {}
func (e *PrefixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *PrefixExpression) String() string {
	return "(" + e.Operator + exprString(e.Right) + ")"
}

// InfixExpression applies a binary operator: a + b
type InfixExpression struct {
	Token    Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) expressionNode()      {}
func (e *InfixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *InfixExpression) String() string {
	return "(" + exprString(e.Left) + " " + e.Operator + " " + exprString(e.Right) + ")"
}

// IfExpression is a conditional with an optional else branch.
//
//	if (x < y) { x } else { y }
type IfExpression struct {
	Token       Token // the 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil when there is no else branch
}

func (e *IfExpression) expressionNode()      {}
func (e *IfExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IfExpression) String() string {
	var out strings.Builder
	out.WriteString("if")
	out.WriteString(exprString(e.Condition))
	out.WriteString(" ")
	out.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		out.WriteString("else ")
		out.WriteString(e.Alternative.String())
	}
	return out.String()
}

// FunctionLiteral is an anonymous function.
//
//	fn(x, y) { x + y; }
type FunctionLiteral struct {
	Token      Token // the 'fn' token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (e *FunctionLiteral) expressionNode()      {}
func (e *FunctionLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *FunctionLiteral) String() string {
	params := make([]string, 0, len(e.Parameters))
	for _, p := range e.Parameters {
		params = append(params, p.String())
	}
	return fmt.Sprintf("%s(%s) %s", e.TokenLiteral(), strings.Join(params, ", "), e.Body.String())
}

// CallExpression applies a function to arguments: add(1, 2 * 3)
// Function is an Identifier or a FunctionLiteral.
type CallExpression struct {
	Token     Token // the '(' token
	Function  Expression
	Arguments []Expression
}

func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpression) String() string {
	args := make([]string, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		args = append(args, exprString(a))
	}
	return exprString(e.Function) + "(" + strings.Join(args, ", ") + ")"
}

// exprString renders e, tolerating the nil left behind by a failed sub-parse.
func exprString(e Expression) string {
	if e == nil {
		return ""
	}
	return e.String()
}
