// Package parser implements the Monkey recursive-descent parser.
//
// The parser reads a token stream from a [lexer.Lexer] and builds an
// [ast.Program]. Expression parsing uses Pratt (top-down operator precedence)
// so that precedence rules are encoded in a small table rather than a tangle
// of grammar rules.
//
// Usage:
//
//	l := lexer.New(source)
//	p := parser.New(l)
//	prog := p.ParseProgram()
//	if errs := p.Errors(); len(errs) != 0 { ... }
//
// Error recovery: the parser records a [Diagnostic], abandons the statement it
// was working on and moves on by one token, so several problems can be
// reported in a single pass and ParseProgram always terminates.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/metaphox/monkey/ast"
	"github.com/metaphox/monkey/lexer"
)

// ── Operator precedence ───────────────────────────────────────────────────────

// precedence orders operators from loosest to tightest binding.
// It is only ever compared, never stored in the tree.
type precedence int

const (
	precLowest      precedence = iota + 1
	precEquals                 // == !=
	precLessGreater            // < >
	precSum                    // + -
	precProduct                // * /
	precPrefix                 // -x  !x
	precCall                   // f(x)
	precIndex                  // reserved: Monkey has no index operator token yet
)

// tokenPrecedence maps a TokenType to its infix precedence level.
// Tokens not in this map have precLowest and never continue an expression.
var tokenPrecedence = map[ast.TokenType]precedence{
	ast.EQ:       precEquals,
	ast.NOT_EQ:   precEquals,
	ast.LT:       precLessGreater,
	ast.GT:       precLessGreater,
	ast.PLUS:     precSum,
	ast.MINUS:    precSum,
	ast.SLASH:    precProduct,
	ast.ASTERISK: precProduct,
	ast.LPAREN:   precCall,
}

// ── Parser ────────────────────────────────────────────────────────────────────

// prefixParseFn parses an expression that starts with the current token.
type prefixParseFn func() ast.Expression

// infixParseFn parses the continuation of left, with the operator as the
// current token.
type infixParseFn func(left ast.Expression) ast.Expression

// Parser holds all state needed to parse one Monkey program.
// Create one with [New] and call [Parser.ParseProgram].
type Parser struct {
	l      *lexer.Lexer
	cur    ast.Token // current token (the one being examined)
	peek   ast.Token // next token (one-token look-ahead)
	errors []*Diagnostic

	prefixFns map[ast.TokenType]prefixParseFn
	infixFns  map[ast.TokenType]infixParseFn
}

// New creates a Parser that reads tokens from l. The parser owns l from now on.
// It primes the two-token lookahead and registers all parse functions.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:         l,
		prefixFns: make(map[ast.TokenType]prefixParseFn),
		infixFns:  make(map[ast.TokenType]infixParseFn),
	}

	// ── Prefix (nud) functions ────────────────────────────────────────────────
	p.registerPrefix(ast.IDENT, p.parseIdentifier)
	p.registerPrefix(ast.INT, p.parseIntegerLiteral)
	p.registerPrefix(ast.TRUE, p.parseBoolean)
	p.registerPrefix(ast.FALSE, p.parseBoolean)
	p.registerPrefix(ast.BANG, p.parsePrefixExpression)
	p.registerPrefix(ast.MINUS, p.parsePrefixExpression)
	p.registerPrefix(ast.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(ast.IF, p.parseIfExpression)
	p.registerPrefix(ast.FUNCTION, p.parseFunctionLiteral)

	// ── Infix (led) functions ─────────────────────────────────────────────────
	for _, tt := range []ast.TokenType{
		ast.PLUS, ast.MINUS, ast.ASTERISK, ast.SLASH,
		ast.EQ, ast.NOT_EQ, ast.LT, ast.GT,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(ast.LPAREN, p.parseCallExpression)

	// Prime the lookahead: after two advances, cur = first token, peek = second.
	p.advance()
	p.advance()

	return p
}

// Errors returns the diagnostics collected so far, in the order they occurred.
func (p *Parser) Errors() []*Diagnostic {
	return p.errors
}

// ErrorMessages returns the diagnostics rendered as strings.
func (p *Parser) ErrorMessages() []string {
	msgs := make([]string, 0, len(p.errors))
	for _, d := range p.errors {
		msgs = append(msgs, d.Error())
	}
	return msgs
}

// ParseProgram builds and returns the AST for the whole input. Statements that
// fail to parse are left out and the parse resumes after the next ';'; check
// Errors to know whether that happened.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Statements: []ast.Statement{}}
	for !p.curIs(ast.EOF) {
		n := len(p.errors)
		if s := p.parseStatement(); s != nil {
			prog.Statements = append(prog.Statements, s)
		} else if len(p.errors) > n {
			p.synchronize()
		}
		p.advance()
	}
	return prog
}

// ── Internal token management ─────────────────────────────────────────────────

// advance consumes one token from the lexer, shifting peek into cur.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// expect checks that the peek token matches tt. If so it advances and returns
// true; otherwise it records an error and returns false (no advance).
func (p *Parser) expect(tt ast.TokenType) bool {
	if p.peekIs(tt) {
		p.advance()
		return true
	}
	p.peekError(tt)
	return false
}

// curIs reports whether the current token has the given type.
func (p *Parser) curIs(tt ast.TokenType) bool { return p.cur.Type == tt }

// peekIs reports whether the peek token has the given type.
func (p *Parser) peekIs(tt ast.TokenType) bool { return p.peek.Type == tt }

// curPrecedence returns the precedence of the current token.
func (p *Parser) curPrecedence() precedence {
	if prec, ok := tokenPrecedence[p.cur.Type]; ok {
		return prec
	}
	return precLowest
}

// peekPrecedence returns the precedence of the peek token.
func (p *Parser) peekPrecedence() precedence {
	if prec, ok := tokenPrecedence[p.peek.Type]; ok {
		return prec
	}
	return precLowest
}

// peekError records that the peek token was not tt.
func (p *Parser) peekError(tt ast.TokenType) {
	p.errors = append(p.errors, &Diagnostic{
		Kind:     UnexpectedToken,
		Expected: tt,
		Got:      p.peek,
		Msg:      fmt.Sprintf("expected next token to be %s, got %s instead", tt, describe(p.peek)),
	})
}

// noPrefixParseFnError records an unexpected token in prefix position.
func (p *Parser) noPrefixParseFnError() {
	p.errors = append(p.errors, &Diagnostic{
		Kind: NoPrefixParseFn,
		Got:  p.cur,
		Msg:  fmt.Sprintf("no prefix parse function for %s found", describe(p.cur)),
	})
}

// describe renders a token for diagnostics: its type, plus the literal when
// the type alone does not say what was written.
func describe(tok ast.Token) string {
	switch tok.Type {
	case ast.IDENT, ast.INT, ast.ILLEGAL:
		return fmt.Sprintf("%s(%q)", tok.Type, tok.Literal)
	}
	return tok.Type.String()
}

// registerPrefix registers a prefix parse function for a token type.
func (p *Parser) registerPrefix(tt ast.TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

// registerInfix registers an infix parse function for a token type.
func (p *Parser) registerInfix(tt ast.TokenType, fn infixParseFn) {
	p.infixFns[tt] = fn
}

// ── Statement parsing ─────────────────────────────────────────────────────────

// parseStatement dispatches on the current token. Anything that is not a
// statement keyword is parsed as an expression statement. A stray ';' is an
// empty statement and produces nothing.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case ast.LET:
		return p.parseLetStatement()
	case ast.RETURN:
		return p.parseReturnStatement()
	case ast.SEMICOLON:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let name = expr [;]`.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.cur}

	if !p.expect(ast.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}

	if !p.expect(ast.ASSIGN) {
		return nil
	}
	p.advance() // move past '='

	stmt.Value = p.parseExpression(precLowest)
	if stmt.Value == nil {
		return nil
	}

	if p.peekIs(ast.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseReturnStatement parses `return expr [;]`.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.cur}
	p.advance() // move past 'return'

	stmt.ReturnValue = p.parseExpression(precLowest)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekIs(ast.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseExpressionStatement parses an expression followed by an optional ';'.
// The semicolon may be omitted at end of input or before '}'.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.cur}

	stmt.Expression = p.parseExpression(precLowest)
	if stmt.Expression == nil {
		return nil
	}

	if p.peekIs(ast.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseBlockStatement parses `{ stmts }`. The current token is '{'; on return
// it is the matching '}'. A block cut off by EOF is an error.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.cur, Statements: []ast.Statement{}}
	p.advance() // move past '{'

	for !p.curIs(ast.RBRACE) {
		if p.curIs(ast.EOF) {
			p.errors = append(p.errors, &Diagnostic{
				Kind:     UnexpectedToken,
				Expected: ast.RBRACE,
				Got:      p.cur,
				Msg:      fmt.Sprintf("expected %s to close block, got %s instead", ast.RBRACE, describe(p.cur)),
			})
			return nil
		}
		n := len(p.errors)
		if s := p.parseStatement(); s != nil {
			block.Statements = append(block.Statements, s)
		} else if len(p.errors) > n {
			p.synchronize()
			if !p.curIs(ast.SEMICOLON) {
				continue // '}' closes this block, EOF is reported above
			}
		}
		p.advance()
	}
	return block
}

// synchronize skips the rest of a statement that failed to parse. It stops on
// the ';' that ends it, or on a '}' or EOF that belongs to an enclosing
// construct. Braces opened inside the failed statement are skipped whole.
func (p *Parser) synchronize() {
	depth := 0
	for !p.curIs(ast.EOF) {
		switch p.cur.Type {
		case ast.SEMICOLON:
			if depth == 0 {
				return
			}
		case ast.LBRACE:
			depth++
		case ast.RBRACE:
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}

// ── Expression parsing ────────────────────────────────────────────────────────

// parseExpression is the Pratt loop. It parses a prefix expression and then
// keeps folding infix operators into it while they bind tighter than prec.
// Equal precedence stops the loop, which makes binary operators left-associative.
func (p *Parser) parseExpression(prec precedence) ast.Expression {
	prefix := p.prefixFns[p.cur.Type]
	if prefix == nil {
		p.noPrefixParseFnError()
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekIs(ast.SEMICOLON) && prec < p.peekPrecedence() {
		infix := p.infixFns[p.peek.Type]
		if infix == nil {
			return left
		}
		p.advance()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// ── Prefix parse functions ────────────────────────────────────────────────────

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
}

// parseIntegerLiteral converts the INT literal to int64. Literals that do not
// fit are reported instead of wrapping or panicking.
func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.cur
	val, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("could not parse %q as integer", tok.Literal)
		if errors.Is(err, strconv.ErrRange) {
			msg = fmt.Sprintf("integer literal %q out of range", tok.Literal)
		}
		p.errors = append(p.errors, &Diagnostic{Kind: InvalidInteger, Got: tok, Msg: msg})
		return nil
	}
	return &ast.IntegerLiteral{Token: tok, Value: val}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.cur, Value: p.curIs(ast.TRUE)}
}

// parsePrefixExpression handles `!x` and `-x`. The operand binds at prefix
// precedence, so -a * b is (-a) * b.
func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.cur, Operator: p.cur.Literal}
	p.advance()

	expr.Right = p.parseExpression(precPrefix)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseGroupedExpression handles `(expr)`. No node is produced; the grouping
// only resets precedence.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance() // move past '('
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	if !p.expect(ast.RPAREN) {
		return nil
	}
	return expr
}

// parseIfExpression handles `if (cond) { ... } [else { ... }]`.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.cur}

	if !p.expect(ast.LPAREN) {
		return nil
	}
	p.advance() // move to condition
	expr.Condition = p.parseExpression(precLowest)
	if expr.Condition == nil {
		return nil
	}
	if !p.expect(ast.RPAREN) {
		return nil
	}

	if !p.expect(ast.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekIs(ast.ELSE) {
		p.advance() // consume 'else'
		if !p.expect(ast.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
		if expr.Alternative == nil {
			return nil
		}
	}
	return expr
}

// parseFunctionLiteral handles `fn(a, b) { ... }`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.cur}

	if !p.expect(ast.LPAREN) {
		return nil
	}
	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	fn.Parameters = params

	if !p.expect(ast.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}
	return fn
}

// parseFunctionParameters parses `a, b, c)` with the current token on '('.
// On success the current token is ')'.
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	params := []*ast.Identifier{}

	if p.peekIs(ast.RPAREN) {
		p.advance()
		return params, true
	}

	if !p.expect(ast.IDENT) {
		return nil, false
	}
	params = append(params, &ast.Identifier{Token: p.cur, Value: p.cur.Literal})

	for p.peekIs(ast.COMMA) {
		p.advance() // consume ','
		if !p.expect(ast.IDENT) {
			return nil, false
		}
		params = append(params, &ast.Identifier{Token: p.cur, Value: p.cur.Literal})
	}

	if !p.expect(ast.RPAREN) {
		return nil, false
	}
	return params, true
}

// ── Infix parse functions ─────────────────────────────────────────────────────

// parseInfixExpression handles all binary operators. The right operand is
// parsed at the operator's own precedence, which makes them left-associative.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.cur, Operator: p.cur.Literal, Left: left}

	prec := p.curPrecedence()
	p.advance()
	expr.Right = p.parseExpression(prec)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseCallExpression handles `fn(args)` with the current token on '('.
func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	call := &ast.CallExpression{Token: p.cur, Function: fn}
	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	call.Arguments = args
	return call
}

// parseCallArguments parses `a, b + 1, c)` with the current token on '('.
func (p *Parser) parseCallArguments() ([]ast.Expression, bool) {
	args := []ast.Expression{}

	if p.peekIs(ast.RPAREN) {
		p.advance()
		return args, true
	}

	p.advance() // move to first argument
	arg := p.parseExpression(precLowest)
	if arg == nil {
		return nil, false
	}
	args = append(args, arg)

	for p.peekIs(ast.COMMA) {
		p.advance() // consume ','
		p.advance() // move to next argument
		arg := p.parseExpression(precLowest)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
	}

	if !p.expect(ast.RPAREN) {
		return nil, false
	}
	return args, true
}
