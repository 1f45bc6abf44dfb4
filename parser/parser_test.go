// Package parser_test contains tests for the Monkey Pratt parser.
//
// Each test parses a snippet, inspects the returned AST via type assertions,
// and fails with a descriptive message on mismatch.
//
// Test categories:
//   - Statements:   let, return, expression statements, optional semicolons
//   - Expressions:  identifiers, integers, booleans, prefix, infix (with
//                   precedence), grouping, if/else, fn literals, calls
//   - Diagnostics:  unexpected tokens, missing prefix functions, integer
//                   overflow, unterminated blocks, recovery
package parser_test

import (
	"reflect"
	"testing"

	"github.com/metaphox/monkey/ast"
	"github.com/metaphox/monkey/lexer"
	"github.com/metaphox/monkey/parser"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

// parse runs the full parser on input and fails the test if any parse errors
// were collected or if the number of top-level statements doesn't match want.
func parse(t *testing.T, input string, wantStmts int) *ast.Program {
	t.Helper()
	p := parser.New(lexer.New(input))
	prog := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		t.Errorf("parser produced %d error(s):", len(errs))
		for _, e := range errs {
			t.Errorf("  %s", e)
		}
		t.FailNow()
	}
	if len(prog.Statements) != wantStmts {
		t.Fatalf("expected %d statements, got %d", wantStmts, len(prog.Statements))
	}
	return prog
}

// parseWithErrors runs the parser and returns whatever it produced, errors included.
func parseWithErrors(input string) (*ast.Program, []*parser.Diagnostic) {
	p := parser.New(lexer.New(input))
	prog := p.ParseProgram()
	return prog, p.Errors()
}

// firstStmt returns the only statement of input.
func firstStmt(t *testing.T, input string) ast.Statement {
	t.Helper()
	return parse(t, input, 1).Statements[0]
}

// exprOf extracts the Expression from an ExpressionStatement.
func exprOf(t *testing.T, stmt ast.Statement) ast.Expression {
	t.Helper()
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", stmt)
	}
	return es.Expression
}

func assertIdent(t *testing.T, expr ast.Expression, name string) {
	t.Helper()
	id, ok := expr.(*ast.Identifier)
	if !ok {
		t.Fatalf("expected *ast.Identifier, got %T", expr)
	}
	if id.Value != name {
		t.Fatalf("identifier name: got %q, want %q", id.Value, name)
	}
	if id.TokenLiteral() != name {
		t.Fatalf("identifier token literal: got %q, want %q", id.TokenLiteral(), name)
	}
}

func assertIntLit(t *testing.T, expr ast.Expression, val int64) {
	t.Helper()
	lit, ok := expr.(*ast.IntegerLiteral)
	if !ok {
		t.Fatalf("expected *ast.IntegerLiteral, got %T", expr)
	}
	if lit.Value != val {
		t.Fatalf("IntegerLiteral value: got %d, want %d", lit.Value, val)
	}
}

func assertBool(t *testing.T, expr ast.Expression, val bool) {
	t.Helper()
	b, ok := expr.(*ast.Boolean)
	if !ok {
		t.Fatalf("expected *ast.Boolean, got %T", expr)
	}
	if b.Value != val {
		t.Fatalf("Boolean value: got %v, want %v", b.Value, val)
	}
}

func assertInfix(t *testing.T, expr ast.Expression, op string) *ast.InfixExpression {
	t.Helper()
	inf, ok := expr.(*ast.InfixExpression)
	if !ok {
		t.Fatalf("expected *ast.InfixExpression, got %T", expr)
	}
	if inf.Operator != op {
		t.Fatalf("infix operator: got %q, want %q", inf.Operator, op)
	}
	return inf
}

// ── Let / Return ──────────────────────────────────────────────────────────────

func TestParser_LetStatements(t *testing.T) {
	prog := parse(t, `
let x = 5;
let y = 10;
let foobar = 838383;`, 3)

	for i, name := range []string{"x", "y", "foobar"} {
		ls, ok := prog.Statements[i].(*ast.LetStatement)
		if !ok {
			t.Fatalf("stmt %d: expected *ast.LetStatement, got %T", i, prog.Statements[i])
		}
		if ls.TokenLiteral() != "let" {
			t.Errorf("stmt %d: token literal %q", i, ls.TokenLiteral())
		}
		if ls.Name.Value != name {
			t.Errorf("stmt %d: name got %q, want %q", i, ls.Name.Value, name)
		}
	}
}

func TestParser_LetValues(t *testing.T) {
	tests := []struct {
		input string
		name  string
		check func(t *testing.T, e ast.Expression)
	}{
		{"let x = 5;", "x", func(t *testing.T, e ast.Expression) { assertIntLit(t, e, 5) }},
		{"let y = true;", "y", func(t *testing.T, e ast.Expression) { assertBool(t, e, true) }},
		{"let foobar = y;", "foobar", func(t *testing.T, e ast.Expression) { assertIdent(t, e, "y") }},
		{"let z = 1 + 2", "z", func(t *testing.T, e ast.Expression) { assertInfix(t, e, "+") }},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			ls, ok := firstStmt(t, tc.input).(*ast.LetStatement)
			if !ok {
				t.Fatalf("expected *ast.LetStatement")
			}
			if ls.Name.Value != tc.name {
				t.Errorf("name: got %q, want %q", ls.Name.Value, tc.name)
			}
			tc.check(t, ls.Value)
		})
	}
}

func TestParser_ReturnStatements(t *testing.T) {
	prog := parse(t, `return 5; return 10;`, 2)
	for i, want := range []int64{5, 10} {
		rs, ok := prog.Statements[i].(*ast.ReturnStatement)
		if !ok {
			t.Fatalf("stmt %d: expected *ast.ReturnStatement, got %T", i, prog.Statements[i])
		}
		if rs.TokenLiteral() != "return" {
			t.Errorf("stmt %d: token literal %q", i, rs.TokenLiteral())
		}
		assertIntLit(t, rs.ReturnValue, want)
	}
}

func TestParser_ReturnExpression(t *testing.T) {
	rs := firstStmt(t, `return add(x, 1)`).(*ast.ReturnStatement)
	call, ok := rs.ReturnValue.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected *ast.CallExpression, got %T", rs.ReturnValue)
	}
	assertIdent(t, call.Function, "add")
}

func TestParser_EmptyProgram(t *testing.T) {
	for _, input := range []string{"", "   \n\t "} {
		prog := parse(t, input, 0)
		if prog.String() != "" {
			t.Errorf("input %q: String() = %q", input, prog.String())
		}
	}
}

// TestParser_OptionalSemicolons checks that semicolons terminate statements
// but are not required between them.
func TestParser_OptionalSemicolons(t *testing.T) {
	prog := parse(t, "x\ny; z", 3)
	assertIdent(t, exprOf(t, prog.Statements[0]), "x")
	assertIdent(t, exprOf(t, prog.Statements[1]), "y")
	assertIdent(t, exprOf(t, prog.Statements[2]), "z")
}

// ── Literals and prefix expressions ───────────────────────────────────────────

func TestParser_Identifier(t *testing.T) {
	assertIdent(t, exprOf(t, firstStmt(t, `foobar;`)), "foobar")
}

func TestParser_IntegerLiteral(t *testing.T) {
	assertIntLit(t, exprOf(t, firstStmt(t, `5;`)), 5)
	assertIntLit(t, exprOf(t, firstStmt(t, `9223372036854775807`)), 9223372036854775807)
}

func TestParser_Booleans(t *testing.T) {
	assertBool(t, exprOf(t, firstStmt(t, `true;`)), true)
	assertBool(t, exprOf(t, firstStmt(t, `false;`)), false)
}

func TestParser_PrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
		value    int64
	}{
		{"!5;", "!", 5},
		{"-15;", "-", 15},
	}
	for _, tc := range tests {
		pe, ok := exprOf(t, firstStmt(t, tc.input)).(*ast.PrefixExpression)
		if !ok {
			t.Fatalf("%q: expected *ast.PrefixExpression", tc.input)
		}
		if pe.Operator != tc.operator {
			t.Errorf("%q: operator got %q, want %q", tc.input, pe.Operator, tc.operator)
		}
		assertIntLit(t, pe.Right, tc.value)
	}
}

// ── Infix expressions and precedence ─────────────────────────────────────────

func TestParser_InfixExpressions(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/", ">", "<", "==", "!="} {
		inf := assertInfix(t, exprOf(t, firstStmt(t, "5 "+op+" 6;")), op)
		assertIntLit(t, inf.Left, 5)
		assertIntLit(t, inf.Right, 6)
	}

	inf := assertInfix(t, exprOf(t, firstStmt(t, "true != false")), "!=")
	assertBool(t, inf.Left, true)
	assertBool(t, inf.Right, false)
}

// TestParser_Precedence compares the parenthesised String() form of each
// program against the expected grouping.
func TestParser_Precedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			p := parser.New(lexer.New(tc.input))
			prog := p.ParseProgram()
			if errs := p.ErrorMessages(); len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if got := prog.String(); got != tc.expected {
				t.Errorf("got %q, want %q", got, tc.expected)
			}
		})
	}
}

// ── If / fn / call ────────────────────────────────────────────────────────────

func TestParser_IfExpression(t *testing.T) {
	ie, ok := exprOf(t, firstStmt(t, `if (x < y) { x }`)).(*ast.IfExpression)
	if !ok {
		t.Fatal("expected *ast.IfExpression")
	}
	cond := assertInfix(t, ie.Condition, "<")
	assertIdent(t, cond.Left, "x")
	assertIdent(t, cond.Right, "y")
	if len(ie.Consequence.Statements) != 1 {
		t.Fatalf("consequence: got %d statements, want 1", len(ie.Consequence.Statements))
	}
	assertIdent(t, exprOf(t, ie.Consequence.Statements[0]), "x")
	if ie.Alternative != nil {
		t.Errorf("expected nil alternative, got %s", ie.Alternative.String())
	}
}

func TestParser_IfElseExpression(t *testing.T) {
	ie := exprOf(t, firstStmt(t, `if (x < y) { x } else { y }`)).(*ast.IfExpression)
	if ie.Alternative == nil {
		t.Fatal("expected else branch, got nil")
	}
	if len(ie.Alternative.Statements) != 1 {
		t.Fatalf("alternative: got %d statements, want 1", len(ie.Alternative.Statements))
	}
	assertIdent(t, exprOf(t, ie.Alternative.Statements[0]), "y")
	if got := ie.String(); got != "if(x < y) xelse y" {
		t.Errorf("String() = %q", got)
	}
}

func TestParser_FunctionLiteral(t *testing.T) {
	fn, ok := exprOf(t, firstStmt(t, `fn(x, y) { x + y; }`)).(*ast.FunctionLiteral)
	if !ok {
		t.Fatal("expected *ast.FunctionLiteral")
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("parameters: got %d, want 2", len(fn.Parameters))
	}
	assertIdent(t, fn.Parameters[0], "x")
	assertIdent(t, fn.Parameters[1], "y")
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("body: got %d statements, want 1", len(fn.Body.Statements))
	}
	inf := assertInfix(t, exprOf(t, fn.Body.Statements[0]), "+")
	assertIdent(t, inf.Left, "x")
	assertIdent(t, inf.Right, "y")
}

func TestParser_FunctionParameters(t *testing.T) {
	tests := []struct {
		input  string
		params []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}
	for _, tc := range tests {
		fn := exprOf(t, firstStmt(t, tc.input)).(*ast.FunctionLiteral)
		if len(fn.Parameters) != len(tc.params) {
			t.Fatalf("%q: got %d parameters, want %d", tc.input, len(fn.Parameters), len(tc.params))
		}
		for i, name := range tc.params {
			assertIdent(t, fn.Parameters[i], name)
		}
	}
}

func TestParser_CallExpression(t *testing.T) {
	call, ok := exprOf(t, firstStmt(t, `add(1, 2 * 3, 4 + 5);`)).(*ast.CallExpression)
	if !ok {
		t.Fatal("expected *ast.CallExpression")
	}
	assertIdent(t, call.Function, "add")
	if len(call.Arguments) != 3 {
		t.Fatalf("arguments: got %d, want 3", len(call.Arguments))
	}
	assertIntLit(t, call.Arguments[0], 1)
	assertInfix(t, call.Arguments[1], "*")
	assertInfix(t, call.Arguments[2], "+")
}

// TestParser_ImmediateCall checks that a function literal can be called in place.
func TestParser_ImmediateCall(t *testing.T) {
	call := exprOf(t, firstStmt(t, `fn(x) { x }(5)`)).(*ast.CallExpression)
	if _, ok := call.Function.(*ast.FunctionLiteral); !ok {
		t.Fatalf("callee: expected *ast.FunctionLiteral, got %T", call.Function)
	}
	assertIntLit(t, call.Arguments[0], 5)
}

// TestParser_Program parses a multi-statement program that mixes every
// construct and checks its rendered form.
func TestParser_Program(t *testing.T) {
	input := `
let add = fn(a, b) { return a + b; };
let max = fn(a, b) { if (a > b) { a } else { b } };
let result = add(max(1, 2), -3 * 4);
!result == false;`
	prog := parse(t, input, 4)

	want := "let add = fn(a, b) return (a + b);;" +
		"let max = fn(a, b) if(a > b) aelse b;" +
		"let result = add(max(1, 2), ((-3) * 4));" +
		"((!result) == false)"
	if got := prog.String(); got != want {
		t.Errorf("String():\n got %q\nwant %q", got, want)
	}
}

// TestParser_Deterministic parses the same text with two fresh parsers and
// requires structurally equal trees.
func TestParser_Deterministic(t *testing.T) {
	input := `let x = fn(a) { if (a < 2) { return 1; } a * 2 }; x(3) + -4;`
	a, errsA := parseWithErrors(input)
	b, errsB := parseWithErrors(input)
	if len(errsA) != 0 || len(errsB) != 0 {
		t.Fatalf("unexpected errors: %v %v", errsA, errsB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("trees differ:\n%s\n%s", a.String(), b.String())
	}
}

// ── Diagnostics ───────────────────────────────────────────────────────────────

// TestParser_LetMissingIdentifier checks that a malformed let is reported and
// that parsing still returns control.
func TestParser_LetMissingIdentifier(t *testing.T) {
	prog, errs := parseWithErrors(`let = 5;`)
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(errs), errs)
	}
	if len(prog.Statements) != 0 {
		t.Errorf("expected no statements, got %d", len(prog.Statements))
	}
	d := errs[0]
	if d.Kind != parser.UnexpectedToken {
		t.Errorf("kind: got %s, want %s", d.Kind, parser.UnexpectedToken)
	}
	if d.Expected != ast.IDENT {
		t.Errorf("expected: got %s, want IDENT", d.Expected)
	}
	if d.Got.Type != ast.ASSIGN {
		t.Errorf("got token: %s, want =", d.Got.Type)
	}
	if want := "1:5: expected next token to be IDENT, got = instead"; d.Error() != want {
		t.Errorf("message: got %q, want %q", d.Error(), want)
	}
}

func TestParser_PeekErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.TokenType
		got      ast.TokenType
	}{
		{"let x 5;", ast.ASSIGN, ast.INT},
		{"let 838383;", ast.IDENT, ast.INT},
		{"if x { y }", ast.LPAREN, ast.IDENT},
		{"fn(x, 1) { x }", ast.IDENT, ast.INT},
		{"add(1, 2", ast.RPAREN, ast.EOF},
		{"(1 + 2", ast.RPAREN, ast.EOF},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, errs := parseWithErrors(tc.input)
			if len(errs) == 0 {
				t.Fatal("expected diagnostics, got none")
			}
			d := errs[0]
			if d.Kind != parser.UnexpectedToken || d.Expected != tc.expected || d.Got.Type != tc.got {
				t.Errorf("got %s (expected %s, got %s), want expected %s, got %s",
					d.Kind, d.Expected, d.Got.Type, tc.expected, tc.got)
			}
		})
	}
}

func TestParser_NoPrefixParseFn(t *testing.T) {
	_, errs := parseWithErrors(`@;`)
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(errs))
	}
	if errs[0].Kind != parser.NoPrefixParseFn {
		t.Errorf("kind: got %s", errs[0].Kind)
	}
	if errs[0].Got.Type != ast.ILLEGAL || errs[0].Got.Literal != "@" {
		t.Errorf("got token: %+v", errs[0].Got)
	}
	if want := `1:1: no prefix parse function for ILLEGAL("@") found`; errs[0].Error() != want {
		t.Errorf("message: got %q, want %q", errs[0].Error(), want)
	}
}

// TestParser_EmptyStatements checks that stray semicolons are skipped silently.
func TestParser_EmptyStatements(t *testing.T) {
	prog := parse(t, `;; x;;`, 1)
	assertIdent(t, exprOf(t, prog.Statements[0]), "x")
}

func TestParser_IntegerOverflow(t *testing.T) {
	prog, errs := parseWithErrors(`9223372036854775808; 7;`)
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(errs))
	}
	if errs[0].Kind != parser.InvalidInteger {
		t.Errorf("kind: got %s, want %s", errs[0].Kind, parser.InvalidInteger)
	}
	if want := `1:1: integer literal "9223372036854775808" out of range`; errs[0].Error() != want {
		t.Errorf("message: got %q, want %q", errs[0].Error(), want)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected the valid statement to survive, got %d statements", len(prog.Statements))
	}
	assertIntLit(t, exprOf(t, prog.Statements[0]), 7)
}

func TestParser_UnterminatedBlock(t *testing.T) {
	_, errs := parseWithErrors(`if (x) { y`)
	if len(errs) == 0 {
		t.Fatal("expected a diagnostic for the unterminated block")
	}
	last := errs[len(errs)-1]
	if last.Expected != ast.RBRACE || last.Got.Type != ast.EOF {
		t.Errorf("got %+v", last)
	}
}

// TestParser_Recovery checks that a broken statement does not take the
// following good statements down with it, and that nothing of it is left
// behind in the program.
func TestParser_Recovery(t *testing.T) {
	prog, errs := parseWithErrors(`let = 1; let y = 2; return 3;`)
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(errs), errs)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(prog.Statements), prog.String())
	}
	let, ok := prog.Statements[0].(*ast.LetStatement)
	if !ok {
		t.Fatalf("statement 0: expected *ast.LetStatement, got %T", prog.Statements[0])
	}
	if let.Name.Value != "y" {
		t.Errorf("let name: got %q, want y", let.Name.Value)
	}
	if _, ok := prog.Statements[1].(*ast.ReturnStatement); !ok {
		t.Errorf("statement 1: expected *ast.ReturnStatement, got %T", prog.Statements[1])
	}
}

// TestParser_RecoverySkipsWholeStatement checks that the tokens of a failed
// statement never surface as statements of their own.
func TestParser_RecoverySkipsWholeStatement(t *testing.T) {
	tests := []struct {
		input string
		want  string // rendered program
		errs  int
	}{
		{"let x 5;", "", 1},
		{"let x 5", "", 1},
		{"let 838383; y", "y", 1},
		{"if x { y }; z;", "z", 1},
		{"if x { a; b }; c;", "c", 1},
		{"fn(x, 1) { x }; 2", "2", 1},
		{"@ 1 2; 3", "3", 1},
		{"}; 4", "4", 1},
		{"let = 1; let y 2; let z = 3;", "let z = 3;", 2},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			prog, errs := parseWithErrors(tc.input)
			if len(errs) != tc.errs {
				t.Errorf("expected %d diagnostic(s), got %d: %v", tc.errs, len(errs), errs)
			}
			if got := prog.String(); got != tc.want {
				t.Errorf("program: got %q, want %q", got, tc.want)
			}
		})
	}
}

// TestParser_RecoveryInBlock checks that a failed statement inside a block is
// skipped without losing the rest of the block or the enclosing construct.
func TestParser_RecoveryInBlock(t *testing.T) {
	prog, errs := parseWithErrors(`let f = fn() { let = 1; x }; f;`)
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(errs), errs)
	}
	if got, want := prog.String(), "let f = fn() x;f"; got != want {
		t.Errorf("program: got %q, want %q", got, want)
	}

	prog, errs = parseWithErrors(`fn() { 1 + }; 2;`)
	if len(errs) != 1 || errs[0].Got.Type != ast.RBRACE {
		t.Fatalf("expected 1 diagnostic at '}', got %v", errs)
	}
	if got, want := prog.String(), "fn() 2"; got != want {
		t.Errorf("program: got %q, want %q", got, want)
	}
}

// TestParser_ErrorsAccumulate checks that independent problems are all reported.
func TestParser_ErrorsAccumulate(t *testing.T) {
	p := parser.New(lexer.New("let x 1;\nlet = 2;\n99999999999999999999;"))
	p.ParseProgram()
	msgs := p.ErrorMessages()
	if len(msgs) < 3 {
		t.Fatalf("expected at least 3 diagnostics, got %d: %v", len(msgs), msgs)
	}
	if msgs[0] != "1:7: expected next token to be =, got INT(\"1\") instead" {
		t.Errorf("first message: %q", msgs[0])
	}
}

func TestDiagnosticKind_String(t *testing.T) {
	tests := []struct {
		kind parser.DiagnosticKind
		want string
	}{
		{parser.UnexpectedToken, "unexpected token"},
		{parser.NoPrefixParseFn, "no prefix parse function"},
		{parser.InvalidInteger, "invalid integer"},
		{parser.DiagnosticKind(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("%d: got %q, want %q", tc.kind, got, tc.want)
		}
	}
}
