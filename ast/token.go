// Package ast defines the token types and the Token struct used by the Monkey
// lexer and parser, together with the syntax tree the parser produces.
//
// Tokens are the smallest meaningful units of Monkey source. Every token carries
// its type, the exact literal text it was scanned from, and its source position
// (line + column). Position is 1-based: the first character is Line 1, Col 1.
package ast

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ILLEGAL represents a character the lexer could not recognise.
	// The literal holds the offending character; scanning continues after it.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input. Once reached, the lexer returns EOF forever.
	EOF

	// ── Identifiers + literals ─────────────────────────────────────────────────

	// IDENT is an identifier: [a-zA-Z]+
	// Identifiers that match a keyword are re-classified by the lexer.
	IDENT
	// INT is a decimal integer literal. The literal keeps the source digits;
	// the parser converts it to int64.
	INT

	// ── Operators ──────────────────────────────────────────────────────────────

	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	BANG     // !
	ASTERISK // *
	SLASH    // /

	LT     // <
	GT     // >
	EQ     // ==
	NOT_EQ // !=

	// ── Delimiters ─────────────────────────────────────────────────────────────

	COMMA     // ,
	SEMICOLON // ;

	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// ── Keywords ───────────────────────────────────────────────────────────────

	FUNCTION // fn
	LET      // let
	TRUE     // true
	FALSE    // false
	IF       // if
	ELSE     // else
	RETURN   // return
)

var tokenNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	BANG:      "!",
	ASTERISK:  "*",
	SLASH:     "/",
	LT:        "<",
	GT:        ">",
	EQ:        "==",
	NOT_EQ:    "!=",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

// String returns the display name of the token type. Operators and delimiters
// are shown as their source text, everything else by its upper-case name.
func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return "UNKNOWN"
}

// keywords maps the literal text of every Monkey keyword to its TokenType.
// The lexer consults this map when it finishes scanning an identifier.
var keywords = map[string]TokenType{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent checks whether ident is a reserved keyword and returns the
// corresponding TokenType. If ident is not a keyword, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// Token is a single lexical unit produced by the Monkey lexer.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

// String returns the literal text of the token.
func (t Token) String() string {
	return t.Literal
}
