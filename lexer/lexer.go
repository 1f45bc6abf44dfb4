// Package lexer implements the Monkey lexer (tokeniser).
//
// The lexer converts a Monkey source string into a flat stream of [ast.Token]
// values. Call [New] to create a lexer and then call [Lexer.NextToken]
// repeatedly until you receive a token with Type == [ast.EOF].
//
// Design notes:
//   - Single-pass, character-by-character scanning using a read position cursor.
//   - No global state; every [Lexer] is independent.
//   - Line and column numbers are tracked for every token (1-based).
//   - Identifiers are runs of ASCII letters only and are classified as keywords
//     via [ast.LookupIdent].
//   - == and != need one character of look-ahead, handled by peekChar.
//   - Unknown characters become ILLEGAL tokens; the lexer never stops early.
package lexer

import (
	"unicode/utf8"

	"github.com/metaphox/monkey/ast"
)

// Lexer holds all state required to tokenise a single Monkey source string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input   string // the full source text
	pos     int    // current read position (index of ch)
	readPos int    // next read position (pos + 1)
	ch      byte   // current character under examination

	line int // current 1-based line number
	col  int // 1-based column of ch
}

// New creates a [Lexer] that tokenises the given input string.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar() // prime: set l.ch = input[0]
	return l
}

// NextToken returns the next token from the input.
//
// Whitespace (spaces, tabs, carriage returns, newlines) is skipped before each
// token. When the input is exhausted, NextToken returns a token with
// Type == [ast.EOF] on every subsequent call.
func (l *Lexer) NextToken() ast.Token {
	l.skipWhitespace()

	var tok ast.Token

	switch l.ch {
	// ── End of input ────────────────────────────────────────────────────────
	case 0:
		if l.atEnd() {
			// Do not advance: the cursor stays parked so EOF repeats.
			return l.makeToken(ast.EOF, "")
		}
		tok = l.makeToken(ast.ILLEGAL, string(l.ch))

	// ── Single-character operators ──────────────────────────────────────────
	case '+':
		tok = l.makeToken(ast.PLUS, "+")
	case '-':
		tok = l.makeToken(ast.MINUS, "-")
	case '*':
		tok = l.makeToken(ast.ASTERISK, "*")
	case '/':
		tok = l.makeToken(ast.SLASH, "/")
	case '<':
		tok = l.makeToken(ast.LT, "<")
	case '>':
		tok = l.makeToken(ast.GT, ">")

	// ── Operators that may be one or two characters ─────────────────────────
	case '=':
		if l.peekChar() == '=' {
			tok = l.makeToken(ast.EQ, "==")
			l.readChar()
		} else {
			tok = l.makeToken(ast.ASSIGN, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			tok = l.makeToken(ast.NOT_EQ, "!=")
			l.readChar()
		} else {
			tok = l.makeToken(ast.BANG, "!")
		}

	// ── Delimiters ──────────────────────────────────────────────────────────
	case ',':
		tok = l.makeToken(ast.COMMA, ",")
	case ';':
		tok = l.makeToken(ast.SEMICOLON, ";")
	case '(':
		tok = l.makeToken(ast.LPAREN, "(")
	case ')':
		tok = l.makeToken(ast.RPAREN, ")")
	case '{':
		tok = l.makeToken(ast.LBRACE, "{")
	case '}':
		tok = l.makeToken(ast.RBRACE, "}")

	// ── Identifiers, keywords, integers ─────────────────────────────────────
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		} else if isDigit(l.ch) {
			return l.readNumber()
		} else if l.ch >= utf8.RuneSelf {
			return l.readIllegalRune()
		}
		tok = l.makeToken(ast.ILLEGAL, string(l.ch))
	}

	l.readChar() // advance past the last character of this token
	return tok
}

// Tokenize scans all of input and returns its tokens, ending with the EOF token.
func Tokenize(input string) []ast.Token {
	l := New(input)
	var toks []ast.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == ast.EOF {
			return toks
		}
	}
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// readChar advances the lexer by one byte. Past the end of input l.ch is 0.
// UTF-8 continuation bytes do not move the column, so col counts characters.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else if l.ch&0xC0 != 0x80 {
		l.col++
	}
}

// peekChar returns the next character without consuming it.
// Returns 0 when the end of input has been reached.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// atEnd reports whether the cursor has run off the end of the input. A NUL
// byte inside the input is not the end; it is an illegal character.
func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// makeToken constructs a token at the current source position.
// It does NOT advance the cursor.
func (l *Lexer) makeToken(tt ast.TokenType, literal string) ast.Token {
	return ast.Token{Type: tt, Literal: literal, Line: l.line, Col: l.col}
}

// skipWhitespace advances past spaces, tabs, carriage returns and newlines.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier scans an identifier or keyword starting at the current position.
// It returns without the trailing readChar of NextToken: the cursor is already
// on the first non-letter character.
func (l *Lexer) readIdentifier() ast.Token {
	tok := l.makeToken(ast.IDENT, "")
	start := l.pos

	for isLetter(l.ch) {
		l.readChar()
	}

	tok.Literal = l.input[start:l.pos]
	tok.Type = ast.LookupIdent(tok.Literal)
	return tok
}

// readNumber scans a run of decimal digits. Like readIdentifier it leaves the
// cursor on the first non-digit. Range checking happens in the parser.
func (l *Lexer) readNumber() ast.Token {
	tok := l.makeToken(ast.INT, "")
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	tok.Literal = l.input[start:l.pos]
	return tok
}

// readIllegalRune consumes one whole UTF-8 encoded character (or a single
// invalid byte) and reports it as ILLEGAL.
func (l *Lexer) readIllegalRune() ast.Token {
	tok := l.makeToken(ast.ILLEGAL, "")
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	tok.Literal = l.input[l.pos : l.pos+size]
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return tok
}

// isLetter reports whether b is an ASCII letter. Monkey identifiers contain
// neither digits nor underscores.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isDigit reports whether b is an ASCII decimal digit (0–9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
