// File: lexer.go
// Title: SBML Lexical Analyzer
// Description: Converts source text into a lazy stream of classified tokens
//              with line and column information. Illegal characters are
//              reported, skipped and do not stop tokenization.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial lexer implementation
// - 2026-10-17 v0.1.1: Dropped the exported keyword lookup

package parser

import (
	"fmt"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals and identifiers
	TokenInteger    // 42
	TokenReal       // 4.2, .5, 17., 1.5e-3
	TokenString     // 'abc' or "abc", delimiters kept
	TokenIdentifier // x, total_2
	TokenTrue       // True
	TokenFalse      // False

	// Arithmetic operators
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /
	TokenPower // **
	TokenMod   // mod
	TokenDiv   // div

	// Comparison operators
	TokenLess      // <
	TokenLessEq    // <=
	TokenGreater   // >
	TokenGreaterEq // >=
	TokenEqual     // ==
	TokenNotEqual  // <>

	// Boolean and collection operators
	TokenAndalso // andalso
	TokenOrelse  // orelse
	TokenNot     // not
	TokenIn      // in
	TokenCons    // ::

	// Delimiters
	TokenAssign       // =
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenComma        // ,
	TokenHash         // #
	TokenSemicolon    // ;

	// Statement keywords
	TokenPrint // print
	TokenIf    // if
	TokenElse  // else
	TokenWhile // while
)

var tokenNames = map[TokenType]string{
	TokenEOF:          "EOF",
	TokenIllegal:      "ILLEGAL",
	TokenInteger:      "INTEGER",
	TokenReal:         "REAL",
	TokenString:       "STRING",
	TokenIdentifier:   "IDENTIFIER",
	TokenTrue:         "TRUE",
	TokenFalse:        "FALSE",
	TokenPlus:         "PLUS",
	TokenMinus:        "MINUS",
	TokenStar:         "STAR",
	TokenSlash:        "SLASH",
	TokenPower:        "POWER",
	TokenMod:          "MOD",
	TokenDiv:          "DIV",
	TokenLess:         "LESS",
	TokenLessEq:       "LESS_EQ",
	TokenGreater:      "GREATER",
	TokenGreaterEq:    "GREATER_EQ",
	TokenEqual:        "EQUAL",
	TokenNotEqual:     "NOT_EQUAL",
	TokenAndalso:      "ANDALSO",
	TokenOrelse:       "ORELSE",
	TokenNot:          "NOT",
	TokenIn:           "IN",
	TokenCons:         "CONS",
	TokenAssign:       "ASSIGN",
	TokenLeftBracket:  "LEFT_BRACKET",
	TokenRightBracket: "RIGHT_BRACKET",
	TokenLeftParen:    "LEFT_PAREN",
	TokenRightParen:   "RIGHT_PAREN",
	TokenLeftBrace:    "LEFT_BRACE",
	TokenRightBrace:   "RIGHT_BRACE",
	TokenComma:        "COMMA",
	TokenHash:         "HASH",
	TokenSemicolon:    "SEMICOLON",
	TokenPrint:        "PRINT",
	TokenIf:           "IF",
	TokenElse:         "ELSE",
	TokenWhile:        "WHILE",
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// keywords maps reserved words to their token types. Matching is
// case-sensitive: "True" is a literal, "true" an identifier.
var keywords = map[string]TokenType{
	"mod":     TokenMod,
	"div":     TokenDiv,
	"orelse":  TokenOrelse,
	"andalso": TokenAndalso,
	"not":     TokenNot,
	"in":      TokenIn,
	"True":    TokenTrue,
	"False":   TokenFalse,
	"print":   TokenPrint,
	"if":      TokenIf,
	"else":    TokenElse,
	"while":   TokenWhile,
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType
	Value    string // source text of the token; strings keep their quotes
	Position int    // byte offset in input
	Line     int    // 1-based
	Column   int    // 1-based
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// Text returns the token as shown in diagnostics: its source text, or
// "EOF" at end of input.
func (t Token) Text() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return t.Value
}

// Lexer performs lexical analysis of SBML source text
type Lexer struct {
	input    string
	position int  // offset of ch
	readPos  int  // offset after ch
	ch       byte // current char, 0 at end of input
	line     int
	column   int
	logger   *sbmllog.Logger
	errors   []error
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		logger: sbmllog.GetDefault().WithField("component", "sbml-lexer"),
	}
	l.readChar()
	return l
}

// WithLogger sets the logger used to report skipped characters
func (l *Lexer) WithLogger(logger *sbmllog.Logger) *Lexer {
	if logger != nil {
		l.logger = logger.WithField("component", "sbml-lexer")
	}
	return l
}

// Errors returns the LEXICAL errors for every character skipped so far
func (l *Lexer) Errors() []error {
	return l.errors
}

// NextToken returns the next token from the input. Illegal characters are
// recorded and skipped, so the result is never TokenIllegal.
func (l *Lexer) NextToken() Token {
	for {
		tok := l.scan()
		if tok.Type != TokenIllegal {
			return tok
		}
		l.reportIllegal(tok)
	}
}

// Tokenize returns all tokens up to and including EOF
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) scan() Token {
	l.skipWhitespace()

	pos, line, column := l.position, l.line, l.column
	single := func(tt TokenType) Token {
		tok := Token{Type: tt, Value: string(l.ch), Position: pos, Line: line, Column: column}
		l.readChar()
		return tok
	}
	double := func(tt TokenType) Token {
		tok := Token{Type: tt, Value: l.input[pos : pos+2], Position: pos, Line: line, Column: column}
		l.readChar()
		l.readChar()
		return tok
	}

	switch l.ch {
	case 0:
		if l.position >= len(l.input) {
			return Token{Type: TokenEOF, Position: pos, Line: line, Column: column}
		}
		return single(TokenIllegal)
	case '+':
		return single(TokenPlus)
	case '-':
		return single(TokenMinus)
	case '/':
		return single(TokenSlash)
	case '*':
		if l.peekChar() == '*' {
			return double(TokenPower)
		}
		return single(TokenStar)
	case ':':
		if l.peekChar() == ':' {
			return double(TokenCons)
		}
		return single(TokenIllegal)
	case '=':
		if l.peekChar() == '=' {
			return double(TokenEqual)
		}
		return single(TokenAssign)
	case '<':
		switch l.peekChar() {
		case '=':
			return double(TokenLessEq)
		case '>':
			return double(TokenNotEqual)
		}
		return single(TokenLess)
	case '>':
		if l.peekChar() == '=' {
			return double(TokenGreaterEq)
		}
		return single(TokenGreater)
	case '[':
		return single(TokenLeftBracket)
	case ']':
		return single(TokenRightBracket)
	case '(':
		return single(TokenLeftParen)
	case ')':
		return single(TokenRightParen)
	case '{':
		return single(TokenLeftBrace)
	case '}':
		return single(TokenRightBrace)
	case ',':
		return single(TokenComma)
	case '#':
		return single(TokenHash)
	case ';':
		return single(TokenSemicolon)
	case '"', '\'':
		end := l.stringEnd()
		if end < 0 {
			// Unterminated: skip only the opening quote
			return single(TokenIllegal)
		}
		for l.position < end {
			l.readChar()
		}
		return Token{Type: TokenString, Value: l.input[pos:end], Position: pos, Line: line, Column: column}
	case '.':
		if isDigit(l.peekChar()) {
			tt, text := l.readNumber()
			return Token{Type: tt, Value: text, Position: pos, Line: line, Column: column}
		}
		return single(TokenIllegal)
	}

	if isLetter(l.ch) {
		text := l.readIdentifier()
		tt, ok := keywords[text]
		if !ok {
			tt = TokenIdentifier
		}
		return Token{Type: tt, Value: text, Position: pos, Line: line, Column: column}
	}
	if isDigit(l.ch) {
		tt, text := l.readNumber()
		return Token{Type: tt, Value: text, Position: pos, Line: line, Column: column}
	}
	return single(TokenIllegal)
}

func (l *Lexer) reportIllegal(tok Token) {
	err := sbmlerror.Newf("illegal character %q", tok.Value).
		WithCode(sbmlerror.CodeLexical).
		WithOperation("lexer.NextToken").
		WithPosition(tok.Line, tok.Column).
		WithToken(tok.Value)
	l.errors = append(l.errors, err)

	l.logger.Warn("illegal character skipped", sbmllog.Fields{
		"char":   tok.Value,
		"line":   tok.Line,
		"column": tok.Column,
	})
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPos >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
	} else {
		l.ch = l.input[l.readPos]
		l.position = l.readPos
	}
	l.readPos = l.position + 1
	l.column++
}

func (l *Lexer) peekChar() byte {
	return l.peekAt(1)
}

// peekAt returns the byte n positions after the current one
func (l *Lexer) peekAt(n int) byte {
	if l.position+n >= len(l.input) {
		return 0
	}
	return l.input[l.position+n]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads [A-Za-z][A-Za-z0-9_]*
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an integer (digits) or a real
// ((digits? '.' digits | digits '.' digits?) ('e' '-'? digits)?).
func (l *Lexer) readNumber() (TokenType, string) {
	start := l.position
	intDigits := 0
	for isDigit(l.ch) {
		l.readChar()
		intDigits++
	}

	if l.ch != '.' || (intDigits == 0 && !isDigit(l.peekChar())) {
		return TokenInteger, l.input[start:l.position]
	}

	l.readChar() // '.'
	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == 'e' {
		switch {
		case isDigit(l.peekAt(1)):
			l.readChar()
		case l.peekAt(1) == '-' && isDigit(l.peekAt(2)):
			l.readChar()
			l.readChar()
		default:
			return TokenReal, l.input[start:l.position]
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return TokenReal, l.input[start:l.position]
}

// stringEnd returns the offset just past the closing quote of the string
// starting at the current position, or -1 if it is unterminated.
func (l *Lexer) stringEnd() int {
	quote := l.ch
	for i := l.position + 1; i < len(l.input); i++ {
		switch l.input[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return -1
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize is a convenience function that tokenizes input with the default logger
func Tokenize(input string) ([]Token, []error) {
	l := NewLexer(input)
	return l.Tokenize(), l.Errors()
}
