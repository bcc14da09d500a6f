// File: parser.go
// Title: SBML Precedence Parser
// Description: Recursive descent parser producing the syntax tree for a
//              program block or an interactive snippet. Besides grammar
//              errors it rejects non-boolean operands of andalso/orelse/not
//              and references to names that were never assigned earlier.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation
// - 2026-10-17 v0.1.1: Syntax errors flag end of input by token type

package parser

import (
	"errors"
	"strconv"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/foundation/sbml/ast"
	"github.com/msto63/sbml/foundation/utils/stringx"
)

// Parser implements recursive descent parsing for SBML. A Parser may be
// reused for several inputs but not concurrently.
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
	logger  *sbmllog.Logger
	options Options

	// names assigned earlier in the text; references to anything else
	// are rejected while parsing
	declared map[string]bool
	snippet  bool
}

// Options configures parser behavior
type Options struct {
	Logger *sbmllog.Logger

	// MaxInputLength limits the source size in bytes, 0 means unlimited
	MaxInputLength int
}

// New creates a new SBML parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = sbmllog.GetDefault()
	}
	return &Parser{
		logger:  opts.Logger.WithField("component", "sbml-parser"),
		options: opts,
	}
}

// ParseProgram parses a complete program: exactly one block followed by
// end of input.
func (p *Parser) ParseProgram(input string) (*ast.Block, error) {
	if err := p.reset(input, false, nil); err != nil {
		return nil, err
	}

	p.logger.Debug("parsing program", sbmllog.Fields{"length": len(input)})

	block, err := p.parseBlock()
	if err != nil {
		p.logger.Debug("parsing failed", sbmllog.Fields{"error": err.Error()})
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.syntaxError("unexpected token after program block")
	}

	p.logger.Debug("parsing completed", sbmllog.Fields{"statements": len(block.Statements)})
	return block, nil
}

// ParseSnippet parses a sequence of statements without enclosing braces.
// Bare expression statements are allowed, and the terminating semicolon
// of the last statement may be omitted. declared lists names already bound
// by earlier snippets.
func (p *Parser) ParseSnippet(input string, declared []string) ([]ast.Stmt, error) {
	if err := p.reset(input, true, declared); err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for p.current.Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// LexErrors returns the characters skipped by the lexer in the last parse
func (p *Parser) LexErrors() []error {
	if p.lexer == nil {
		return nil
	}
	return p.lexer.Errors()
}

func (p *Parser) reset(input string, snippet bool, declared []string) error {
	if p.options.MaxInputLength > 0 && len(input) > p.options.MaxInputLength {
		return sbmlerror.Newf("input exceeds maximum length: %d > %d", len(input), p.options.MaxInputLength).
			WithCode(sbmlerror.CodeInvalidInput).
			WithOperation("parser.Parse")
	}

	p.lexer = NewLexer(input).WithLogger(p.options.Logger)
	p.snippet = snippet
	p.declared = make(map[string]bool, len(declared))
	for _, name := range declared {
		p.declared[name] = true
	}

	p.current = p.lexer.NextToken()
	p.peek = p.lexer.NextToken()
	return nil
}

func (p *Parser) advance() Token {
	prev := p.current
	p.current = p.peek
	if p.current.Type != TokenEOF {
		p.peek = p.lexer.NextToken()
	}
	return prev
}

func (p *Parser) expect(tt TokenType, context string) (Token, error) {
	if p.current.Type != tt {
		return Token{}, p.syntaxError("expected " + context)
	}
	return p.advance(), nil
}

func (p *Parser) position() ast.Position {
	return ast.Position{Line: p.current.Line, Column: p.current.Column}
}

func (p *Parser) syntaxError(message string) error {
	token := p.current.Value
	if p.current.Type == TokenEOF {
		token = ""
	}
	return sbmlerror.NewSyntax(message, token, p.current.Line, p.current.Column).
		WithOperation("parser.Parse")
}

func semanticErrorAt(message string, pos ast.Position) *sbmlerror.Error {
	return sbmlerror.NewSemantic(message).
		WithPosition(pos.Line, pos.Column).
		WithOperation("parser.Parse")
}

// Statements

func (p *Parser) parseBlock() (*ast.Block, error) {
	pos := p.position()
	if _, err := p.expect(TokenLeftBrace, "'{'"); err != nil {
		return nil, err
	}

	block := &ast.Block{Pos: pos}
	for p.current.Type != TokenRightBrace {
		if p.current.Type == TokenEOF {
			return nil, p.syntaxError("expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.advance() // '}'
	return block, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.current.Type {
	case TokenLeftBrace:
		return p.parseBlock()
	case TokenIf:
		return p.parseIf()
	case TokenWhile:
		return p.parseWhile()
	case TokenPrint:
		return p.parsePrint()
	default:
		return p.parseAssignOrExpr()
	}
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	pos := p.position()
	p.advance() // 'if'

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenElse {
		return &ast.If{Cond: cond, Then: then, Pos: pos}, nil
	}
	p.advance() // 'else'
	els, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.IfElse{Cond: cond, Then: then, Else: els, Pos: pos}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	pos := p.position()
	p.advance() // 'while'

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, Pos: pos}, nil
}

// parseCondition parses '(' boolean-operand ')'
func (p *Parser) parseCondition() (ast.Expr, error) {
	if _, err := p.expect(TokenLeftParen, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := checkBoolean(cond); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRightParen, "')'"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parsePrint() (ast.Stmt, error) {
	pos := p.position()
	p.advance() // 'print'

	if _, err := p.expect(TokenLeftParen, "'(' after print"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRightParen, "')'"); err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &ast.Print{Expr: expr, Pos: pos}, nil
}

func (p *Parser) parseAssignOrExpr() (ast.Stmt, error) {
	pos := p.position()

	// A plain name being assigned is a declaration, not a reference
	if p.current.Type == TokenIdentifier && p.peek.Type == TokenAssign {
		name := p.advance()
		p.advance() // '='
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		p.declared[name.Value] = true
		target := &ast.VariableRef{Name: name.Value, Pos: ast.Position{Line: name.Line, Column: name.Column}}
		return &ast.Assign{Target: target, Value: value, Pos: pos}, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenAssign {
		if !ast.IsLValue(expr) {
			return nil, p.syntaxError("invalid assignment target")
		}
		p.advance() // '='
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		return &ast.Assign{Target: expr, Value: value, Pos: pos}, nil
	}

	if !p.snippet {
		return nil, p.syntaxError("expected '='")
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr, Pos: pos}, nil
}

// endStatement consumes ';'. Snippets may omit it before end of input.
func (p *Parser) endStatement() error {
	if p.current.Type == TokenSemicolon {
		p.advance()
		return nil
	}
	if p.snippet && p.current.Type == TokenEOF {
		return nil
	}
	return p.syntaxError("expected ';'")
}

// Expressions, lowest precedence first

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseDisjunction()
}

func (p *Parser) parseDisjunction() (ast.Expr, error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenOrelse {
		pos := p.position()
		p.advance()
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		if err := checkBoolean(left, right); err != nil {
			return nil, err
		}
		left = &ast.Disjunction{Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

func (p *Parser) parseConjunction() (ast.Expr, error) {
	left, err := p.parseNegation()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenAndalso {
		pos := p.position()
		p.advance()
		right, err := p.parseNegation()
		if err != nil {
			return nil, err
		}
		if err := checkBoolean(left, right); err != nil {
			return nil, err
		}
		left = &ast.Conjunction{Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

func (p *Parser) parseNegation() (ast.Expr, error) {
	if p.current.Type != TokenNot {
		return p.parseComparison()
	}

	pos := p.position()
	p.advance()
	operand, err := p.parseNegation()
	if err != nil {
		return nil, err
	}
	if err := checkBoolean(operand); err != nil {
		return nil, err
	}
	return &ast.Negation{Operand: operand, Pos: pos}, nil
}

var comparisonOps = map[TokenType]string{
	TokenLess:      "<",
	TokenLessEq:    "<=",
	TokenGreater:   ">",
	TokenGreaterEq: ">=",
	TokenEqual:     "==",
	TokenNotEqual:  "<>",
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseCons()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := comparisonOps[p.current.Type]
		if !ok {
			return left, nil
		}
		pos := p.position()
		p.advance()
		right, err := p.parseCons()
		if err != nil {
			return nil, err
		}
		left = &ast.Comparison{Op: op, Left: left, Right: right, Pos: pos}
	}
}

// parseCons is right-associative: 1 :: 2 :: [] is 1 :: (2 :: [])
func (p *Parser) parseCons() (ast.Expr, error) {
	head, err := p.parseMembership()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenCons {
		return head, nil
	}

	pos := p.position()
	p.advance()
	tail, err := p.parseCons()
	if err != nil {
		return nil, err
	}
	return &ast.Cons{Head: head, Tail: tail, Pos: pos}, nil
}

func (p *Parser) parseMembership() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenIn {
		pos := p.position()
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Membership{Element: left, Collection: right, Pos: pos}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		pos := p.position()
		op := p.advance().Value
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenStar, TokenSlash, TokenMod, TokenDiv:
		default:
			return left, nil
		}
		pos := p.position()
		op := p.advance().Value
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos}
	}
}

// parsePower is right-associative and binds looser than unary minus on its
// left, so -2 ** 2 is (-2) ** 2.
func (p *Parser) parsePower() (ast.Expr, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenPower {
		return base, nil
	}

	pos := p.position()
	p.advance()
	exp, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Op: "**", Left: base, Right: exp, Pos: pos}, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.current.Type != TokenMinus {
		return p.parseIndexing()
	}

	pos := p.position()
	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryMinus{Operand: operand, Pos: pos}, nil
}

func (p *Parser) parseIndexing() (ast.Expr, error) {
	expr, err := p.parseTupleIndex()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenLeftBracket {
		pos := p.position()
		p.advance()
		index, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRightBracket, "']'"); err != nil {
			return nil, err
		}
		expr = &ast.IndexExpr{Collection: expr, Index: index, Pos: pos}
	}
	return expr, nil
}

// parseTupleIndex parses '#' INTEGER operand, where the operand is another
// tuple index or a primary expression.
func (p *Parser) parseTupleIndex() (ast.Expr, error) {
	if p.current.Type != TokenHash {
		return p.parsePrimary()
	}

	pos := p.position()
	p.advance()
	if p.current.Type != TokenInteger {
		return nil, p.syntaxError("expected integer literal after '#'")
	}
	index, err := p.parseIntLiteral()
	if err != nil {
		return nil, err
	}
	tuple, err := p.parseTupleIndex()
	if err != nil {
		return nil, err
	}
	return &ast.TupleIndex{Index: index.Int, Tuple: tuple, Pos: pos}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	pos := p.position()

	switch p.current.Type {
	case TokenInteger:
		return p.parseIntLiteral()

	case TokenReal:
		tok := p.advance()
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, sbmlerror.NewSyntax("malformed real literal", tok.Value, tok.Line, tok.Column).
				WithOperation("parser.Parse")
		}
		return &ast.NumberLiteral{IsReal: true, Real: f, Raw: tok.Value, Pos: pos}, nil

	case TokenString:
		tok := p.advance()
		body := tok.Value[1 : len(tok.Value)-1]
		return &ast.StringLiteral{Value: stringx.Unescape(body), Pos: pos}, nil

	case TokenTrue, TokenFalse:
		tok := p.advance()
		return &ast.BooleanLiteral{Value: tok.Type == TokenTrue, Pos: pos}, nil

	case TokenIdentifier:
		tok := p.advance()
		if !p.declared[tok.Value] {
			return nil, semanticErrorAt("undefined name", pos).WithDetail("name", tok.Value)
		}
		return &ast.VariableRef{Name: tok.Value, Pos: pos}, nil

	case TokenLeftBracket:
		return p.parseList()

	case TokenLeftParen:
		return p.parseParenOrTuple()

	default:
		return nil, p.syntaxError("unexpected token")
	}
}

func (p *Parser) parseIntLiteral() (*ast.NumberLiteral, error) {
	tok := p.advance()
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, sbmlerror.NewSyntax("integer literal out of range", tok.Value, tok.Line, tok.Column).
			WithOperation("parser.Parse")
	}
	return &ast.NumberLiteral{Int: n, Raw: tok.Value, Pos: ast.Position{Line: tok.Line, Column: tok.Column}}, nil
}

func (p *Parser) parseList() (ast.Expr, error) {
	pos := p.position()
	p.advance() // '['

	list := &ast.ListLiteral{Pos: pos}
	if p.current.Type == TokenRightBracket {
		p.advance()
		return list, nil
	}

	for {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, elem)

		if p.current.Type != TokenComma {
			break
		}
		p.advance()
	}

	if _, err := p.expect(TokenRightBracket, "']'"); err != nil {
		return nil, err
	}
	return list, nil
}

// parseParenOrTuple parses a grouped expression, or a tuple when at least
// two comma-separated elements are present.
func (p *Parser) parseParenOrTuple() (ast.Expr, error) {
	pos := p.position()
	p.advance() // '('

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenComma {
		if _, err := p.expect(TokenRightParen, "')'"); err != nil {
			return nil, err
		}
		return first, nil
	}

	tuple := &ast.TupleLiteral{Elements: []ast.Expr{first}, Pos: pos}
	for p.current.Type == TokenComma {
		p.advance()
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		tuple.Elements = append(tuple.Elements, elem)
	}

	if _, err := p.expect(TokenRightParen, "')'"); err != nil {
		return nil, err
	}
	return tuple, nil
}

// checkBoolean rejects operands that cannot produce a boolean by shape
func checkBoolean(operands ...ast.Expr) error {
	for _, e := range operands {
		if !ast.IsBooleanOperand(e) {
			return semanticErrorAt("boolean operand expected", e.Position()).
				WithDetail("node", ast.TypeName(e))
		}
	}
	return nil
}

// ParseProgram is a convenience function that parses input with default options
func ParseProgram(input string) (*ast.Block, error) {
	return New(Options{}).ParseProgram(input)
}
