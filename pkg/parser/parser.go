// Package parser implements a Pratt (operator-precedence) parser that turns
// a Monkey token stream into an *ast.Program.
package parser

import (
	"fmt"
	"strconv"

	"github.com/monkeylang/monkey/pkg/ast"
	"github.com/monkeylang/monkey/pkg/lexer"
	"github.com/monkeylang/monkey/pkg/reader"
	"github.com/monkeylang/monkey/pkg/token"
)

// Precedence is the integer threshold the Pratt loop compares against
// (spec §4.3): Lowest < Equality < Comparison < Sum < Product < Prefix <
// Call < Index.
type Precedence int

const (
	Lowest Precedence = iota
	Equality
	Comparison
	Sum
	Product
	Prefix
	Call
	Index
)

var precedences = map[token.Type]Precedence{
	token.EQ:       Equality,
	token.NOT_EQ:   Equality,
	token.LT:       Comparison,
	token.GT:       Comparison,
	token.PLUS:     Sum,
	token.MINUS:    Sum,
	token.SLASH:    Product,
	token.ASTERISK: Product,
	token.LPAREN:   Call,
	token.LBRACKET: Index,
}

func peekPrecedence(t token.Type) Precedence {
	if p, ok := precedences[t]; ok {
		return p
	}
	return Lowest
}

type (
	prefixParseFn func(p *Parser) (ast.Expr, error)
	infixParseFn  func(p *Parser, left ast.Expr) (ast.Expr, error)
)

// Parser is a single-pass, deterministic Pratt parser over a Reader.
type Parser struct {
	r *reader.Reader

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New creates a Parser over r with the prefix/infix dispatch tables wired.
func New(r *reader.Reader) *Parser {
	p := &Parser{r: r}

	p.prefixFns = map[token.Type]prefixParseFn{
		token.IDENT:    parseIdentifier,
		token.INT:      parseIntegerLiteral,
		token.TRUE:     parseBoolean,
		token.FALSE:    parseBoolean,
		token.STRING:   parseStringLiteral,
		token.BANG:     parsePrefixExpression,
		token.MINUS:    parsePrefixExpression,
		token.LPAREN:   parseGroupedExpression,
		token.LBRACKET: parseArrayLiteral,
		token.LBRACE:   parseHashLiteral,
		token.IF:       parseIfExpression,
		token.FUNCTION: parseFunctionLiteral,
		token.MACRO:    parseMacroLiteral,
	}

	p.infixFns = map[token.Type]infixParseFn{
		token.PLUS:     parseInfixExpression,
		token.MINUS:    parseInfixExpression,
		token.SLASH:    parseInfixExpression,
		token.ASTERISK: parseInfixExpression,
		token.EQ:       parseInfixExpression,
		token.NOT_EQ:   parseInfixExpression,
		token.LT:       parseInfixExpression,
		token.GT:       parseInfixExpression,
		token.LPAREN:   parseCallExpression,
		token.LBRACKET: parseIndexExpression,
	}

	return p
}

// Parse tokenizes and parses source into a Program, or returns the first
// parse error encountered (spec §4.3: "on the first unrecoverable
// violation the parser fails ... the partial AST is discarded").
func Parse(source string) (*ast.Program, error) {
	l := lexer.New(source)
	r := reader.New(l)
	p := New(r)
	return p.ParseProgram()
}

// ParseProgram parses statements until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}

	for !p.r.CurrentIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
		p.r.Advance()
	}

	return program, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.r.Current().Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() (ast.Stmt, error) {
	stmt := &ast.LetStatement{Token: p.r.Current()}

	if !p.r.ExpectPeek(token.IDENT) {
		return nil, p.unexpectedPeek(token.IDENT)
	}
	stmt.Name = &ast.Identifier{Token: p.r.Current(), Value: p.r.Current().Literal}

	if !p.r.ExpectPeek(token.ASSIGN) {
		return nil, p.unexpectedPeek(token.ASSIGN)
	}
	p.r.Advance()

	value, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.r.PeekIs(token.SEMICOLON) {
		p.r.Advance()
	}
	return stmt, nil
}

func (p *Parser) parseReturnStatement() (ast.Stmt, error) {
	stmt := &ast.ReturnStatement{Token: p.r.Current()}
	p.r.Advance()

	value, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.r.PeekIs(token.SEMICOLON) {
		p.r.Advance()
	}
	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	stmt := &ast.ExpressionStatement{Token: p.r.Current()}

	expr, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.Expr = expr

	if p.r.PeekIs(token.SEMICOLON) {
		p.r.Advance()
	}
	return stmt, nil
}

// parseExpression runs the prefix handler for the current token, then
// repeatedly consumes infix operators while peek binds tighter than
// precedence (spec §4.3 steps 1-4).
func (p *Parser) parseExpression(precedence Precedence) (ast.Expr, error) {
	prefix, ok := p.prefixFns[p.r.Current().Type]
	if !ok {
		return nil, p.noPrefixParse(p.r.Current().Type)
	}
	left, err := prefix(p)
	if err != nil {
		return nil, err
	}

	for !p.r.PeekIs(token.SEMICOLON) && precedence < peekPrecedence(p.r.Peek().Type) {
		infix, ok := p.infixFns[p.r.Peek().Type]
		if !ok {
			return left, nil
		}
		p.r.Advance()
		left, err = infix(p, left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	block := &ast.BlockStatement{Token: p.r.Current()}
	p.r.Advance() // past "{"

	for !p.r.CurrentIs(token.RBRACE) && !p.r.CurrentIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.r.Advance()
	}

	return block, nil
}

// parseExpressionList parses a comma-separated expression list terminated
// by terminator (used for call args, array elements). Assumes Current is
// the opening delimiter.
func (p *Parser) parseExpressionList(terminator token.Type) ([]ast.Expr, error) {
	var list []ast.Expr

	if p.r.PeekIs(terminator) {
		p.r.Advance()
		return list, nil
	}

	p.r.Advance()
	expr, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)

	for p.r.PeekIs(token.COMMA) {
		p.r.Advance()
		p.r.Advance()
		expr, err := p.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}

	if !p.r.ExpectPeek(terminator) {
		return nil, p.unexpectedPeek(terminator)
	}
	return list, nil
}

func (p *Parser) parseIdentifierList() ([]*ast.Identifier, error) {
	var idents []*ast.Identifier

	if p.r.PeekIs(token.RPAREN) {
		p.r.Advance()
		return idents, nil
	}

	p.r.Advance()
	idents = append(idents, &ast.Identifier{Token: p.r.Current(), Value: p.r.Current().Literal})

	for p.r.PeekIs(token.COMMA) {
		p.r.Advance()
		p.r.Advance()
		idents = append(idents, &ast.Identifier{Token: p.r.Current(), Value: p.r.Current().Literal})
	}

	if !p.r.ExpectPeek(token.RPAREN) {
		return nil, p.unexpectedPeek(token.RPAREN)
	}
	return idents, nil
}

// --- Prefix handlers ---

func parseIdentifier(p *Parser) (ast.Expr, error) {
	tok := p.r.Current()
	return &ast.Identifier{Token: tok, Value: tok.Literal}, nil
}

func parseIntegerLiteral(p *Parser) (ast.Expr, error) {
	tok := p.r.Current()
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, &InvalidIntegerError{Lexeme: tok.Literal}
	}
	return &ast.IntegerLiteral{Token: tok, Value: value}, nil
}

func parseBoolean(p *Parser) (ast.Expr, error) {
	tok := p.r.Current()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}, nil
}

func parseStringLiteral(p *Parser) (ast.Expr, error) {
	tok := p.r.Current()
	return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil
}

func parseGroupedExpression(p *Parser) (ast.Expr, error) {
	p.r.Advance()
	expr, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	if !p.r.ExpectPeek(token.RPAREN) {
		return nil, p.unexpectedPeek(token.RPAREN)
	}
	return expr, nil
}

func parseArrayLiteral(p *Parser) (ast.Expr, error) {
	tok := p.r.Current()
	elements, err := p.parseExpressionList(token.RBRACKET)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Token: tok, Elements: elements}, nil
}

func parseHashLiteral(p *Parser) (ast.Expr, error) {
	hash := &ast.HashLiteral{Token: p.r.Current()}

	for !p.r.PeekIs(token.RBRACE) {
		p.r.Advance()
		key, err := p.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}

		if !p.r.ExpectPeek(token.COLON) {
			return nil, p.unexpectedPeek(token.COLON)
		}
		p.r.Advance()

		value, err := p.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}
		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if !p.r.PeekIs(token.RBRACE) && !p.r.ExpectPeek(token.COMMA) {
			return nil, p.unexpectedPeek(token.COMMA)
		}
	}

	if !p.r.ExpectPeek(token.RBRACE) {
		return nil, p.unexpectedPeek(token.RBRACE)
	}
	return hash, nil
}

func parseFunctionLiteral(p *Parser) (ast.Expr, error) {
	fn := &ast.FunctionLiteral{Token: p.r.Current()}

	if !p.r.ExpectPeek(token.LPAREN) {
		return nil, p.unexpectedPeek(token.LPAREN)
	}
	params, err := p.parseIdentifierList()
	if err != nil {
		return nil, err
	}
	fn.Params = params

	if !p.r.ExpectPeek(token.LBRACE) {
		return nil, p.unexpectedPeek(token.LBRACE)
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

func parseMacroLiteral(p *Parser) (ast.Expr, error) {
	macro := &ast.MacroLiteral{Token: p.r.Current()}

	if !p.r.ExpectPeek(token.LPAREN) {
		return nil, p.unexpectedPeek(token.LPAREN)
	}
	params, err := p.parseIdentifierList()
	if err != nil {
		return nil, err
	}
	macro.Params = params

	if !p.r.ExpectPeek(token.LBRACE) {
		return nil, p.unexpectedPeek(token.LBRACE)
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	macro.Body = body
	return macro, nil
}

func parsePrefixExpression(p *Parser) (ast.Expr, error) {
	tok := p.r.Current()
	pe := &ast.PrefixExpression{Token: tok, Operator: tok.Literal}
	p.r.Advance()

	right, err := p.parseExpression(Prefix)
	if err != nil {
		return nil, err
	}
	pe.Right = right
	return pe, nil
}

func parseIfExpression(p *Parser) (ast.Expr, error) {
	expr := &ast.IfExpression{Token: p.r.Current()}

	if !p.r.ExpectPeek(token.LPAREN) {
		return nil, p.unexpectedPeek(token.LPAREN)
	}
	p.r.Advance()

	cond, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	expr.Condition = cond

	if !p.r.ExpectPeek(token.RPAREN) {
		return nil, p.unexpectedPeek(token.RPAREN)
	}
	if !p.r.ExpectPeek(token.LBRACE) {
		return nil, p.unexpectedPeek(token.LBRACE)
	}

	cons, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	expr.Consequence = cons

	if p.r.PeekIs(token.ELSE) {
		p.r.Advance()
		if !p.r.ExpectPeek(token.LBRACE) {
			return nil, p.unexpectedPeek(token.LBRACE)
		}
		alt, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		expr.Alternative = alt
	}

	return expr, nil
}

// --- Infix handlers ---

func parseInfixExpression(p *Parser, left ast.Expr) (ast.Expr, error) {
	tok := p.r.Current()
	ie := &ast.InfixExpression{Token: tok, Left: left, Operator: tok.Literal}

	precedence := peekPrecedence(tok.Type)

	p.r.Advance()
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	ie.Right = right
	return ie, nil
}

func parseCallExpression(p *Parser, callee ast.Expr) (ast.Expr, error) {
	ce := &ast.CallExpression{Token: p.r.Current(), Callee: callee}
	args, err := p.parseExpressionList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	ce.Args = args
	return ce, nil
}

func parseIndexExpression(p *Parser, left ast.Expr) (ast.Expr, error) {
	ie := &ast.IndexExpression{Token: p.r.Current(), Left: left}
	p.r.Advance()

	index, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	ie.Index = index

	if !p.r.ExpectPeek(token.RBRACKET) {
		return nil, p.unexpectedPeek(token.RBRACKET)
	}
	return ie, nil
}

// --- Errors ---

func (p *Parser) unexpectedPeek(expected token.Type) error {
	return &UnexpectedTokenError{Expected: expected, Got: p.r.Peek().Type}
}

func (p *Parser) noPrefixParse(kind token.Type) error {
	return &NoPrefixParseError{Kind: kind}
}

// UnexpectedTokenError reports that expect_peek failed (spec §4.2).
type UnexpectedTokenError struct {
	Expected token.Type
	Got      token.Type
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected next token to be %s, got %s instead", e.Expected, e.Got)
}

// NoPrefixParseError reports a token kind with no registered prefix
// handler (spec §4.3 step 1).
type NoPrefixParseError struct {
	Kind token.Type
}

func (e *NoPrefixParseError) Error() string {
	return fmt.Sprintf("no prefix parse function for %s found", e.Kind)
}

// InvalidIntegerError reports an INT lexeme that doesn't fit an int64 or
// is otherwise malformed (spec §4.3).
type InvalidIntegerError struct {
	Lexeme string
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("could not parse %q as integer", e.Lexeme)
}
