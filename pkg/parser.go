package vex

import (
	"strconv"
	"strings"
)

// Parser turns a token slice into a Program. It owns its cursor and never
// backtracks.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

func Parse(tokens []Token) (*Program, error) {
	return NewParser(tokens).Run()
}

func (p *Parser) Run() (*Program, error) {
	prog := &Program{}

	for p.peek().isValid() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		if stmt != nil {
			prog.Body = append(prog.Body, stmt)
		}
	}

	return prog, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Typ: TokenEOF}
	}

	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if tok.isValid() {
		p.pos++
	}

	return tok
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) errorf(kind SyntaxErrorKind, tok Token, expected string) error {
	if !tok.isValid() {
		kind = UnexpectedEOF
	}

	return &SyntaxError{
		Kind:     kind,
		Token:    tok.Value,
		Expected: expected,
	}
}

// statement parses one top-level element. A bare ';' yields a nil statement.
func (p *Parser) statement() (Stmt, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenVar:
		return p.varDecl()
	case TokenSemicolon:
		p.next()
		return nil, nil
	default:
		return p.expr()
	}
}

func (p *Parser) varDecl() (*VariableDecl, error) {
	p.next() // var keyword

	name := p.next()
	// Type tags are valid names, as they are in expressions
	if name.Typ != TokenIdentifier && name.Typ != TokenTypeTag {
		return nil, p.errorf(UnexpectedToken, name, "variable name")
	}

	if colon := p.peek(); colon.Typ != TokenColon {
		return nil, p.errorf(MissingColon, colon, "':'")
	}
	p.next()

	typ := p.next()
	dataType := DataType(strings.TrimSpace(typ.Value))
	if typ.Typ != TokenTypeTag || !dataType.valid() {
		return nil, p.errorf(UnexpectedToken, typ, "int or float")
	}

	return &VariableDecl{
		Name:     strings.TrimSpace(name.Value),
		DataType: dataType,
	}, nil
}

func (p *Parser) expr() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenInteger:
		return p.numberLiteral()
	case TokenFloat:
		return p.floatLiteral()
	case TokenIdentifier, TokenTypeTag:
		// Type tags match the identifier pattern and read as variables here
		id := &Variable{Name: strings.TrimSpace(p.next().Value)}
		if p.check(TokenOperator) {
			return p.binaryExpr(id)
		}

		return id, nil
	default:
		return nil, p.errorf(UnexpectedToken, tok, "")
	}
}

func (p *Parser) numberLiteral() (Expr, error) {
	tok := p.next()
	v, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, p.errorf(UnexpectedToken, tok, "integer literal")
	}

	return &NumberLiteral{Value: v}, nil
}

func (p *Parser) floatLiteral() (Expr, error) {
	tok := p.next()
	v, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, p.errorf(UnexpectedToken, tok, "float literal")
	}

	return &FloatLiteral{Value: v}, nil
}

// binaryExpr consumes an operator and parses the whole remaining expression
// as the right operand, then absorbs a single trailing ';'.
func (p *Parser) binaryExpr(left Expr) (Expr, error) {
	op := p.next()

	right, err := p.expr()
	if err != nil {
		return nil, err
	}

	if p.check(TokenSemicolon) {
		p.next()
	}

	return &BinaryExpr{
		Operation: BinaryOp(strings.TrimSpace(op.Value)),
		Left:      left,
		Right:     right,
	}, nil
}
