package tilted

import (
	"io"
	"strings"
)

// expr   := term (('+' | '-') term)*
// term   := power (('*' | '/') power)*
// power  := factor ('^' power)?
// factor := ('+' | '-')? atomic
// atomic := INT | FLOAT | FUNC '(' expr ')' | '(' expr ')'

// Parser builds an abstract syntax tree from a stream of tokens. It consumes
// the stream linearly with a lookahead of one token and never backtracks.
type Parser struct {
	src TokenSource
	buf *Token
}

// NewParser creates a Parser reading tokens from src.
func NewParser(src TokenSource) *Parser {
	return &Parser{src: src}
}

// peek returns the next token without consuming it.
func (p *Parser) peek() (Token, error) {
	if p.buf == nil {
		tok, err := p.src.Next()
		if err != nil {
			return tok, err
		}
		p.buf = &tok
	}
	return *p.buf, nil
}

// next consumes and returns the next token.
func (p *Parser) next() (Token, error) {
	if p.buf != nil {
		tok := *p.buf
		p.buf = nil
		return tok, nil
	}
	return p.src.Next()
}

// Parse parses one whole expression and requires the stream to be exhausted
// afterwards. Errors are returned immediately with no recovery and no partial
// result, since the token stream may be left mid-subexpression after a
// failure.
func (p *Parser) Parse() (*Node, error) {
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenEOF:
		return n, nil
	case TokenClose:
		return nil, &BracketError{Col: tok.Pos, Right: ")"}
	default:
		return nil, &TrailingTokenError{Col: tok.Pos}
	}
}

// parseExpr parses a sequence of terms joined by + and -, folding them into a
// left-leaning tree so the operators associate left.
func (p *Parser) parseExpr() (*Node, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenOp || (tok.Op != OpPlus && tok.Op != OpMinus) {
			return term, nil
		}
		p.next()
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		term = Binary(term, tok.Op, next)
	}
}

// parseTerm parses a sequence of powers joined by * and /, folded left like
// parseExpr.
func (p *Parser) parseTerm() (*Node, error) {
	power, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenOp || (tok.Op != OpStar && tok.Op != OpSlash) {
			return power, nil
		}
		p.next()
		next, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		power = Binary(power, tok.Op, next)
	}
}

// parsePower parses a factor optionally raised to a power. Recursing on the
// right operand makes ^ associate right: 2^3^2 is 2^(3^2).
func (p *Parser) parsePower() (*Node, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenOp || tok.Op != OpCaret {
		return factor, nil
	}
	p.next()
	exp, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return Binary(factor, OpCaret, exp), nil
}

// parseFactor parses an atomic with at most one leading + or -. Any other
// leading operator is left for parseAtomic to reject, so the error carries
// the operator's own position.
func (p *Parser) parseFactor() (*Node, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenEOF {
		return nil, &EndOfInputError{Col: tok.Pos}
	}
	if tok.Kind != TokenOp || (tok.Op != OpPlus && tok.Op != OpMinus) {
		return p.parseAtomic()
	}
	p.next()
	operand, err := p.parseAtomic()
	if err != nil {
		return nil, err
	}
	return Unary(tok.Op, operand), nil
}

// parseAtomic parses a single literal, function call, or parenthesised
// subexpression.
func (p *Parser) parseAtomic() (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenInt:
		return Num(NewFromBig(tok.Int)), nil
	case TokenFloat:
		return Num(NewFloat(tok.Flt)), nil
	case TokenFunc:
		return p.parseCall(tok.Fn)
	case TokenOpen:
		return p.parseParen()
	case TokenOp:
		// Valid unary operators were consumed by parseFactor.
		return nil, &OperatorError{Col: tok.Pos, Operator: tok.Op}
	case TokenClose:
		return nil, &BracketError{Col: tok.Pos, Right: ")"}
	default:
		return nil, &EndOfInputError{Col: tok.Pos}
	}
}

// parseCall parses the parenthesised argument of a named function.
func (p *Parser) parseCall(fn Func) (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenEOF {
		return nil, &EndOfInputError{Col: tok.Pos}
	}
	if tok.Kind != TokenOpen {
		return nil, &CallError{Col: tok.Pos, Func: fn}
	}
	arg, err := p.parseParen()
	if err != nil {
		return nil, err
	}
	return Call(fn, arg), nil
}

// parseParen parses the body and closing parenthesis of a parenthesised
// subexpression whose opening parenthesis is already consumed. Errors out of
// the body return immediately: the token stream may be mid-subexpression and
// resynchronising would be unsound.
func (p *Parser) parseParen() (*Node, error) {
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenClose:
		return n, nil
	case TokenEOF:
		return nil, &EndOfInputError{Col: tok.Pos}
	default:
		return nil, &BracketError{Col: tok.Pos, Left: "("}
	}
}

// Parse lexes and parses one expression from src.
func Parse(src io.RuneScanner) (*Node, error) {
	return NewParser(NewLexer(src)).Parse()
}

// ParseString lexes and parses one expression from a string.
func ParseString(src string) (*Node, error) {
	return Parse(strings.NewReader(src))
}

// EvalString is a shortcut to parse a string expression and evaluate it.
func EvalString(src string) (Number, error) {
	n, err := ParseString(src)
	if err != nil {
		return Number{}, err
	}
	return n.Eval(), nil
}
