package tilted

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Token is one lexical element of an expression. Exactly one payload field is
// meaningful, selected by Kind.
type Token struct {
	// Kind selects the token's payload.
	Kind TokenKind
	// Int is the value of a TokenInt, already wrapped to 128 bits.
	Int *big.Int
	// Flt is the value of a TokenFloat.
	Flt float64
	// Op is the operator of a TokenOp.
	Op Op
	// Fn is the function of a TokenFunc.
	Fn Func
	// Pos is the 1-based rune offset of the token's start, used only for
	// error reporting.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenInt:
		return "int:" + t.Int.String() + "@" + strconv.Itoa(t.Pos)
	case TokenFloat:
		return "float:" + strconv.FormatFloat(t.Flt, 'g', -1, 64) + "@" + strconv.Itoa(t.Pos)
	case TokenOp:
		return "op:" + t.Op.String() + "@" + strconv.Itoa(t.Pos)
	case TokenOpen:
		return "open:(@" + strconv.Itoa(t.Pos)
	case TokenClose:
		return "close:)@" + strconv.Itoa(t.Pos)
	case TokenFunc:
		return "func:" + t.Fn.String() + "@" + strconv.Itoa(t.Pos)
	case TokenEOF:
		return "eof@" + strconv.Itoa(t.Pos)
	default:
		return "none@" + strconv.Itoa(t.Pos)
	}
}

// TokenKind is the tag of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenInt is an integer literal.
	TokenInt
	// TokenFloat is a float literal.
	TokenFloat
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is a left parenthesis.
	TokenOpen
	// TokenClose is a right parenthesis.
	TokenClose
	// TokenFunc is the name of one of the known functions.
	TokenFunc
)

// TokenSource is a stream of tokens for the parser to consume. After the end
// of input, Next returns TokenEOF tokens forever. The parser reads a
// TokenSource linearly with a lookahead of one token; implementations need no
// rewinding beyond that.
type TokenSource interface {
	Next() (Token, error)
}

// Operators contains the runes which are considered to be operators, in the
// same order as the Op enumeration.
const Operators = "+-*/^"

// Lexer converts raw expression text into tokens. It implements TokenSource.
type Lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

// NewLexer creates a Lexer reading runes from src.
func NewLexer(src io.RuneScanner) *Lexer {
	return &Lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *Lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *Lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// Next scans the next token from the input. Once the end of input is reached,
// every subsequent call returns a TokenEOF token.
func (l *Lexer) Next() (Token, error) {
	if l.eof {
		return Token{Kind: TokenEOF, Pos: l.rune}, nil
	}
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.Kind = TokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			return l.scanNum(tok)
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			return l.scanIdent(tok)
		case r == '(':
			tok.Kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.Kind = TokenClose
			return tok, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.Kind = TokenOp
				tok.Op = Op(k + 1)
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans an integer or float literal. The literal is a float exactly
// when it contains a decimal point or an exponent.
func (l *Lexer) scanNum(tok Token) (Token, error) {
	var dig, dot, e, le, ed bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, err
		}
		if r == '+' || r == '-' {
			// A sign anywhere other than immediately following an exponent
			// marker starts a new token, as it is an operator.
			if !le {
				l.unreadRune()
				break
			}
			le = false
			l.buf.WriteRune(r)
			continue
		}
		if r != '.' && r != 'e' && r != 'E' && (r < '0' || r > '9') {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch r {
		case '.':
			if dot || e {
				return tok, l.error("number")
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return tok, l.error("number")
			}
			e = true
			le = true
		default:
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		}
	}
	if (!dig && !ed) || (e && !ed) {
		return tok, l.error("number")
	}
	text := l.buf.String()
	if dot || e {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return tok, l.error("number")
		}
		tok.Kind = TokenFloat
		tok.Flt = f
		return tok, nil
	}
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return tok, l.error("number")
	}
	tok.Kind = TokenInt
	tok.Int = wrap(i)
	return tok, nil
}

// scanIdent scans a function name. There are no variables, so any name that
// is not a known function is an error.
func (l *Lexer) scanIdent(tok Token) (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, err
		}
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	fn, ok := FuncByName(l.buf.String())
	if !ok {
		return tok, l.error("function")
	}
	tok.Kind = TokenFunc
	tok.Fn = fn
	return tok, nil
}

func (l *Lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid token in the raw input. It implements
// InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "function", or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
