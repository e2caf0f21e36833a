package tilted

import (
	"math/big"
	"strings"
	"testing"
)

func intTok(v int64, pos int) Token {
	return Token{Kind: TokenInt, Int: big.NewInt(v), Pos: pos}
}

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []Token{intTok(0, 1)}, 0},
		{"9876543210", []Token{intTok(9876543210, 1)}, 0},
		{"1 0", []Token{intTok(1, 1), intTok(0, 3)}, 0},
		{"1.0", []Token{{Kind: TokenFloat, Flt: 1, Pos: 1}}, 0},
		{"-1", []Token{{Kind: TokenOp, Op: OpMinus, Pos: 1}, intTok(1, 2)}, 0},
		{"1e1", []Token{{Kind: TokenFloat, Flt: 10, Pos: 1}}, 0},
		{"1e", []Token{{Pos: 1}}, 1},
		{"1e+1", []Token{{Kind: TokenFloat, Flt: 10, Pos: 1}}, 0},
		{"1e-1", []Token{{Kind: TokenFloat, Flt: 0.1, Pos: 1}}, 0},
		{"1.1.1", []Token{{Pos: 1}}, 1},
		{".", []Token{{Pos: 1}}, 1},
		{".5", []Token{{Kind: TokenFloat, Flt: 0.5, Pos: 1}}, 0},
		{"1+0", []Token{intTok(1, 1), {Kind: TokenOp, Op: OpPlus, Pos: 2}, intTok(0, 3)}, 0},
		// operators and parens
		{"+", []Token{{Kind: TokenOp, Op: OpPlus, Pos: 1}}, 0},
		{"^", []Token{{Kind: TokenOp, Op: OpCaret, Pos: 1}}, 0},
		{"(1)", []Token{{Kind: TokenOpen, Pos: 1}, intTok(1, 2), {Kind: TokenClose, Pos: 3}}, 0},
		{"1*2/3", []Token{
			intTok(1, 1),
			{Kind: TokenOp, Op: OpStar, Pos: 2},
			intTok(2, 3),
			{Kind: TokenOp, Op: OpSlash, Pos: 4},
			intTok(3, 5),
		}, 0},
		// functions
		{"sin", []Token{{Kind: TokenFunc, Fn: FuncSin, Pos: 1}}, 0},
		{"acot(0)", []Token{
			{Kind: TokenFunc, Fn: FuncAcot, Pos: 1},
			{Kind: TokenOpen, Pos: 5},
			intTok(0, 6),
			{Kind: TokenClose, Pos: 7},
		}, 0},
		{"bogus", []Token{{Pos: 1}}, 1},
		// erroneous symbols
		{"$", []Token{{Pos: 1}}, 1},
		{"1$", []Token{intTok(1, 1), {Pos: 2}}, 1},
	}

	for _, c := range cases {
		scan := NewLexer(strings.NewReader(c.src))
		errs := c.errs
		for _, want := range c.tokens {
			got, err := scan.Next()
			if err != nil {
				if errs > 0 {
					errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
				continue
			}
			if got.Kind == TokenEOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if !sameToken(got, want) {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		if errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

// sameToken compares tokens, comparing big.Int payloads by value.
func sameToken(a, b Token) bool {
	if a.Kind != b.Kind || a.Pos != b.Pos {
		return false
	}
	if a.Kind == TokenInt {
		return a.Int.Cmp(b.Int) == 0
	}
	return a.Flt == b.Flt && a.Op == b.Op && a.Fn == b.Fn
}

func TestLexEOFForever(t *testing.T) {
	scan := NewLexer(strings.NewReader("1"))
	if tok, err := scan.Next(); err != nil || tok.Kind != TokenInt {
		t.Fatalf("first token: %v, %v", tok, err)
	}
	for i := 0; i < 3; i++ {
		tok, err := scan.Next()
		if err != nil {
			t.Fatalf("EOF read %d: unexpected error %v", i, err)
		}
		if tok.Kind != TokenEOF {
			t.Fatalf("EOF read %d: got %v", i, tok)
		}
	}
}

func TestLexWrapsHugeLiterals(t *testing.T) {
	// 2^128 + 7 wraps to 7 at the token level already.
	scan := NewLexer(strings.NewReader("340282366920938463463374607431768211463"))
	tok, err := scan.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokenInt || tok.Int.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("got %v, want int 7", tok)
	}
}
