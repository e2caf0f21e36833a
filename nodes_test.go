package tilted

import (
	"reflect"
	"strings"
	"testing"
)

func TestTreeLeaf(t *testing.T) {
	lines := Num(NewInt(42)).Tree()
	if !reflect.DeepEqual(lines, []string{"42"}) {
		t.Errorf("got %q", lines)
	}
}

func TestTreeBinaryOverLeaves(t *testing.T) {
	n := Binary(Num(NewInt(1)), OpPlus, Num(NewInt(2)))
	want := []string{
		"Op(+)",
		"`-- 1",
		"`-- 2",
	}
	if got := n.Tree(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTreeNested(t *testing.T) {
	// 1 * 2 - 3, with the subtraction on top.
	n := Binary(
		Binary(Num(NewInt(1)), OpStar, Num(NewInt(2))),
		OpMinus,
		Num(NewInt(3)),
	)
	// The left child's continuation lines carry the vertical bar; the right
	// child has no sibling below it and indents plainly.
	want := strings.Join([]string{
		"Op(-)",
		"`-- Op(*)",
		"|   `-- 1",
		"|   `-- 2",
		"`-- 3",
	}, "\n")
	if got := n.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	m := Binary(
		Num(NewInt(3)),
		OpMinus,
		Binary(Num(NewInt(1)), OpStar, Num(NewInt(2))),
	)
	want = strings.Join([]string{
		"Op(-)",
		"`-- 3",
		"`-- Op(*)",
		"    `-- 1",
		"    `-- 2",
	}, "\n")
	if got := m.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeUnary(t *testing.T) {
	n := Unary(OpMinus, Num(NewInt(5)))
	want := []string{
		"Op(-)",
		"`-- 5",
	}
	if got := n.Tree(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	// A unary node's operand keeps the continuation bar on deeper lines.
	m := Unary(OpPlus, Binary(Num(NewInt(1)), OpSlash, Num(NewInt(2))))
	want = []string{
		"Op(+)",
		"`-- Op(/)",
		"|   `-- 1",
		"|   `-- 2",
	}
	if got := m.Tree(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTreeCall(t *testing.T) {
	n := Call(FuncSin, Num(NewFloat(0.5)))
	want := []string{
		"Func(sin)",
		"`-- 0.5",
	}
	if got := n.Tree(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTreeLabels(t *testing.T) {
	cases := []struct {
		n    *Node
		want string
	}{
		{Binary(Num(NewInt(0)), OpPlus, Num(NewInt(0))), "Op(+)"},
		{Binary(Num(NewInt(0)), OpMinus, Num(NewInt(0))), "Op(-)"},
		{Binary(Num(NewInt(0)), OpStar, Num(NewInt(0))), "Op(*)"},
		{Binary(Num(NewInt(0)), OpSlash, Num(NewInt(0))), "Op(/)"},
		{Binary(Num(NewInt(0)), OpCaret, Num(NewInt(0))), "Op(^)"},
		{Unary(OpMinus, Num(NewInt(0))), "Op(-)"},
		{Unary(OpPlus, Num(NewInt(0))), "Op(+)"},
		{Call(FuncAcsc, Num(NewInt(1))), "Func(acsc)"},
	}
	for _, c := range cases {
		if got := c.n.Tree()[0]; got != c.want {
			t.Errorf("got label %q, want %q", got, c.want)
		}
	}
}

func TestEvalTree(t *testing.T) {
	cases := []struct {
		name string
		n    *Node
		want Number
	}{
		{"num", Num(NewInt(7)), NewInt(7)},
		{"iden", Unary(OpPlus, Num(NewInt(7))), NewInt(7)},
		{"neg", Unary(OpMinus, Num(NewFloat(7))), NewFloat(-7)},
		{"add", Binary(Num(NewInt(4)), OpPlus, Num(NewInt(5))), NewInt(9)},
		{"sub", Binary(Num(NewInt(4)), OpMinus, Num(NewInt(5))), NewInt(-1)},
		{"mul", Binary(Num(NewInt(4)), OpStar, Num(NewInt(5))), NewInt(20)},
		{"div", Binary(Num(NewInt(9)), OpSlash, Num(NewInt(2))), NewInt(4)},
		{"pow", Binary(Num(NewInt(2)), OpCaret, Num(NewInt(10))), NewInt(1024)},
		{"call", Call(FuncCos, Num(NewInt(0))), NewFloat(1)},
		{
			"nested",
			Binary(
				Unary(OpMinus, Num(NewInt(3))),
				OpStar,
				Binary(Num(NewFloat(1)), OpPlus, Num(NewInt(2))),
			),
			NewFloat(-9),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.n.Eval()
			if !got.Equal(c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
			if got.IsInt() != c.want.IsInt() {
				t.Errorf("wrong variant: got %v, want %v", got, c.want)
			}
		})
	}
}

func TestEvalIsPure(t *testing.T) {
	n := Binary(Num(NewInt(6)), OpSlash, Num(NewInt(2)))
	a := n.Eval()
	b := n.Eval()
	if !a.Equal(b) {
		t.Errorf("repeated evaluation differs: %v then %v", a, b)
	}
	if !a.Equal(NewInt(3)) {
		t.Errorf("got %v, want 3", a)
	}
}
