package tilted

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. A node is
// built from its already-built children and never changes afterwards;
// evaluation and rendering are pure reads. Each composite node owns its
// children exclusively, so a tree is always acyclic and unshared.
type Node struct {
	kind nodeKind

	val Number // nodeNum
	fn  Func   // nodeCall

	left  *Node
	right *Node // binary kinds only
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // plain value, no children

	nodeNeg  // negate left
	nodeNop  // identity on left
	nodeCall // apply fn to left

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right
)

// Op is the closed operator enumeration shared by tokens and node
// constructors.
type Op int8

const (
	OpNone Op = iota
	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpCaret
)

func (op Op) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpStar:
		return "*"
	case OpSlash:
		return "/"
	case OpCaret:
		return "^"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Num creates a plain node holding a value.
func Num(v Number) *Node {
	return &Node{kind: nodeNum, val: v}
}

// Unary creates a unary node over x. OpPlus is the identity action and
// OpMinus is negation; no other operator is a valid unary action.
func Unary(op Op, x *Node) *Node {
	switch op {
	case OpPlus:
		return &Node{kind: nodeNop, left: x}
	case OpMinus:
		return &Node{kind: nodeNeg, left: x}
	default:
		panic("tilted: invalid unary operator " + op.String())
	}
}

// Call creates a unary node applying a named function to x.
func Call(fn Func, x *Node) *Node {
	return &Node{kind: nodeCall, fn: fn, left: x}
}

// Binary creates a binary node combining left and right with an arithmetic
// operator.
func Binary(left *Node, op Op, right *Node) *Node {
	var k nodeKind
	switch op {
	case OpPlus:
		k = nodeAdd
	case OpMinus:
		k = nodeSub
	case OpStar:
		k = nodeMul
	case OpSlash:
		k = nodeDiv
	case OpCaret:
		k = nodePow
	default:
		panic("tilted: invalid binary operator " + op.String())
	}
	return &Node{kind: k, left: left, right: right}
}

// Eval evaluates the tree to its value. Children evaluate left then right.
// Evaluation is total: arithmetic on Numbers never fails, so there is no
// error path.
func (n *Node) Eval() Number {
	switch n.kind {
	case nodeNum:
		return n.val
	case nodeNeg:
		return n.left.Eval().Neg()
	case nodeNop:
		return n.left.Eval()
	case nodeCall:
		return n.fn.eval(n.left.Eval())
	case nodeAdd:
		return n.left.Eval().Add(n.right.Eval())
	case nodeSub:
		return n.left.Eval().Sub(n.right.Eval())
	case nodeMul:
		return n.left.Eval().Mul(n.right.Eval())
	case nodeDiv:
		return n.left.Eval().Div(n.right.Eval())
	case nodePow:
		return n.left.Eval().Pow(n.right.Eval())
	default:
		panic("tilted: invalid AST node kind " + strconv.Itoa(int(n.kind)))
	}
}

// label is the single-line description of a node's action.
func (n *Node) label() string {
	switch n.kind {
	case nodeNum:
		return n.val.String()
	case nodeNeg:
		return "Op(-)"
	case nodeNop:
		return "Op(+)"
	case nodeCall:
		return "Func(" + n.fn.String() + ")"
	case nodeAdd:
		return "Op(+)"
	case nodeSub:
		return "Op(-)"
	case nodeMul:
		return "Op(*)"
	case nodeDiv:
		return "Op(/)"
	case nodePow:
		return "Op(^)"
	default:
		panic("tilted: invalid AST node kind " + strconv.Itoa(int(n.kind)))
	}
}

// Tree renders the node as lines of an indented tree diagram. A composite
// node's first line is its action label; each child's first line gets a
// branch marker, and subsequent lines get a continuation bar, except under
// the right child of a binary node where no sibling follows and the bar is
// plain indentation.
func (n *Node) Tree() []string {
	switch n.kind {
	case nodeNum:
		return []string{n.val.String()}
	case nodeNeg, nodeNop, nodeCall:
		lines := append([]string{n.label()}, n.left.Tree()...)
		branch(lines[1:], "|   ")
		return lines
	default:
		lines := append([]string{n.label()}, n.left.Tree()...)
		branch(lines[1:], "|   ")
		k := len(lines)
		lines = append(lines, n.right.Tree()...)
		branch(lines[k:], "    ")
		return lines
	}
}

// branch prefixes a child's rendered lines: the first with the branch marker,
// the rest with cont.
func branch(lines []string, cont string) {
	lines[0] = "`-- " + lines[0]
	for i := 1; i < len(lines); i++ {
		lines[i] = cont + lines[i]
	}
}

// String renders the tree diagram as a single string.
func (n *Node) String() string {
	return strings.Join(n.Tree(), "\n")
}
