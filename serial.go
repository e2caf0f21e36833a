package tilted

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
)

// Serialized trees carry an explicit kind discriminant on every record, and
// loading validates each discriminant against the closed node and action
// sets, so a deserialized tree always evaluates identically to the original.

type jsonNumber struct {
	Int *string `json:"int,omitempty"`
	Flt *string `json:"flt,omitempty"`
}

// MarshalJSON encodes the Number with its variant made explicit. Both
// variants encode their value as a string: integers would not survive the
// float64 round trip of ordinary JSON numbers, and NaN has no JSON number
// form at all.
func (n Number) MarshalJSON() ([]byte, error) {
	var v jsonNumber
	switch n.kind {
	case numInt:
		s := n.int().String()
		v.Int = &s
	case numFlt:
		s := strconv.FormatFloat(n.f, 'g', -1, 64)
		v.Flt = &s
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes a Number, validating that exactly one variant is
// present.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v jsonNumber
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v.Int != nil && v.Flt == nil:
		i, ok := new(big.Int).SetString(*v.Int, 10)
		if !ok {
			return fmt.Errorf("tilted: invalid integer %q", *v.Int)
		}
		*n = NewFromBig(i)
	case v.Flt != nil && v.Int == nil:
		f, err := strconv.ParseFloat(*v.Flt, 64)
		if err != nil {
			return fmt.Errorf("tilted: invalid float %q", *v.Flt)
		}
		*n = NewFloat(f)
	default:
		return fmt.Errorf("tilted: number must have exactly one of int and flt")
	}
	return nil
}

type jsonNode struct {
	Kind  string          `json:"kind"`
	Value *Number         `json:"value,omitempty"`
	Op    string          `json:"op,omitempty"`
	Func  string          `json:"func,omitempty"`
	X     json.RawMessage `json:"x,omitempty"`
	Left  json.RawMessage `json:"left,omitempty"`
	Right json.RawMessage `json:"right,omitempty"`
}

// MarshalJSON encodes the tree with a kind discriminant on every node: "num"
// with the value, "unary" with the operator and operand, "call" with the
// function name and operand, or "binary" with the operator and both children.
func (n *Node) MarshalJSON() ([]byte, error) {
	v := jsonNode{}
	switch n.kind {
	case nodeNum:
		v.Kind = "num"
		val := n.val
		v.Value = &val
		return json.Marshal(v)
	case nodeNeg, nodeNop:
		v.Kind = "unary"
		if n.kind == nodeNeg {
			v.Op = "-"
		} else {
			v.Op = "+"
		}
		x, err := json.Marshal(n.left)
		if err != nil {
			return nil, err
		}
		v.X = x
		return json.Marshal(v)
	case nodeCall:
		v.Kind = "call"
		v.Func = n.fn.String()
		x, err := json.Marshal(n.left)
		if err != nil {
			return nil, err
		}
		v.X = x
		return json.Marshal(v)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		v.Kind = "binary"
		v.Op = n.binOp().String()
		l, err := json.Marshal(n.left)
		if err != nil {
			return nil, err
		}
		r, err := json.Marshal(n.right)
		if err != nil {
			return nil, err
		}
		v.Left, v.Right = l, r
		return json.Marshal(v)
	default:
		return nil, fmt.Errorf("tilted: cannot marshal node kind %d", n.kind)
	}
}

// binOp maps a binary node kind back to its operator.
func (n *Node) binOp() Op {
	switch n.kind {
	case nodeAdd:
		return OpPlus
	case nodeSub:
		return OpMinus
	case nodeMul:
		return OpStar
	case nodeDiv:
		return OpSlash
	case nodePow:
		return OpCaret
	default:
		return OpNone
	}
}

// opByName maps an operator label back to the Op enumeration.
func opByName(s string) (Op, bool) {
	switch s {
	case "+":
		return OpPlus, true
	case "-":
		return OpMinus, true
	case "*":
		return OpStar, true
	case "/":
		return OpSlash, true
	case "^":
		return OpCaret, true
	default:
		return OpNone, false
	}
}

// UnmarshalJSON decodes a tree, rejecting any record whose discriminant is
// not in the closed node, operator, or function sets.
func (n *Node) UnmarshalJSON(data []byte) error {
	var v jsonNode
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.Kind {
	case "num":
		if v.Value == nil {
			return fmt.Errorf("tilted: num node missing value")
		}
		*n = Node{kind: nodeNum, val: *v.Value}
	case "unary":
		x, err := childNode(v.X)
		if err != nil {
			return err
		}
		switch v.Op {
		case "-":
			*n = Node{kind: nodeNeg, left: x}
		case "+":
			*n = Node{kind: nodeNop, left: x}
		default:
			return fmt.Errorf("tilted: invalid unary operator %q", v.Op)
		}
	case "call":
		fn, ok := FuncByName(v.Func)
		if !ok {
			return fmt.Errorf("tilted: unknown function %q", v.Func)
		}
		x, err := childNode(v.X)
		if err != nil {
			return err
		}
		*n = Node{kind: nodeCall, fn: fn, left: x}
	case "binary":
		op, ok := opByName(v.Op)
		if !ok {
			return fmt.Errorf("tilted: invalid binary operator %q", v.Op)
		}
		l, err := childNode(v.Left)
		if err != nil {
			return err
		}
		r, err := childNode(v.Right)
		if err != nil {
			return err
		}
		*n = *Binary(l, op, r)
	default:
		return fmt.Errorf("tilted: invalid node kind %q", v.Kind)
	}
	return nil
}

// childNode decodes a required child record.
func childNode(data json.RawMessage) (*Node, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("tilted: node missing operand")
	}
	x := new(Node)
	if err := x.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return x, nil
}
