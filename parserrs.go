package tilted

import "strconv"

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

// EndOfInputError is an error indicating that a token was required but the
// stream was exhausted: a missing operand, a missing closing parenthesis, or
// empty input. It implements InputError.
type EndOfInputError struct {
	// Col is the position at which input ended.
	Col int
}

func (err *EndOfInputError) Error() string {
	return errpos(err.Col, "unexpected end of input")
}

func (err *EndOfInputError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token where only a
// literal, function, or parenthesis was valid. Only + and - may prefix an
// operand. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the offending operator.
	Operator Op
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "invalid unary operator "+strconv.Quote(err.Operator.String()))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses: a parenthesised
// subexpression closed by the wrong token, or a right parenthesis with no
// matching left parenthesis. It implements InputError.
type BracketError struct {
	// Col is the position of the offending token.
	Col int
	// Left is the opening parenthesis, or empty if there was none.
	Left string
	// Right is the mismatched closing parenthesis, or empty if the
	// subexpression was never closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	if err.Right == "" {
		return errpos(err.Col, "open paren "+err.Left+" with no close paren")
	}
	return errpos(err.Col, "mismatched paren: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name not followed by a
// parenthesised argument. It implements InputError.
type CallError struct {
	// Col is the position of the token following the function name.
	Col int
	// Func is the function that was named.
	Func Func
}

func (err *CallError) Error() string {
	return errpos(err.Col, "function "+err.Func.String()+" must be called as "+err.Func.String()+"(expr)")
}

func (err *CallError) Pos() int {
	return err.Col
}

// TrailingTokenError is an error indicating a leftover token after a complete
// expression. A leftover right parenthesis reports a BracketError instead.
// It implements InputError.
type TrailingTokenError struct {
	// Col is the position of the leftover token.
	Col int
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "unexpected token after expression")
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*EndOfInputError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
	_ InputError = (*LexError)(nil)
)
