// Package tilted implements the expression core of a calculator.
//
// An expression like "7 + 6 * 2 - 4 * (8 + 3)" is lexed into tokens, parsed
// by recursive descent into an abstract syntax tree, and evaluated to a
// Number, which is either an exact 128-bit integer or a float64. Arithmetic
// is total: there is no evaluation error path, and dividing by zero yields
// NaN rather than failing. Trees can also be rendered as indented diagrams
// for inspection.
//
// Exponentiation with ^ binds tighter than multiplication, and the twelve
// trigonometric functions (sin through acot) are called as "sin(x)".
package tilted
