// Package calc implements a single-line calculator with variables.
//
// An input is either an expression, like "2 ^ 3 ^ 2 - X", or an assignment,
// like "X = 40 + 2", which stores its result in the evaluation context for
// later inputs to use. Numbers are float64, and the operators are + - * / ^
// with parentheses for grouping. A minus sign is unary only at the start of
// an expression or group: "-4 * 2" and "3 * (-2)" work, but "3 * -2" does
// not.
//
// Operators apply in five passes, one per operator: ^ from right to left,
// then *, /, +, and - each from left to right. Because * finishes before /
// starts and + before -, "8 / 2 * 3" is 8/6 and "10 - 2 + 3" is 5.
package calc
