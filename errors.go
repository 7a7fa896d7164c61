package calc

import "strconv"

// UnmatchedParenError is an error indicating parentheses that do not
// balance. It implements InputError.
type UnmatchedParenError struct {
	// Col is the position of the offending parenthesis. For an unclosed
	// group, it is the outermost open parenthesis.
	Col int
	// Open is true if the error is an open parenthesis with no close.
	Open bool
}

func (err *UnmatchedParenError) Error() string {
	if err.Open {
		return errpos(err.Col, "'(' with no closing ')'")
	}
	return errpos(err.Col, "')' with no opening '('")
}

func (err *UnmatchedParenError) Pos() int {
	return err.Col
}

// UnknownCharacterError is an error indicating a character that cannot
// appear in an expression. It implements InputError.
type UnknownCharacterError struct {
	// Col is the position of the character.
	Col int
	// Char is the character.
	Char rune
}

func (err *UnknownCharacterError) Error() string {
	return errpos(err.Col, "unknown character "+strconv.QuoteRune(err.Char))
}

func (err *UnknownCharacterError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a word that starts like a number but
// does not parse as one, e.g. "1.2.3" or "2x". It implements InputError.
type NumberError struct {
	// Col is the position of the start of the word.
	Col int
	// Text is the word.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// UnknownVariableError is an error from a lookup for a variable that has
// never been assigned. It implements InputError.
type UnknownVariableError struct {
	// Col is the position of the variable.
	Col int
	// Name is the name that was missing.
	Name string
}

func (err *UnknownVariableError) Error() string {
	return errpos(err.Col, "unknown variable "+strconv.Quote(err.Name))
}

func (err *UnknownVariableError) Pos() int {
	return err.Col
}

// UnaryMinusError is an error indicating a leading minus followed by
// something other than a number. It implements InputError.
type UnaryMinusError struct {
	// Col is the position of the minus sign.
	Col int
}

func (err *UnaryMinusError) Error() string {
	return errpos(err.Col, "only a number may follow unary minus")
}

func (err *UnaryMinusError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating an expression that does
// not reduce to a single number. It implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the operator that lacked operands, or of the
	// start of the expression if Op is empty.
	Col int
	// Op is the operator that could not be applied. It is empty if the
	// passes completed without reducing the expression to one number.
	Op string
}

func (err *MalformedExpressionError) Error() string {
	if err.Op == "" {
		return errpos(err.Col, "malformed expression, cannot evaluate")
	}
	return errpos(err.Col, "malformed expression, cannot apply "+strconv.Quote(err.Op))
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the character that caused the error, counted from the start
	// of the whole input even when the error arose in a parenthesized group.
	Pos() int
}

// shift moves the position of an error from a group's own text to the
// enclosing input. base is the number of runes preceding the group's text.
func shift(err error, base int) error {
	if base == 0 {
		return err
	}
	switch err := err.(type) {
	case *UnmatchedParenError:
		err.Col += base
	case *UnknownCharacterError:
		err.Col += base
	case *NumberError:
		err.Col += base
	case *UnknownVariableError:
		err.Col += base
	case *UnaryMinusError:
		err.Col += base
	case *MalformedExpressionError:
		err.Col += base
	}
	return err
}

var (
	_ InputError = (*UnmatchedParenError)(nil)
	_ InputError = (*UnknownCharacterError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*UnknownVariableError)(nil)
	_ InputError = (*UnaryMinusError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
)
