package calc

import (
	"strconv"
	"strings"
)

// Token is a classified unit of an expression.
type Token struct {
	// Kind is the token's kind.
	Kind TokenKind
	// Text is the variable name, operator, or the raw text inside a group.
	// It is empty for numbers.
	Text string
	// Num is the value of a number token.
	Num float64
	// Pos is the position of the token's first rune in the text it was
	// scanned from. For groups, this is the position of the open
	// parenthesis.
	Pos int
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a number.
	TokenNum
	// TokenVar is a variable name.
	TokenVar
	// TokenOp is one of the operators + - * / ^.
	TokenOp
	// TokenGroup is the unparsed text between a balanced pair of
	// parentheses.
	TokenGroup
	// TokenAssign is the = sign.
	TokenAssign
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenVar:
		return "Var"
	case TokenOp:
		return "Op"
	case TokenGroup:
		return "Group"
	case TokenAssign:
		return "Assign"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (t Token) String() string {
	var b strings.Builder
	t.fmt(&b)
	return b.String()
}

func (t Token) fmt(b *strings.Builder) {
	switch t.Kind {
	case TokenNum:
		b.WriteString(strconv.FormatFloat(t.Num, 'g', -1, 64))
	case TokenVar, TokenOp:
		b.WriteString(t.Text)
	case TokenGroup:
		b.WriteByte('(')
		b.WriteString(t.Text)
		b.WriteByte(')')
	case TokenAssign:
		b.WriteByte('=')
	default:
		// Invalid tokens use invalid characters.
		b.WriteString("$" + t.Text + "$")
	}
}

// FormatTokens writes a token sequence with square brackets around the whole
// sequence and single spaces between tokens, e.g. "[X = 2 * (1 + 1)]".
func FormatTokens(toks []Token) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		t.fmt(&b)
	}
	b.WriteByte(']')
	return b.String()
}

// isOp reports whether t is the operator op.
func (t Token) isOp(op string) bool {
	return t.Kind == TokenOp && t.Text == op
}
