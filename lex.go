package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// Tokenize splits an expression into tokens in textual order. The text inside
// each outermost pair of parentheses becomes a single TokenGroup holding that
// text verbatim; it is only tokenized when the group is evaluated, so errors
// inside a group, other than unbalanced parentheses, are not reported here.
//
// Letters, underscores, digits, and dots form words. A word starting with a
// letter or underscore is a variable; any other word must be a decimal
// number like 12, .5, 3., or 1e9.
func Tokenize(text string) ([]Token, error) {
	var (
		toks  []Token
		word  strings.Builder
		wpos  int
		group strings.Builder
		depth int
		open  int
		col   int
	)
	flush := func() error {
		if word.Len() == 0 {
			return nil
		}
		tok, err := classify(word.String(), wpos)
		word.Reset()
		if err != nil {
			return err
		}
		toks = append(toks, tok)
		return nil
	}
	for _, r := range text {
		col++
		if depth > 0 {
			switch r {
			case ')':
				depth--
				if depth == 0 {
					toks = append(toks, Token{Kind: TokenGroup, Text: group.String(), Pos: open})
					group.Reset()
					continue
				}
			case '(':
				depth++
			}
			group.WriteRune(r)
			continue
		}
		if isWordRune(r) {
			if word.Len() == 0 {
				wpos = col
			}
			word.WriteRune(r)
			continue
		}
		// Anything else ends the current word, including an open paren, so
		// that tokens stay in textual order.
		if err := flush(); err != nil {
			return nil, err
		}
		switch {
		case r == '(':
			depth, open = 1, col
		case r == ')':
			return nil, &UnmatchedParenError{Col: col}
		case unicode.IsSpace(r):
			// do nothing
		case strings.ContainsRune(Operators, r):
			toks = append(toks, Token{Kind: TokenOp, Text: string(r), Pos: col})
		case r == '=':
			toks = append(toks, Token{Kind: TokenAssign, Text: "=", Pos: col})
		default:
			return nil, &UnknownCharacterError{Col: col, Char: r}
		}
	}
	if depth != 0 {
		return nil, &UnmatchedParenError{Col: open, Open: true}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return toks, nil
}

// classify creates the token for a complete word.
func classify(word string, pos int) (Token, error) {
	r := []rune(word)[0]
	if isNameStart(r) {
		return Token{Kind: TokenVar, Text: word, Pos: pos}, nil
	}
	if !isNumber(word) {
		return Token{}, &NumberError{Col: pos, Text: word}
	}
	f, err := strconv.ParseFloat(word, 64)
	// Out of range literals parse to ±Inf, which is the value we want.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, &NumberError{Col: pos, Text: word}
	}
	return Token{Kind: TokenNum, Num: f, Pos: pos}, nil
}

// isNumber reports whether a word is a decimal number: digits with at most
// one dot and at least one digit, optionally followed by e or E and one or
// more digits. A sign cannot appear in the exponent because + and - always
// end a word.
func isNumber(word string) bool {
	mant, exp, hasExp := strings.Cut(strings.ToLower(word), "e")
	dig, dot := false, false
	for _, r := range mant {
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	if !dig {
		return false
	}
	if !hasExp {
		return true
	}
	if exp == "" {
		return false
	}
	for _, r := range exp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isWordRune(r rune) bool {
	return isNameStart(r) || '0' <= r && r <= '9' || r == '.'
}

// IsName reports whether s is usable as a variable name: a letter or
// underscore followed by any letters, underscores, digits, or dots.
func IsName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isNameStart(r) {
			return false
		}
		if !isWordRune(r) {
			return false
		}
	}
	return true
}
