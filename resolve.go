package calc

// evalText tokenizes and evaluates the text of an expression or group.
func (ctx *Context) evalText(text string) (float64, error) {
	toks, err := ctx.tokenize(text)
	if err != nil {
		return 0, err
	}
	return ctx.evalTokens(toks)
}

// evalTokens evaluates a token sequence: it resolves every variable and
// group to a number, folds a leading unary minus, and reduces the result.
// toks itself is not modified.
func (ctx *Context) evalTokens(toks []Token) (float64, error) {
	seq := make([]Token, len(toks))
	for i, t := range toks {
		r, err := ctx.resolve(t)
		if err != nil {
			return 0, err
		}
		seq[i] = r
	}
	seq, err := negate(seq)
	if err != nil {
		return 0, err
	}
	return ctx.reduce(seq)
}

// resolve converts a variable or group token into the number it stands for.
// Numbers and operators are returned unchanged.
func (ctx *Context) resolve(t Token) (Token, error) {
	switch t.Kind {
	case TokenVar:
		v, ok := ctx.vars[t.Text]
		if !ok {
			return Token{}, &UnknownVariableError{Col: t.Pos, Name: t.Text}
		}
		return Token{Kind: TokenNum, Num: v, Pos: t.Pos}, nil
	case TokenGroup:
		// Groups are evaluated as independent expressions, so a minus at
		// the start of a group is unary again.
		v, err := ctx.evalText(t.Text)
		if err != nil {
			return Token{}, shift(err, t.Pos)
		}
		return Token{Kind: TokenNum, Num: v, Pos: t.Pos}, nil
	case TokenAssign:
		return Token{}, &MalformedExpressionError{Col: t.Pos, Op: "="}
	}
	return t, nil
}

// negate folds a minus in the first position into the number that follows
// it. Minus signs anywhere else are binary.
func negate(seq []Token) ([]Token, error) {
	if len(seq) < 2 || !seq[0].isOp("-") {
		return seq, nil
	}
	if seq[1].Kind != TokenNum {
		return nil, &UnaryMinusError{Col: seq[0].Pos}
	}
	seq[1].Num = -seq[1].Num
	seq[1].Pos = seq[0].Pos
	return seq[1:], nil
}
