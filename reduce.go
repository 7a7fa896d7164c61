package calc

import "github.com/edwingeng/deque"

// pass is a reduction pass that applies every occurrence of one operator.
type pass struct {
	op string
	// right indicates the pass scans right to left, i.e. the operator is
	// right-associative.
	right bool
	fn    binop
}

// passes are the reduction passes in the order they run. Each pass finishes
// before the next begins, so every * applies before any / and every + before
// any -, regardless of textual order: 8/2*3 is 8/(2*3).
var passes = [...]pass{
	{"^", true, pow},
	{"*", false, mul},
	{"/", false, div},
	{"+", false, add},
	{"-", false, sub},
}

// reduce folds a resolved token sequence into a single number. The sequence
// must contain only numbers and operators.
func (ctx *Context) reduce(toks []Token) (float64, error) {
	var seq deque.Deque = deque.NewDeque()
	for _, t := range toks {
		seq.PushBack(t)
	}
	for _, p := range passes {
		var err error
		if p.right {
			seq, err = ctx.reduceRight(seq, p)
		} else {
			seq, err = ctx.reduceLeft(seq, p)
		}
		if err != nil {
			return 0, err
		}
	}
	switch seq.Len() {
	case 0:
		return 0, &MalformedExpressionError{Col: 1}
	case 1:
		t := seq.Front().(Token)
		if t.Kind != TokenNum {
			return 0, &MalformedExpressionError{Col: t.Pos}
		}
		return t.Num, nil
	default:
		t := seq.Front().(Token)
		return 0, &MalformedExpressionError{Col: t.Pos}
	}
}

// reduceLeft applies p from left to right. Tokens move from the front of seq
// to the back of the result; the left operand of an operator is the last
// token already moved and the right operand is the next token in seq.
func (ctx *Context) reduceLeft(seq deque.Deque, p pass) (deque.Deque, error) {
	var out deque.Deque = deque.NewDeque()
	for seq.Len() > 0 {
		t := seq.PopFront().(Token)
		if !t.isOp(p.op) {
			out.PushBack(t)
			continue
		}
		if out.Len() == 0 || seq.Len() == 0 {
			return nil, &MalformedExpressionError{Col: t.Pos, Op: p.op}
		}
		l := out.PopBack().(Token)
		r := seq.PopFront().(Token)
		if l.Kind != TokenNum || r.Kind != TokenNum {
			return nil, &MalformedExpressionError{Col: t.Pos, Op: p.op}
		}
		out.PushBack(Token{Kind: TokenNum, Num: p.fn(ctx, l.Num, r.Num), Pos: l.Pos})
	}
	return out, nil
}

// reduceRight applies p from right to left, mirroring reduceLeft: tokens move
// from the back of seq to the front of the result.
func (ctx *Context) reduceRight(seq deque.Deque, p pass) (deque.Deque, error) {
	var out deque.Deque = deque.NewDeque()
	for seq.Len() > 0 {
		t := seq.PopBack().(Token)
		if !t.isOp(p.op) {
			out.PushFront(t)
			continue
		}
		if out.Len() == 0 || seq.Len() == 0 {
			return nil, &MalformedExpressionError{Col: t.Pos, Op: p.op}
		}
		l := seq.PopBack().(Token)
		r := out.PopFront().(Token)
		if l.Kind != TokenNum || r.Kind != TokenNum {
			return nil, &MalformedExpressionError{Col: t.Pos, Op: p.op}
		}
		out.PushFront(Token{Kind: TokenNum, Num: p.fn(ctx, l.Num, r.Num), Pos: l.Pos})
	}
	return out, nil
}
