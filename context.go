package calc

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Context is a context for evaluating expressions. It holds the variables
// that assignments create. It is not safe to use a Context concurrently;
// hosts that share one between goroutines must guard it with a mutex.
type Context struct {
	vars map[string]float64
	// toks caches tokenized text, mostly of groups, which are retokenized
	// every time they are evaluated. Cached sequences are never modified.
	toks *lru.Cache[string, []Token]
	// size is the capacity of toks, kept for clones.
	size int
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	precopt  uint
	cacheopt int
)

func (varopt) ctxOption()   {}
func (varsopt) ctxOption()  {}
func (precopt) ctxOption()  {}
func (cacheopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// Prec sets the precision in bits at which exponentiation is computed before
// rounding to float64. The default, zero, uses math.Pow directly. Other
// operators always use float64 arithmetic.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// CacheSize sets the number of tokenized texts the context remembers. Zero
// disables the cache. The default is 128.
func CacheSize(n int) ContextOption {
	return cacheopt(n)
}

const defaultCacheSize = 128

// NewContext creates a new evaluation context with no variables other than
// those given in options.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{size: defaultCacheSize}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. Assignments
// in the copy do not affect the original, nor vice versa.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		vars: make(map[string]float64, len(ctx.vars)),
		size: ctx.size,
		prec: ctx.prec,
	}
	for k, v := range ctx.vars {
		n.vars[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.vars[k] = v
			}
		case precopt:
			n.prec = uint(opt)
		case cacheopt:
			n.size = int(opt)
		default:
			panic("calc: unknown option type")
		}
	}
	if n.size > 0 {
		c, err := lru.New[string, []Token](n.size)
		if err != nil {
			// Only possible for a non-positive size.
			panic(err)
		}
		n.toks = c
	}
	return &n
}

// Eval evaluates an expression or an assignment and returns the result.
//
// An assignment is a variable name followed by = and an expression, like
// "X = 40 + 2". Its result is the value of the expression, which is also
// stored in the variable. The variable is written only if the expression
// evaluates successfully. Any other input is evaluated without changing
// the context.
func (ctx *Context) Eval(text string) (float64, error) {
	toks, err := ctx.tokenize(text)
	if err != nil {
		return 0, err
	}
	if isAssignment(toks) {
		v, err := ctx.evalTokens(toks[2:])
		if err != nil {
			return 0, err
		}
		ctx.Set(toks[0].Text, v)
		return v, nil
	}
	return ctx.evalTokens(toks)
}

// isAssignment reports whether toks has the form name = tokens...
func isAssignment(toks []Token) bool {
	return len(toks) > 2 && toks[0].Kind == TokenVar && toks[1].Kind == TokenAssign
}

// tokenize is Tokenize with the context's cache.
func (ctx *Context) tokenize(text string) ([]Token, error) {
	if ctx.toks == nil {
		return Tokenize(text)
	}
	if toks, ok := ctx.toks.Get(text); ok {
		return toks, nil
	}
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	ctx.toks.Add(text, toks)
	return toks, nil
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	if ctx.vars == nil {
		ctx.vars = make(map[string]float64)
	}
	ctx.vars[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether it is defined.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.vars[name]
	return v, ok
}

// Delete removes variables from the context and returns the number that
// were defined.
func (ctx *Context) Delete(names ...string) int {
	n := 0
	for _, name := range names {
		if _, ok := ctx.vars[name]; ok {
			delete(ctx.vars, name)
			n++
		}
	}
	return n
}

// Clear removes all variables from the context.
func (ctx *Context) Clear() {
	clear(ctx.vars)
}

// Vars returns the names of the defined variables in sorted order.
func (ctx *Context) Vars() []string {
	names := make([]string, 0, len(ctx.vars))
	for k := range ctx.vars {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Prec returns the precision used for exponentiation, or zero if
// exponentiation uses float64 only.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval is a shortcut to evaluate an expression in a new context.
func Eval(text string, opts ...ContextOption) (float64, error) {
	return NewContext(opts...).Eval(text)
}
