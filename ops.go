package calc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// binop is the arithmetic for one operator. It follows float64 semantics:
// division by zero and similar give infinities or NaN rather than errors.
type binop func(ctx *Context, l, r float64) float64

func add(ctx *Context, l, r float64) float64 { return l + r }
func sub(ctx *Context, l, r float64) float64 { return l - r }
func mul(ctx *Context, l, r float64) float64 { return l * r }
func div(ctx *Context, l, r float64) float64 { return l / r }

// pow computes l^r. With a nonzero precision, a finite nonzero result of
// math.Pow for a positive finite base is recomputed at that precision with
// bigfloat.Pow and rounded once to float64.
func pow(ctx *Context, l, r float64) float64 {
	z := math.Pow(l, r)
	if ctx.prec == 0 || !(l > 0) || math.IsInf(l, 0) || math.IsInf(r, 0) || math.IsNaN(r) {
		return z
	}
	if z == 0 || math.IsInf(z, 0) || math.IsNaN(z) {
		// Overflow and underflow stay as math.Pow has them. bigfloat would
		// find the same result much more slowly.
		return z
	}
	if r == 0 || r == 1 || l == 1 {
		return z
	}
	x := new(big.Float).SetPrec(ctx.prec).SetFloat64(l)
	y := new(big.Float).SetPrec(ctx.prec).SetFloat64(r)
	bigfloat.Pow(x, x, y)
	f, _ := x.Float64()
	return f
}
