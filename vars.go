package calc

import (
	"fmt"
	"io"
	"strconv"

	"github.com/oarkflow/json"
)

// WriteVars writes the context's variables to w as a JSON object mapping
// each name to its value in decimal. Values are strings so that NaN and
// infinities survive the round trip.
func (ctx *Context) WriteVars(w io.Writer) error {
	m := make(map[string]string, len(ctx.vars))
	for k, v := range ctx.vars {
		m[k] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// ReadVars reads variables written by WriteVars and sets them in the
// context, keeping any other variables. If any name or value is invalid,
// ReadVars returns an error and the context is unchanged.
func (ctx *Context) ReadVars(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("reading variables: %w", err)
	}
	vals := make(map[string]float64, len(m))
	for k, s := range m {
		if !IsName(k) {
			return fmt.Errorf("reading variables: invalid name %q", k)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("reading variables: value of %s: %w", k, err)
		}
		vals[k] = v
	}
	for k, v := range vals {
		ctx.Set(k, v)
	}
	return nil
}
