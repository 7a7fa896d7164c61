package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestPrintUsage(t *testing.T) {
	var b strings.Builder
	printUsage(&b)
	if got := b.String(); got != usage+"\n" {
		t.Errorf("usage written as %q", got)
	}
	if !strings.Contains(b.String(), "(default %g)") {
		t.Error("usage lost its literal verb")
	}
}

func TestDefine(t *testing.T) {
	cases := []struct {
		name string
		defs []string
		vars []string
		vals []float64
	}{
		{"num", []string{"x=2"}, []string{"x"}, []float64{2}},
		{"spaces", []string{" x = 1 + 2 "}, []string{"x"}, []float64{3}},
		{"uses-earlier", []string{"x=2", "y=x^3"}, []string{"x", "y"}, []float64{2, 8}},
		{"assignment-value", []string{"a = b = 3"}, []string{"a"}, []float64{3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := calc.NewContext()
			for _, d := range c.defs {
				if err := define(ctx, d); err != nil {
					t.Fatalf("defining %q: %v", d, err)
				}
			}
			if vars := ctx.Vars(); !reflect.DeepEqual(vars, c.vars) {
				t.Errorf("want variables %q, got %q", c.vars, vars)
			}
			for i, name := range c.vars {
				if v, _ := ctx.Lookup(name); v != c.vals[i] {
					t.Errorf("%s: want %g, got %g", name, c.vals[i], v)
				}
			}
		})
	}
}

func TestDefineErrors(t *testing.T) {
	cases := []struct {
		name string
		def  string
	}{
		{"no-eq", "x"},
		{"bad-name", "1x=2"},
		{"empty-name", "=2"},
		{"bad-value", "x=y+1"},
		{"bad-assignment-value", "x = b = y"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := calc.NewContext()
			if err := define(ctx, c.def); err == nil {
				t.Errorf("defining %q gave no error", c.def)
			}
			if vars := ctx.Vars(); len(vars) != 0 {
				t.Errorf("defining %q defined %q", c.def, vars)
			}
		})
	}
	err := define(calc.NewContext(), "x=y")
	var ue *calc.UnknownVariableError
	if !errors.As(err, &ue) {
		t.Errorf("%#v does not wrap *calc.UnknownVariableError", err)
	}
}
