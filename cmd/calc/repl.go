package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/calc"
)

const help = `Commands:
/vars             print variables
/clear            delete all variables
/del names...     delete variables
/read file        load variables from a file
/write file       save variables to a file
/help             print this help
/exit             exit

Anything else is evaluated. Operators are + - * / ^ with ( ) for grouping.
NAME = expr assigns the result to a variable.`

// repl evaluates lines of input against one context.
type repl struct {
	ctx  *calc.Context
	out  io.Writer
	verb string
	echo bool
}

var errColor = color.New(color.FgRed)

// line handles one line of input. It returns true if the session should
// end.
func (r *repl) line(text string) bool {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return false
	case strings.HasPrefix(text, "/"):
		return r.command(text[1:])
	default:
		r.eval(text)
		return false
	}
}

// eval evaluates an expression and prints its result or error. It returns
// false if evaluation failed.
func (r *repl) eval(text string) bool {
	if r.echo {
		toks, err := calc.Tokenize(text)
		if err == nil {
			fmt.Fprintln(r.out, calc.FormatTokens(toks))
		}
	}
	v, err := r.ctx.Eval(text)
	if err != nil {
		r.fail(err)
		return false
	}
	fmt.Fprintf(r.out, r.verb, v)
	return true
}

func (r *repl) fail(err error) {
	errColor.Fprintln(r.out, err)
}

func (r *repl) command(text string) bool {
	cmd, args, _ := strings.Cut(text, " ")
	args = strings.TrimSpace(args)
	switch cmd {
	case "exit":
		return true
	case "help":
		fmt.Fprintln(r.out, help)
	case "vars":
		for _, name := range r.ctx.Vars() {
			v, _ := r.ctx.Lookup(name)
			fmt.Fprintf(r.out, "%s = "+r.verb, name, v)
		}
	case "clear":
		r.ctx.Clear()
	case "del":
		names := strings.Fields(args)
		if len(names) == 0 {
			r.fail(errors.New("/del needs variable names"))
			break
		}
		if n := r.ctx.Delete(names...); n != len(names) {
			r.fail(fmt.Errorf("deleted %d of %d variables", n, len(names)))
		}
	case "read":
		if args == "" {
			r.fail(errors.New("/read needs a file name"))
			break
		}
		if err := readVars(r.ctx, args); err != nil {
			r.fail(err)
		}
	case "write":
		if args == "" {
			r.fail(errors.New("/write needs a file name"))
			break
		}
		if err := writeVars(r.ctx, args); err != nil {
			r.fail(err)
		}
	default:
		r.fail(fmt.Errorf("unknown command /%s", cmd))
	}
	return false
}

func readVars(ctx *calc.Context, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return ctx.ReadVars(f)
}

func writeVars(ctx *calc.Context, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := ctx.WriteVars(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
