package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/zephyrtronium/calc"
)

const usage = `usage: calc [-t] [-p bits] [-f verb] [-g name=value]... [-l file] [expr...]

  -p bits        precision of exponentiation in bits (default 0, float64 only)
  -f verb        result formatting verb (default %g)
  -g name=value  variable definition (any number of times)
  -l file        load variables written by /write
  -t             print token sequences before evaluating

With no expressions, calc reads lines from stdin. Type /help for commands.`

func main() {
	log.SetFlags(0)
	opts, optind, err := getopt.Getopts(os.Args, "hp:f:g:l:t")
	if err != nil {
		log.Fatalln(err)
	}
	var (
		verb = "%g"
		prec uint
		with []string
		load string
		echo bool
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'p':
			p, err := strconv.ParseUint(opt.Value, 10, 32)
			if err != nil {
				log.Fatalf("invalid precision %q", opt.Value)
			}
			prec = uint(p)
		case 'f':
			verb = opt.Value
		case 'g':
			with = append(with, opt.Value)
		case 'l':
			load = opt.Value
		case 't':
			echo = true
		case 'h':
			printUsage(os.Stdout)
			return
		}
	}

	ctx := calc.NewContext(calc.Prec(prec))
	if load != "" {
		if err := readVars(ctx, load); err != nil {
			log.Fatal(err)
		}
	}
	for _, d := range with {
		if err := define(ctx, d); err != nil {
			log.Fatal(err)
		}
	}

	r := &repl{ctx: ctx, out: os.Stdout, verb: verb + "\n", echo: echo}
	if args := os.Args[optind:]; len(args) > 0 {
		failed := false
		for _, arg := range args {
			if !r.eval(arg) {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if r.line(sc.Text()) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// printUsage writes the usage text. It contains a formatting verb, so it
// must not go through a print function that interprets one.
func printUsage(w io.Writer) {
	io.WriteString(w, usage+"\n")
}

// define handles a name=value definition. The value is evaluated in a clone
// of ctx so that a value that is itself an assignment defines only name.
func define(ctx *calc.Context, def string) error {
	nm, val, ok := strings.Cut(def, "=")
	if !ok {
		return fmt.Errorf(`variable definitions must be "name=value", not %q`, def)
	}
	nm = strings.TrimSpace(nm)
	if !calc.IsName(nm) {
		return fmt.Errorf("invalid variable name %q", nm)
	}
	r, err := ctx.Clone().Eval(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("setting %s: %w", nm, err)
	}
	ctx.Set(nm, r)
	return nil
}
