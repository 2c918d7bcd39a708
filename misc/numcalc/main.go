package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	decnum "github.com/shabbyrobe/go-decnum"
)

// A small calculator for poking at I128 and Decimal values from the shell,
// mostly useful for checking what the library does with an awkward input
// before writing a test for it.

const usage = `Number calculator

Usage: numcalc [-bits] [-json] <i128|dec> <a> <op> <b>
       numcalc [-bits] [-json] dec <a> <round|floor|ceil|trunc|abs|neg> [n]
       numcalc [-bits] [-json] i128 <a> <abs|neg>

Binary ops: + - * / % cmp ('%' is i128 only)`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type result struct {
	Type   string      `json:"type"`
	Op     string      `json:"op"`
	Args   []string    `json:"args"`
	Result interface{} `json:"result"`
	Bits   [4]uint32   `json:"bits"`
}

func run() error {
	var bits, asJSON bool
	flag.BoolVar(&bits, "bits", false, "Dump the binary layout of the result")
	flag.BoolVar(&asJSON, "json", false, "Print the result as JSON")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) < 3 {
		flag.Usage()
		return fmt.Errorf("missing args")
	}

	var res result
	var err error
	switch args[0] {
	case "i128":
		res, err = runI128(args[1:])
	case "dec":
		res, err = runDecimal(args[1:])
	default:
		return fmt.Errorf("type must be i128 or dec, found %q", args[0])
	}
	if err != nil {
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		fmt.Println(res.Result)
	}

	if bits {
		spew.Dump(res.Bits)
	}
	return nil
}

func runI128(args []string) (res result, err error) {
	res.Type, res.Op, res.Args = "i128", args[1], args
	a, err := decnum.ParseI128(args[0])
	if err != nil {
		return res, err
	}

	var out decnum.I128
	switch op := args[1]; op {
	case "abs":
		out = a.Abs()
	case "neg":
		out = a.Neg()

	case "+", "-", "*", "/", "%", "cmp":
		if len(args) < 3 {
			return res, fmt.Errorf("op %q needs two operands", op)
		}
		b, err := decnum.ParseI128(args[2])
		if err != nil {
			return res, err
		}
		if (op == "/" || op == "%") && b.IsZero() {
			return res, decnum.ErrDivisionByZero.New("i128 %s %s 0", a, op)
		}

		switch op {
		case "+":
			out = a.Add(b)
		case "-":
			out = a.Sub(b)
		case "*":
			out = a.Mul(b)
		case "/":
			out = a.Quo(b)
		case "%":
			out = a.Rem(b)
		case "cmp":
			res.Result = a.Cmp(b)
			return res, nil
		}

	default:
		return res, fmt.Errorf("unknown i128 op %q", op)
	}

	res.Result, res.Bits = out, out.Bits()
	return res, nil
}

func runDecimal(args []string) (res result, err error) {
	res.Type, res.Op, res.Args = "dec", args[1], args
	a, err := decnum.ParseDecimal(args[0])
	if err != nil {
		return res, err
	}

	var out decnum.Decimal
	switch op := args[1]; op {
	case "floor":
		out = a.Floor()
	case "ceil":
		out = a.Ceil()
	case "trunc":
		out = a.Truncate()
	case "abs":
		out = a.Abs()
	case "neg":
		out = a.Neg()
	case "round":
		n := 0
		if len(args) > 2 {
			if n, err = strconv.Atoi(args[2]); err != nil {
				return res, err
			}
		}
		out = a.Round(n)

	case "+", "-", "*", "/", "cmp":
		if len(args) < 3 {
			return res, fmt.Errorf("op %q needs two operands", op)
		}
		b, err := decnum.ParseDecimal(args[2])
		if err != nil {
			return res, err
		}

		switch op {
		case "+":
			out = a.Add(b)
		case "-":
			out = a.Sub(b)
		case "*":
			out = a.Mul(b)
		case "/":
			if out, err = a.Quo(b); err != nil {
				return res, err
			}
		case "cmp":
			res.Result = a.Cmp(b)
			return res, nil
		}

	default:
		return res, fmt.Errorf("unknown dec op %q", op)
	}

	res.Result, res.Bits = out, out.Bits()
	return res, nil
}
