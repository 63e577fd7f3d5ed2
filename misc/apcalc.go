package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	apint "github.com/shabbyrobe/go-apint"
)

// Small calculator for poking at apint values from the shell. It prints the
// decimal result followed by the limbs, least significant first, which is
// handy when building test tables.

const usage = `apint calculator

Usage: <op> <a> <b>

Ops: add, sub, mul, quo, rem, cmp, lsh, rsh`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 4 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	op := os.Args[1]
	a, err := apint.IntFromString(os.Args[2])
	if err != nil {
		return err
	}
	b, err := apint.IntFromString(os.Args[3])
	if err != nil {
		return err
	}

	var result apint.Int
	switch op {
	case "add":
		result = a.Add(b)
	case "sub":
		result = a.Sub(b)
	case "mul":
		result = a.Mul(b)
	case "quo":
		if result, err = a.Quo(b); err != nil {
			return err
		}
	case "rem":
		if result, err = a.Rem(b); err != nil {
			return err
		}
	case "cmp":
		fmt.Println(a.Cmp(b))
		return nil
	case "lsh", "rsh":
		n, err := b.Uint()
		if err != nil {
			return err
		}
		if op == "lsh" {
			result = a.Lsh(n)
		} else {
			result = a.Rsh(n)
		}
	default:
		return fmt.Errorf("unknown op %q", op)
	}

	fmt.Printf("%d\n%#x\n", result, result)
	spew.Dump(result.Limbs())
	return nil
}
