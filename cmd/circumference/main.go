package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jrenders/circumference6/cliopts"
)

func main() {
	cfg, err := cliopts.Parse(os.Args[1:])
	switch {
	case errors.Is(err, cliopts.ErrHelp):
		fmt.Fprint(os.Stdout, cliopts.Usage())
		os.Exit(0)
	case errors.Is(err, cliopts.ErrUsage):
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, cliopts.Usage())
		os.Exit(1)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
