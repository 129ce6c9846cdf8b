package main

import (
	"fmt"
	"os"

	"github.com/donkeywon/dedup/cli"
	"github.com/donkeywon/dedup/errs"
)

func main() {
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintln(os.Stderr, errs.ErrToStackString(errs.PanicToErr(p)))
			os.Exit(1)
		}
	}()

	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		if cli.IsHelp(err) {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Run logs failures itself, the exit code is all that is left to do.
	if err = cli.Run(opts, os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}
