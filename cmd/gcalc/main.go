package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vikblom/gcalc"
)

func runMain() error {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	in := os.Stdin
	interp := gcalc.NewInterpreter(os.Stdout)

	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	} else {
		fmt.Println("Enter an arithmetic expression using integers followed by a ;")
		if isatty.IsTerminal(os.Stdin.Fd()) {
			interp.Prompt = "> "
		}
	}

	return interp.Run(in)
}

func main() {
	log.SetFlags(0)
	if err := runMain(); err != nil {
		log.Fatalf("gcalc: %s", err)
	}
}
