package main

import (
	"fmt"
	"os"

	"slc/src/codegen"
	"slc/src/common"
	"slc/src/mir"
	"slc/src/parser"
	"slc/src/typecheck"
	"slc/src/util"
)

// run drives the whole pipeline end to end: read source, parse it into an
// AST, lower to MIR, type-check (which substitutes resolved types back
// into the MIR in place), then render textual LLVM IR and write it out.
// Every phase runs to completion before the next begins; there are no
// suspension points, per spec §5.
func run(opt util.Options) error {
	src, err := util.ReadSource(opt)
	if err != nil {
		return fmt.Errorf("could not read source code: %s", err)
	}

	prog, err := parser.Parse(src)
	if err != nil {
		return fmt.Errorf("parse error: %s", err)
	}

	c := common.NewCounter()
	m := mir.Lower(prog, c)

	if err := typecheck.Check(m, c); err != nil {
		return fmt.Errorf("type error: %s", err)
	}

	ir := codegen.Generate(m, c)
	if err := util.WriteOutput(opt, ir); err != nil {
		return fmt.Errorf("could not write output: %s", err)
	}
	return nil
}

func main() {
	opt, err := util.ParseArgs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Command line argument error: %s\n", err)
		os.Exit(1)
	}

	if err := run(opt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
