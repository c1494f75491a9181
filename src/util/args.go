package util

import (
	"fmt"
	"os"
	"text/tabwriter"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Options holds the compiler's command line configuration. Trimmed from
// vslc's Options (which also carried thread count and target
// architecture/vendor/OS/CPU selectors for its multiple assembler back
// ends): this compiler has exactly one fixed target, textual LLVM IR, so
// there is nothing for those flags to select between.
type Options struct {
	Src string // Path to source file; empty means read from stdin.
	Out string // Path to output file; empty means write to stdout.
}

// ---------------------
// ----- Constants -----
// ---------------------

const appVersion = "slc compiler 1.0"

// ---------------------
// ----- functions -----
// ---------------------

// ParseArgs parses command line arguments into an Options, the same
// hand-rolled os.Args scan vslc's util/args.go uses, trimmed to this
// compiler's one positional argument plus -o/-h/-v.
func ParseArgs() (Options, error) {
	opt := Options{}
	args := os.Args[1:]
	for i1 := 0; i1 < len(args); i1++ {
		switch args[i1] {
		case "-h", "--h", "-help", "--help":
			printHelp()
			os.Exit(0)
		case "-o":
			if i1+1 >= len(args) {
				return opt, fmt.Errorf("got flag %s but no argument", args[i1])
			}
			opt.Out = args[i1+1]
			i1++
		case "-v", "--v", "-version", "--version":
			fmt.Println(appVersion)
			os.Exit(0)
		default:
			if len(opt.Src) > 0 {
				return opt, fmt.Errorf("unexpected argument: %s", args[i1])
			}
			opt.Src = args[i1]
		}
	}
	return opt, nil
}

// printHelp prints a helpful usage message to stdout.
func printHelp() {
	w := tabwriter.NewWriter(os.Stdout, 6, 1, 1, 0, 0)
	_, _ = fmt.Fprintln(w, "-h, -help\tPrints this help message and exits the application.")
	_, _ = fmt.Fprintln(w, "--h, --help")
	_, _ = fmt.Fprintln(w, "-o\tPath and name of the output file. Defaults to stdout.")
	_, _ = fmt.Fprintln(w, "-v, -version\tPrints application version and exits the application.")
	_, _ = fmt.Fprintln(w, "--v, --version")
	_ = w.Flush()
}
