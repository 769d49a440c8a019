package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lartar-lang/lartar"
	"github.com/lartar-lang/lartar/printer"
	"github.com/lartar-lang/lartar/reader"
)

type args struct {
	verbose *bool
	path    string
}

func readArgs() *args {
	a := &args{
		verbose: flag.Bool("v", false, "print a heap summary after the final collection"),
	}
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: lartar [-v] <filename>")
	}
	a.path = flag.Arg(0)
	return a
}

func main() {
	a := readArgs()

	src, err := os.ReadFile(a.path)
	if err != nil {
		log.Fatalf("Can't open input file: %s", err.Error())
	}

	interp, err := lartar.NewInterpreter(lartar.NewConfig())
	if err != nil {
		log.Fatalf("Can't initialize interpreter: %s", err.Error())
	}

	os.Exit(run(interp, string(src), *a.verbose))
}

// run parses and evaluates src against interp's top-level environment,
// reporting an interpreter error with exit code 1 and a memory-safety
// violation (a freed cell was dereferenced, which can only happen from
// a GC or root-stack bug, never from user input) with exit code 2.
// This is the only place a GuardAccessError is recovered, at the CLI
// boundary; any other panic is re-raised.
func run(interp *lartar.Interpreter, src string, verbose bool) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			if ge, ok := r.(lartar.GuardAccessError); ok {
				fmt.Fprintln(os.Stderr, "fatal:", ge.Error())
				exitCode = 2
				return
			}
			panic(r)
		}
	}()

	rd := reader.New(interp, src)
	program, err := rd.ReadAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err.Error())
		return 1
	}

	result, err := lartar.Eval(interp, program, interp.TopLevelEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err.Error())
		return 1
	}

	fmt.Println(printer.Print(interp, result))

	if verbose {
		interp.Collect()
		fmt.Fprintf(os.Stderr, "allocations: %d, live cells: %d\n",
			interp.Heap.TotalAllocations, interp.Heap.LiveCells())
	}
	return 0
}
