package main

import (
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/golang/glog"

	"github.com/aheui/goaheui/aheui"
)

var maxSteps = flag.Int("steps", 0, "Maximum number of steps to execute, 0 means unlimited.")

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: aheui [options] <filename>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	data, err := os.ReadFile(filename)
	if err != nil {
		glog.Exitf("Failed to read %s: %v", filename, err)
	}
	if !utf8.Valid(data) {
		glog.Exitf("Failed to decode %s: the file is not valid UTF-8.", filename)
	}

	source := aheui.NewSource(string(data))
	it := aheui.NewInterpreter(source, os.Stdin, os.Stdout)
	if *maxSteps > 0 {
		for i := 0; i < *maxSteps; i++ {
			if it.Step() {
				return
			}
		}
		glog.Exitf("The program did not halt within %d steps.", *maxSteps)
	}
	it.Execute()
}
