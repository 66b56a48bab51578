// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/bitrange/eval"
	"github.com/ezrec/bitrange/expr"
	"github.com/ezrec/bitrange/library"
	"github.com/ezrec/bitrange/mapping"
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %v [flags] SPEC [SPEC|@NAME|inv|show|concat|assign|LITERAL]...\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var libPath string
	var in string
	var out string
	var load string
	var save string
	var verbose bool

	ex := &expr.Expander{}

	flag.StringVar(&libPath, "l", "", "bitrange.toml library (default: search upwards from the current directory)")
	flag.StringVar(&in, "in", "", "Input vector name for concat and assign")
	flag.StringVar(&out, "out", "", "Output vector name for assign")
	flag.StringVar(&load, "load", "", "Saved mapping to start from")
	flag.StringVar(&save, "save", "", "Save the final mapping to a file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Define an equate as NAME=VALUE", func(arg string) error {
		equ, value, err := expr.ParseDefine(arg)
		if err != nil {
			return err
		}
		return ex.Define(equ, value)
	})
	flag.Usage = usage

	flag.Parse()

	ev := eval.NewEvaluator()
	ev.Verbose = verbose
	ev.Expander = ex

	var lib *library.Library
	var err error
	if len(libPath) != 0 {
		lib, err = library.Load(libPath)
	} else {
		lib, err = library.FindAndLoad(".")
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	if lib != nil && verbose {
		log.Printf("%v: library %v", os.Args[0], lib.Path)
	}
	ev.UseLibrary(lib)

	if len(in) != 0 {
		ev.In = in
	}
	if len(out) != 0 {
		ev.Out = out
	}

	if len(load) != 0 {
		data, err := os.ReadFile(load)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
		ev.Current, err = mapping.Unmarshal(data)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
	}

	if flag.NArg() == 0 && ev.Current == nil {
		flag.Usage()
		os.Exit(1)
	}

	err = ev.Eval(os.Stdout, flag.Args()...)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if len(save) != 0 {
		data, err := mapping.Marshal(ev.Current)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		err = os.WriteFile(save, data, 0o644)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
	}
}
