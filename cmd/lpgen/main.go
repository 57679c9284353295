// SPDX-License-Identifier: MIT
// Package: lpgen/cmd/lpgen

// Command lpgen generates LP test instances with known solutions and runs
// local searches over them.
//
// Usage:
//
//	lpgen [glog flags] <command> [flags]
//
// Commands:
//
//	generate   constructor-based batch generation (encoded archives)
//	naive      direct A, b, c batch generation (LP archives)
//	search     local search from a stored instance
//	plot       render a search trace as PNG
//
// Logging goes through glog; pass -logtostderr to see it on the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	log "github.com/golang/glog"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string) error
}

var commands = []command{
	{"generate", "batch-generate instances with known optimal solutions", runGenerate},
	{"naive", "batch-generate instances by sampling A, b, c directly", runNaive},
	{"search", "local search over instance space", runSearch},
	{"plot", "plot a search trace", runPlot},
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [glog flags] <command> [flags]\n\ncommands:\n", os.Args[0])
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", c.name, c.usage)
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()
	defer log.Flush()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(ctx, args); err != nil {
			log.Errorf("%s: %v", name, err)
			log.Flush()
			os.Exit(1)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
	usage()
	os.Exit(2)
}

// glogLogger adapts glog to search.Logger.
type glogLogger struct{}

func (glogLogger) Print(v ...any) { log.InfoDepth(1, v...) }
