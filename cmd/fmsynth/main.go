// Command fmsynth synthesizes a feature model from observed product
// configurations and generates synthetic configuration sets.
//
// Usage:
//
//	fmsynth synth --root Phone --input configs/ [--output model.uvl]
//	fmsynth generate --root Phone --spec "alt:Basic,Color;opt:GPS"
//	fmsynth version
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "fmsynth: %v\n", err)
		return 1
	}

	return 0
}
