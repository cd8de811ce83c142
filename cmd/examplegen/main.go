package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"examplegen/internal/collector"
)

const (
	exitOK      = 0
	exitFailure = 1
	// exitPartial means every stage finished but some tasks produced no output.
	exitPartial = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout)
	os.Exit(exitCode(cmd.ExecuteContext(ctx), os.Stderr))
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	var partial *collector.PartialFailureError
	if errors.As(err, &partial) {
		return exitPartial
	}
	return exitFailure
}
