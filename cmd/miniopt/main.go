// Command miniopt generates a miniopt option table and dispatch loop from a
// plain-text option description.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"

	optio "github.com/dzonerzy/go-miniopt/io"
)

// set by the linker
var version = "1.0.0"

func main() {
	defer exitwithstatus.Handler()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := newTool(optio.New())
	if err := t.run(ctx, os.Args, os.Getenv); err != nil {
		stop()
		exitwithstatus.Message("error: %s\n", describe(err))
	}
}
