// Command png-sorter is the headless build of the classifier. It has the same
// commands as the desktop binary but prints help instead of opening a window
// when no input directory is given.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/png-sorter/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.Options{Version: version}); err != nil {
		stop()
		os.Exit(1)
	}
}
