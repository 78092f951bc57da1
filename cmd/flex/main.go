// Command flex runs the layout engine over built-in or TOML scenes.
//
// Usage:
//
//	flex scenes                       List the built-in scenes
//	flex layout <scene> [-W w -H h]   Print every node's rectangle
//	flex sweep <scene>                Compare layouts over a range of widths
//	flex preview <scene>              Interactive terminal preview
//	flex tree <scene> [-o file.svg]   Export the tree as DOT or SVG
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-flex/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
