// Command slugmin converts text to slugs, one per line.
//
//	echo "You & Me" | slugmin                 # you-me
//	slugmin --mode normal "You & Me"          # you - me
//	slugmin check my-slug "Not A Slug"        # exit status 1
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/slugmin/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &cli.Runner{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: env.ToMap(os.Environ()),
		Dotenv:  cli.DotenvFile,
	}
	err := r.Run(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return 0
	case errors.Is(err, cli.ErrInvalidSlug):
		fmt.Fprintln(os.Stderr, err)
		return 1
	default:
		fmt.Fprintln(os.Stderr, "slugmin:", err)
		return 2
	}
}
