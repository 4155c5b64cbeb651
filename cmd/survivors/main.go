// Command survivors fetches the survivor list and shows it as a paginated table.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gleemora/survivors/internal/cli"
	"github.com/gleemora/survivors/internal/config"
	"github.com/gleemora/survivors/internal/pagination"
	"github.com/gleemora/survivors/pkg/version"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(extractExitCode(run()))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(version.GetVersion()).ExecuteContext(ctx)
}

// extractExitCode maps an error returned by the root command to a process exit code.
// Invalid flags and configuration exit with 2, everything else with 1.
func extractExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, pagination.ErrInvalidPageSize),
		errors.Is(err, pagination.ErrInvalidPage),
		errors.Is(err, config.ErrInvalidConfig):
		return exitUsage
	default:
		return exitError
	}
}
