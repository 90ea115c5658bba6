package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/etrade-cli/cmd"
	"github.com/bnema/etrade-cli/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	os.Exit(domain.ExitCode(err))
}
