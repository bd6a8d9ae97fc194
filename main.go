package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ardnew/envmn/cli"
	"github.com/ardnew/envmn/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		// A single diagnostic line; LogValue supplies the error details.
		log.Error("envmn failed", slog.Any("error", err))
		os.Exit(1)
	}
}
