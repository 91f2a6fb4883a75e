package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	screeningcmd "github.com/louisbranch/cardquest/internal/cmd/screening"
	"github.com/louisbranch/cardquest/internal/platform/config"
)

func main() {
	cfg, err := screeningcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := screeningcmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exitf("screening: %v", err)
	}
}
