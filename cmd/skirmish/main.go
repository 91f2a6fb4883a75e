package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	skirmishcmd "github.com/louisbranch/cardquest/internal/cmd/skirmish"
	"github.com/louisbranch/cardquest/internal/platform/config"
)

func main() {
	cfg, err := skirmishcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := skirmishcmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exitf("skirmish: %v", err)
	}
}
