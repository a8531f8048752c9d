package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/config"
	"github.com/giuseppedipinto/io-functions-admin/internal/flagx"
)

// activityInput extracts the raw activity input JSON passed via -i.
func activityInput() string {
	args := flagx.FilterArgs(os.Args[1:], []string{"-i"})

	fs := flag.NewFlagSet("input", flag.ContinueOnError)
	input := fs.String("i", "", `activity input, e.g. '{"fiscalCode":"...","userDataDeleteRequestId":"..."}'`)
	_ = fs.Parse(args)

	return *input
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()

	app, err := eraser.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(ctx, activityInput()); err != nil {
		os.Exit(1)
	}
}
