package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sportsnews/internal/adapters/cli"
	"sportsnews/internal/config"
	"sportsnews/internal/infrastructure/i18n"
)

func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	app := cli.NewApp(cfg, i18n.NewTranslator(cfg.UILanguage), os.Stdout, os.Stderr)
	err = app.Run(ctx, os.Args[1:])
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return
	case errors.Is(err, cli.ErrUsage):
		log.Printf("❌ %v", err)
		cancel()
		os.Exit(2)
	default:
		log.Printf("❌ %s", app.Describe(err, cfg.UILanguage))
		cancel()
		os.Exit(1)
	}
}
