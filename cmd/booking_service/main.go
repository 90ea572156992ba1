package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfgPath := flag.String("config", "config/config.yaml", "path to the YAML configuration file")
	maxConcurrent := flag.Int("max-concurrent", 256, "maximum number of in-flight HTTP requests (0 disables the limit)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *cfgPath, *maxConcurrent); err != nil {
		os.Exit(1)
	}
}
