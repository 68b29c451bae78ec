package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-cli/internal/app"
	"github.com/Nazarious-ucu/weather-cli/internal/config"
	metricsSvc "github.com/Nazarious-ucu/weather-cli/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-cli/pkg/logger"
)

const serviceName = "weather-cli"

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage:\n  %s          interactive menu\n  %s serve    HTTP API (-addr)\n",
		os.Args[0], os.Args[0])
	flag.PrintDefaults()
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to load .env file: %v", err)
	}

	flag.Usage = usage
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	mode := flag.Arg(0)
	if mode == "serve" {
		serveFlags := flag.NewFlagSet("serve", flag.ExitOnError)
		addr := serveFlags.String("addr", cfg.Server.Address, "address to listen on")
		if err := serveFlags.Parse(flag.Args()[1:]); err != nil {
			log.Fatalf("failed to parse flags: %v", err)
		}
		cfg.Server.Address = *addr
	}

	l, err := logger.NewLogger(cfg.LogsPath, serviceName, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	application := app.New(*cfg, l, metricsSvc.NewMetrics("weather_cli"))

	switch mode {
	case "", "cli":
		err = application.RunCLI(context.Background(), os.Stdin, os.Stdout)
	case "serve":
		gin.SetMode(gin.ReleaseMode)
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		err = application.Serve(ctx)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		l.Error().Err(err).Msg("application failed")
		log.Fatalf("%s: %v", serviceName, err)
	}
}
