package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-campus-assistant/internal/client"
	"github.com/MKhiriev/go-campus-assistant/internal/config"
	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).WithFallback("N/A")
	printBuildInfo(buildInfo)

	bootLog := logger.NewLogger("campus-assistant")
	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("campus-assistant", cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
