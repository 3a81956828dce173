package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/client"
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("directory-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("directory-client", cfg.App.LogDir)
	ctx := context.Background()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	defer app.Close()

	result, err := app.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}

	switch result.Outcome {
	case models.OutcomeHasUsers:
		fmt.Printf("Directory ready: %d user(s)\n", result.Users)
	case models.OutcomeNeedsBootstrap:
		fmt.Println("Directory is empty: create the first admin (APP_ADMIN_EMAIL / APP_ADMIN_PASSWORD)")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
