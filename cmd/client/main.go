package main

import (
	"fmt"

	"github.com/medichat/go-medichat/internal/adapter"
	"github.com/medichat/go-medichat/internal/client"
	"github.com/medichat/go-medichat/internal/config"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/internal/tui"
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
		fmt.Printf("error getting configs: %v\n", err)
		return
	}

	// The terminal owns stdout, so diagnostics go to a file.
	log := logger.NewFileLogger("medichat-client", cfg.LogPath)

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.ServerAddress,
		Timeout: cfg.RequestTimeout,
	})

	history, err := store.NewChatHistory(cfg.HistoryPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening chat history")
	}
	defer history.Close()

	ui, err := tui.New(serverAdapter, history, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
