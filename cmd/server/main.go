package main

import (
	"fmt"
	"os"

	"github.com/fantasy-league/league-server/internal/app"
	"github.com/fantasy-league/league-server/internal/config"
	"github.com/fantasy-league/league-server/internal/handler"
	myHTTP "github.com/fantasy-league/league-server/internal/handler/http"
	"github.com/fantasy-league/league-server/internal/logger"
	"github.com/fantasy-league/league-server/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := app.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		bootstrap := logger.New("league-server", logger.Options{Console: os.Stderr})
		bootstrap.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFromConfig("league-server", cfg.Log, cfg.Server.Environment)
	log.Info().Object("build", buildInfo).Msg("starting league server")
	log.Debug().Any("config", cfg).Msg("received configs")

	// domain areas are mounted by their owning modules; none are built in
	handlers, err := handler.NewHandlers(myHTTP.Collaborators{}, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	if cfg.Server.IsTest() {
		log.Info().Msg("test environment, not binding a listener")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(b app.BuildInfo) {
	fmt.Printf("Build version: %s\n", b.Version())
	fmt.Printf("Build date: %s\n", b.Date())
	fmt.Printf("Build commit: %s\n", b.Commit())
}
