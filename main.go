package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"kalah/config"
	"kalah/experiments"
	"kalah/gamemaster"
	"kalah/searcher"
	"kalah/server"
	"kalah/shell"
	"kalah/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a config file (yaml, json, toml or env)")
	mode := flag.String("mode", "shell", "One of shell, serve or experiment")
	experiment := flag.String("experiment", "depth", "Experiment to run: depth, eval, baseline or throughput")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch *mode {
	case "shell":
		err = runShell(cfg)
	case "serve":
		err = runServer(cfg)
	case "experiment":
		err = runExperiment(cfg, *experiment)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func newGameMaster(cfg *config.Config) (*gamemaster.GameMaster, error) {
	stash, err := storage.NewBadgerStash(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	s := searcher.NewSearcher(
		searcher.WithDepth(cfg.SearchDepth),
		searcher.WithEvalMethod(cfg.Method()),
		searcher.WithPreferWin(cfg.PreferWin),
		searcher.WithMetrics(),
	)
	return gamemaster.NewGameMaster(stash, s), nil
}

func runShell(cfg *config.Config) error {
	gm, err := newGameMaster(cfg)
	if err != nil {
		return err
	}
	defer gm.Close()

	return shell.New(gm, os.Stdout).Run(os.Stdin)
}

func runServer(cfg *config.Config) error {
	gm, err := newGameMaster(cfg)
	if err != nil {
		return err
	}
	defer gm.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx, cfg.ListenAddr, server.NewHandler(gm).Router())
}

func runExperiment(cfg *config.Config, name string) error {
	settings := experiments.Settings{
		Games:    cfg.Games,
		MaxTurns: cfg.MaxTurns,
		OutDir:   cfg.ResultsDir,
	}

	var summaries map[int]experiments.Summary
	var err error
	switch name {
	case "depth":
		summaries, err = experiments.RunDepthExperiment(settings)
	case "eval":
		summaries, err = experiments.RunEvalExperiment(settings)
	case "baseline":
		summaries, err = experiments.RunBaselineExperiment(settings)
	case "throughput":
		summaries, err = experiments.RunThroughputExperiment(settings, cfg.SearchDepth)
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
	if err != nil {
		return err
	}
	for i := 0; i < len(summaries); i++ {
		log.Info().Msgf("matchup %d: %+v", i+1, summaries[i])
	}
	return nil
}
