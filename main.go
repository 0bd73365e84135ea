package main

import (
	"fmt"
	"os"

	"github.com/KratosDevT/geometry-collision-lib/config"
	"github.com/KratosDevT/geometry-collision-lib/logger"
	"github.com/KratosDevT/geometry-collision-lib/scenario"
	"github.com/KratosDevT/geometry-collision-lib/viewer"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.GetLogLevel())

	scenarios, err := loadScenarios(cfg)
	if err != nil {
		log.Error("error loading scenarios", "err", err)
		os.Exit(1)
	}

	switch mode := cfg.GetRunMode(); mode {
	case config.RunModeWindow:
		v, err := viewer.NewViewer(cfg, scenarios, log)
		if err != nil {
			log.Error("error creating viewer", "err", err)
			os.Exit(1)
		}
		if err := v.Run(); err != nil {
			log.Error("error running viewer", "err", err)
			os.Exit(1)
		}
	case config.RunModeConsole:
		outcomes, err := scenario.EvaluateAll(scenarios, log)
		if err != nil {
			log.Error("error evaluating scenarios", "err", err)
			os.Exit(1)
		}
		if err := scenario.Report(os.Stdout, outcomes); err != nil {
			log.Error("error writing report", "err", err)
			os.Exit(1)
		}
	default:
		log.Error("unknown run mode", "mode", mode)
		os.Exit(1)
	}
}

func loadScenarios(cfg *config.Config) ([]scenario.Scenario, error) {
	entries, err := cfg.GetScenarios()
	if err != nil {
		return nil, err
	}
	extra, err := scenario.FromConfig(entries)
	if err != nil {
		return nil, err
	}

	return append(scenario.Defaults(), extra...), nil
}
