package main

import (
	"flag"
	"fmt"
	"os"

	"todolist/internal/config"
	"todolist/internal/logging"
	"todolist/internal/todo"
	"todolist/internal/ui"
)

var version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to config.toml (default $TODO_CONFIG or the user config dir)")
	filterFlag := flag.String("filter", "", "starting filter: all, not-started, in-progress, done")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("todo v%s\n", version)
		return
	}

	path := *configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	filter := cfg.Filter()
	if *filterFlag != "" {
		filter, err = todo.ParseFilter(*filterFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --filter: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closer, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	logger.Info("starting", "config", path, "filter", filter, "id_policy", cfg.Policy())

	store := todo.NewStore(
		todo.WithFilter(filter),
		todo.WithIDSource(cfg.Policy().Source()),
	)
	if err := ui.Run(store, cfg, logger); err != nil {
		logger.Error("program failed", "err", err)
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
