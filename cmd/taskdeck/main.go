package main

import (
	"fmt"
	"os"

	"taskdeck/internal/config"
	"taskdeck/internal/logging"
	"taskdeck/internal/storage"
	"taskdeck/internal/task"
	"taskdeck/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.DefaultConfigFileName)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Open(cfg.LogPath)
	if err != nil {
		fmt.Printf("failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	db, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	store := task.NewStore(db.LoadTasks(), db, logger)

	if err := ui.Run(store, db, cfg, logger); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
