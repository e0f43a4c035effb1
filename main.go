package main

import (
	"log/slog"
	"os"

	"github.com/parcelworks/extraction-planner/cmd"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := cmd.Execute(); err != nil {
		slog.Error("planner failed", "error", err)
		os.Exit(1)
	}
}
