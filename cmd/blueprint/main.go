package main

import (
	"os"

	"blueprint/internal/logging"
)

func main() {
	logger := logging.New(logging.Config{
		Format: logging.FormatHuman,
		Level:  logging.LevelInfo,
	})

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", logging.Fields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
