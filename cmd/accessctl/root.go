package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "accessctl",
	Short: "Software access request service",
	Long: `accessctl manages the software access request service.

It runs the API server, manages the database schema, and bootstraps
users without going through the HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	// A .env file is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	if level, err := logrus.ParseLevel(os.Getenv("ACCESSHUB_LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	Execute()
}
