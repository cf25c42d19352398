// Package main is the cv-amplify command: the generation service, a local
// studio driver and the filter catalog.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "cvamplify",
	Short:        "Resume studio with templated improvement and PDF export",
	Long:         "cvamplify serves the resume generation endpoint and studio page, and drives the studio locally from a draft file.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
