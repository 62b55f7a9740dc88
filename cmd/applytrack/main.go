// Package main provides the entry point for the applytrack CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "applytrack",
	Short: "Job application tracker",
	Long:  "applytrack tracks job applications against a remote tracker backend: log in, list and filter your pipeline, move applications between stages, and administer members.",
}

var (
	flagConfig  string
	flagBaseURL string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Backend base URL (overrides config and env)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Print detailed request information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
