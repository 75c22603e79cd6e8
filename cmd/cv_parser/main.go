// Package main provides the entry point for the TruthTalent CV parser.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_parser",
	Short: "TruthTalent CV extraction service",
	Long:  "cv_parser extracts structured candidate records (contact info, skills, experience, education, languages) from CV documents, either as a one-shot CLI or as an HTTP API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
