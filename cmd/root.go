package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fusus-cli/internal/config"
)

var cfgFile string
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fusus-cli",
	Short: "Operator utilities for the Fusus video-surveillance platform",
	Long: `Consolidates the support team's Fusus workflows: camera and LPR
exports, AI detection setup, core health cross-checks, location sharing,
user domain migration and the local POC directory.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.Init(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fusus-cli.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}
