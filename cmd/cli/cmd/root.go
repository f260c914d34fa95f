// Package cmd provides the CLI commands for scanquote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scanquote/internal/config"
	"scanquote/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scanquote",
	Short: "Price 3D-scanning and BIM documentation quotes",
	Long: `scanquote is the quote pricing and rating engine for scan-to-BIM
documentation projects.

It turns a structured project description (areas, disciplines, LOD, scope,
risk, travel, payment terms) into priced line items and a margin-guarded
quote total.

Examples:
  scanquote quote project.json
  scanquote quote --format json --target-margin 50 project.json
  scanquote rates show`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.scanquote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("scanquote version 0.1.0")
	},
}
