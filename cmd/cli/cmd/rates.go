// Package cmd - rates commands
package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"scanquote/core/rates"
	"scanquote/internal/config"
)

// ratesCmd manages rate configuration
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Inspect rate configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// ratesShowCmd prints the active rate table
var ratesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active rate table (defaults plus overrides)",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ratesFile
		if path == "" {
			path = config.Get().RatesFile
		}

		cfg, err := rates.Load(path)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

func init() {
	ratesShowCmd.Flags().StringVarP(&ratesFile, "rates", "r", "", "HCL rate override file")
	ratesCmd.AddCommand(ratesShowCmd)
}
