// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scanquote/core/output"
	"scanquote/core/quote"
	"scanquote/core/rates"
	"scanquote/core/types"
	"scanquote/internal/config"
	"scanquote/internal/errors"
	"scanquote/internal/logging"
)

var (
	outputFormat  string
	ratesFile     string
	targetMargin  float64
	showCostBasis bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [input.json]",
	Short: "Price a quote from a structured project description",
	Long: `Price a structured quote input into line items and a guarded total.

The input file is a QuoteInput JSON document, typically produced by the
upstream scoping form.

Examples:
  scanquote quote project.json
  scanquote quote --format json project.json
  scanquote quote --target-margin 50 --show-cost project.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().StringVarP(&ratesFile, "rates", "r", "", "HCL rate override file")
	quoteCmd.Flags().Float64VarP(&targetMargin, "target-margin", "t", 0, "retarget to a gross margin percentage")
	quoteCmd.Flags().BoolVar(&showCostBasis, "show-cost", false, "include internal cost basis and margin in output")
}

func runQuote(cmd *cobra.Command, args []string) error {
	input, err := loadInput(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadRates()
	if err != nil {
		return err
	}

	logging.Info("pricing quote")

	result := quote.Assemble(input, cfg)

	target := input.TargetMarginPercent
	if cmd.Flags().Changed("target-margin") {
		target = targetMargin
	}
	if target > 0 {
		result = quote.Retarget(result, target, cfg)
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(config.Get().Output.DefaultFormat)
	}

	formatter := output.New(format, output.Options{
		ShowCostBasis: showCostBasis || config.Get().Output.ShowCostBasis,
	})
	if err := formatter.Render(os.Stdout, result); err != nil {
		return err
	}

	if result.Status == types.IntegrityBlocked {
		return errors.Newf(errors.TypeInput, "quote %s is blocked by the margin floor", result.QuoteID)
	}
	return nil
}

// loadInput reads and structurally validates a QuoteInput document.
// Missing identifiers are rejected wholesale here, before the engine is
// invoked; the engine itself never rejects.
func loadInput(path string) (*types.QuoteInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var input types.QuoteInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "parsing quote input", err)
	}

	if input.ID == "" {
		return nil, errors.Input("quote input is missing an id")
	}
	for i, area := range input.Areas {
		if area.ID == "" {
			return nil, errors.Newf(errors.TypeInput, "area %d is missing an id", i)
		}
	}

	return &input, nil
}

func loadRates() (*rates.Configuration, error) {
	path := ratesFile
	if path == "" {
		path = config.Get().RatesFile
	}
	return rates.Load(path)
}
