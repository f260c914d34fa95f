// Package output - Terminal rendering
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"scanquote/core/types"
)

// CLIFormatter renders a tabular quote breakdown for the terminal
type CLIFormatter struct {
	Options Options
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the quote breakdown
func (f *CLIFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if f.Options.ShowCostBasis {
		fmt.Fprintln(tw, "AREA\tLINE\tCATEGORY\tPRICE\tCOST")
	} else {
		fmt.Fprintln(tw, "AREA\tLINE\tCATEGORY\tPRICE")
	}

	for _, line := range result.Lines {
		if f.Options.ShowCostBasis {
			fmt.Fprintf(tw, "%s\t%s\t%s\t$%s\t$%s\n",
				line.AreaName, line.Label, line.Category,
				line.ClientPrice.StringFixed(2), line.CostBasis.StringFixed(2))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t$%s\n",
				line.AreaName, line.Label, line.Category,
				line.ClientPrice.StringFixed(2))
		}
	}

	fmt.Fprintln(tw)
	for _, category := range []types.LineCategory{
		types.CategoryModeling,
		types.CategoryTravel,
		types.CategoryServiceAddon,
		types.CategoryElevation,
	} {
		subtotal, ok := result.Subtotals[category]
		if !ok || subtotal.IsZero() {
			continue
		}
		fmt.Fprintf(tw, "\t%s subtotal\t\t$%s\n", category, subtotal.StringFixed(2))
	}

	fmt.Fprintf(tw, "\tSubtotal\t\t$%s\n", result.TotalClientPrice.StringFixed(2))
	if !result.PaymentTermPremium.IsZero() {
		fmt.Fprintf(tw, "\tPayment terms (%s)\t\t$%s\n", result.PaymentTerm, result.PaymentTermPremium.StringFixed(2))
	}
	fmt.Fprintf(tw, "\tGrand total\t\t$%s\n", result.GrandTotal.StringFixed(2))

	if f.Options.ShowCostBasis {
		fmt.Fprintf(tw, "\tGross margin\t\t%s%% (%s)\n",
			result.GrossMarginPercent.StringFixed(1), result.Status)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	for _, flag := range result.Flags {
		fmt.Fprintf(w, "[%s] %s\n", flag.Severity, flag.Message)
	}

	return nil
}
