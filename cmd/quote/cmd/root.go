// Package cmd provides the quote CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree so flags never leak between runs.
func NewRootCmd() *cobra.Command {
	opts := &quoteOptions{}

	root := &cobra.Command{
		Use:   "quote",
		Short: "Price a casual leasing booking offline",
		Long: `quote prices an inclusive date range for a single site from its rate card
and an optional file of seasonal rates, without a database.

Examples:
  quote --price-per-day 100 --start 2024-07-01 --end 2024-07-14
  quote --price-per-day 100 --price-per-week 600 --weekend-price-per-day 150 \
        --start 2024-07-01 --end 2024-07-14 --seasonal rates.json --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd.OutOrStdout(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.pricePerDay, "price-per-day", "", "base weekday rate (omit for none)")
	flags.StringVar(&opts.pricePerWeek, "price-per-week", "", "base rate for each full 7-day block (omit for none)")
	flags.StringVar(&opts.weekendPricePerDay, "weekend-price-per-day", "", "base weekend rate (omit to use the weekday rate)")
	flags.StringVar(&opts.start, "start", "", "first day, YYYY-MM-DD")
	flags.StringVar(&opts.end, "end", "", "last day, YYYY-MM-DD")
	flags.StringVarP(&opts.seasonalFile, "seasonal", "s", "", "JSON file of seasonal rates")
	flags.StringVar(&opts.gst, "gst", "0.10", "GST rate applied to the subtotal")
	flags.StringVarP(&opts.format, "format", "f", formatTable, "output format (table, json)")
	_ = root.MarkFlagRequired("start")
	_ = root.MarkFlagRequired("end")

	root.AddCommand(versionCmd)
	return root
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "quote version 0.1.0")
	},
}
