package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"chainledger/internal/core/port"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print totals over every campaign",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return printStats(cmd.Context(), cmd.OutOrStdout(), a.svc, statsJSON)
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print JSON")
}

func printStats(ctx context.Context, out io.Writer, svc port.CampaignUseCase, asJSON bool) error {
	stats, err := svc.Stats(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(out, stats)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Campaigns:\t%d\n", stats.TotalCampaigns)
	fmt.Fprintf(w, "Active:\t%d\n", stats.ActiveCampaigns)
	fmt.Fprintf(w, "Verified:\t%d\n", stats.VerifiedCampaigns)
	fmt.Fprintf(w, "Supporters:\t%d\n", stats.TotalSupporters)
	fmt.Fprintf(w, "Funds raised:\t%s\n", stats.TotalFundsRaised.String())
	fmt.Fprintf(w, "Average:\t%s\n", stats.AverageDonation.String())
	return w.Flush()
}
