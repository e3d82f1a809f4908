package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"chainledger/internal/core/domain"
	"chainledger/internal/core/port"
)

var (
	jsonOutput bool
	listLimit  int
	listOffset int
	listOrder  string
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Read campaigns from the ledger",
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a page of campaigns, newest window first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		params := port.ListParams{Limit: listLimit, Offset: listOffset, Order: port.Order(listOrder)}
		return listCampaigns(cmd.Context(), cmd.OutOrStdout(), a.svc, params, jsonOutput)
	},
}

var campaignsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid campaign id %q", args[0])
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return showCampaign(cmd.Context(), cmd.OutOrStdout(), a.svc, id, jsonOutput)
	},
}

func init() {
	campaignsCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON")
	campaignsListCmd.Flags().IntVar(&listLimit, "limit", 10, "page size")
	campaignsListCmd.Flags().IntVar(&listOffset, "offset", 0, "number of most recent campaigns to skip")
	campaignsListCmd.Flags().StringVar(&listOrder, "order", string(port.OrderAsc), "asc or desc")
	campaignsCmd.AddCommand(campaignsListCmd, campaignsGetCmd)
}

func listCampaigns(ctx context.Context, out io.Writer, svc port.CampaignUseCase, params port.ListParams, asJSON bool) error {
	if params.Order != port.OrderAsc && params.Order != port.OrderDesc {
		return fmt.Errorf("invalid order %q, want asc or desc", params.Order)
	}
	page, err := svc.ListCampaigns(ctx, params)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(out, page)
	}
	if len(page) == 0 {
		fmt.Fprintln(out, "No campaigns found.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSTATE\tRAISED\tGOAL\tDAYS LEFT")
	for _, c := range page {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
			c.ID, c.Title, dash(c.Category), c.State,
			c.TotalDonations.String(), c.GoalAmount.String(), c.DaysLeft)
	}
	return w.Flush()
}

func showCampaign(ctx context.Context, out io.Writer, svc port.CampaignUseCase, id uint64, asJSON bool) error {
	c := svc.GetCampaign(ctx, id)
	if c == nil {
		return fmt.Errorf("campaign %d not found", id)
	}
	if asJSON {
		return printJSON(out, c)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"ID", strconv.FormatUint(c.ID, 10)},
		{"Title", c.Title},
		{"Organization", dash(c.Organization)},
		{"Category", dash(c.Category)},
		{"Creator", c.Creator},
		{"State", string(c.State)},
		{"Raised", c.TotalDonations.String()},
		{"Goal", c.GoalAmount.String()},
		{"Supporters", strconv.FormatUint(c.SupportCount, 10)},
		{"Deadline", formatTime(c)},
		{"Days left", strconv.Itoa(c.DaysLeft)},
		{"Verified", strconv.FormatBool(c.Verified)},
		{"IPFS", dash(c.CID)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s:\t%s\n", r[0], r[1])
	}
	return w.Flush()
}

func formatTime(c *domain.NormalizedCampaign) string {
	if c.Deadline.IsZero() {
		return "-"
	}
	return c.Deadline.UTC().Format("2006-01-02 15:04")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
