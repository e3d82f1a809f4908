package domain

import "github.com/shopspring/decimal"

// GlobalStats summarises every campaign on the ledger for the dashboard.
type GlobalStats struct {
	TotalFundsRaised  decimal.Decimal `json:"totalFundsRaised"`
	ActiveCampaigns   int             `json:"activeCampaigns"`
	TotalCampaigns    int             `json:"totalCampaigns"`
	VerifiedCampaigns int             `json:"verifiedCampaigns"`
	TotalSupporters   uint64          `json:"totalSupporters"`
	AverageDonation   decimal.Decimal `json:"averageDonation"`
}

// Add folds one campaign into the running totals. AverageDonation is only
// recomputed by Finish.
func (s *GlobalStats) Add(c NormalizedCampaign) {
	s.TotalCampaigns++
	s.TotalFundsRaised = s.TotalFundsRaised.Add(c.TotalDonations)
	s.TotalSupporters += c.SupportCount
	if c.State == StateActive {
		s.ActiveCampaigns++
	}
	if c.Verified {
		s.VerifiedCampaigns++
	}
}

// Finish computes derived fields once all campaigns have been added. The
// average is reported as zero until someone has supported a campaign.
func (s *GlobalStats) Finish() {
	if s.TotalCampaigns == 0 || s.TotalSupporters == 0 {
		s.AverageDonation = decimal.Zero
		return
	}
	s.AverageDonation = s.TotalFundsRaised.Div(decimal.NewFromInt(int64(s.TotalCampaigns)))
}
