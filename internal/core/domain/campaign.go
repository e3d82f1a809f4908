package domain

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// weiDecimals is the number of decimal places of the native currency.
const weiDecimals = 18

// CampaignRecord is a campaign struct exactly as the ledger contract returns
// it. Amounts are in wei and timestamps are unix seconds, where zero means
// the value was never set.
type CampaignRecord struct {
	ID             uint64
	Creator        string
	Title          string
	Organization   string
	Description    string
	GoalAmount     *big.Int
	TotalDonations *big.Int
	CreatedAt      uint64
	Deadline       uint64
	Category       string
	CID            string
	StateCode      uint8
	SupportCount   uint64
}

// CampaignMetadata is the off-chain JSON document pinned to IPFS next to a
// campaign. Every field is optional; nil means the document did not carry it.
type CampaignMetadata struct {
	Title              *string `json:"title,omitempty"`
	Organization       *string `json:"organization,omitempty"`
	Description        *string `json:"description,omitempty"`
	Category           *string `json:"category,omitempty"`
	CreatedAt          *string `json:"createdAt,omitempty"`
	Deadline           *string `json:"deadline,omitempty"`
	Image              *string `json:"image,omitempty"`
	Verified           *bool   `json:"verified,omitempty"`
	SupporterThreshold *int    `json:"supporterThreshold,omitempty"`
}

// NormalizedCampaign is the merged view of a campaign served to clients.
// All fields are always set: metadata values win, on-chain values fill the
// rest.
type NormalizedCampaign struct {
	ID                 uint64          `json:"id"`
	Creator            string          `json:"creator"`
	Title              string          `json:"title"`
	Organization       string          `json:"organization"`
	Description        string          `json:"description"`
	GoalAmount         decimal.Decimal `json:"goalAmount"`
	TotalDonations     decimal.Decimal `json:"totalDonations"`
	CreatedAt          time.Time       `json:"createdAt"`
	Deadline           time.Time       `json:"deadline"`
	Category           string          `json:"category"`
	CID                string          `json:"ipfsHash"`
	Image              string          `json:"image"`
	Verified           bool            `json:"verified"`
	SupporterThreshold int             `json:"supporterThreshold"`
	SupportCount       uint64          `json:"supportCount"`
	State              CampaignState   `json:"state"`
	DaysLeft           int             `json:"daysLeft"`
}

// FromWei converts a wei amount into whole units of the native currency.
// A nil amount is zero.
func FromWei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -weiDecimals)
}

// UnixOrZero converts unix seconds into a UTC time. Zero stays the zero time.
func UnixOrZero(sec uint64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(int64(sec), 0).UTC()
}

// DaysLeft returns the whole days remaining until deadline, rounded up and
// never negative. A zero deadline has no days left.
func DaysLeft(deadline, now time.Time) int {
	if deadline.IsZero() {
		return 0
	}
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	day := 24 * time.Hour
	days := remaining / day
	if remaining%day != 0 {
		days++
	}
	return int(days)
}
