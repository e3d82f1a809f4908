package domain

import (
	"strings"
	"time"
)

// metadataTimeLayouts are tried in order when parsing metadata dates. The
// front-end writes Date.toISOString(), the plain date form comes from
// hand-edited documents.
var metadataTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalize merges an on-chain record with its optional metadata document.
// meta may be nil. now drives the deadline override and DaysLeft.
func Normalize(rec CampaignRecord, meta *CampaignMetadata, now time.Time) NormalizedCampaign {
	if meta == nil {
		meta = &CampaignMetadata{}
	}

	deadline := pickTime(meta.Deadline, rec.Deadline)

	return NormalizedCampaign{
		ID:                 rec.ID,
		Creator:            rec.Creator,
		Title:              pickString(meta.Title, rec.Title),
		Organization:       pickString(meta.Organization, rec.Organization),
		Description:        pickString(meta.Description, rec.Description),
		GoalAmount:         FromWei(rec.GoalAmount),
		TotalDonations:     FromWei(rec.TotalDonations),
		CreatedAt:          pickTime(meta.CreatedAt, rec.CreatedAt),
		Deadline:           deadline,
		Category:           pickString(meta.Category, rec.Category),
		CID:                rec.CID,
		Image:              pickString(meta.Image, ""),
		Verified:           meta.Verified != nil && *meta.Verified,
		SupporterThreshold: pickInt(meta.SupporterThreshold, 0),
		SupportCount:       rec.SupportCount,
		State:              ResolveState(rec.StateCode, deadline, now),
		DaysLeft:           DaysLeft(deadline, now),
	}
}

func pickString(override *string, fallback string) string {
	if override != nil && strings.TrimSpace(*override) != "" {
		return *override
	}
	return fallback
}

func pickInt(override *int, fallback int) int {
	if override != nil {
		return *override
	}
	return fallback
}

// pickTime prefers a parseable metadata date over the on-chain timestamp.
func pickTime(override *string, fallback uint64) time.Time {
	if override != nil {
		if t, ok := parseMetadataTime(*override); ok {
			return t
		}
	}
	return UnixOrZero(fallback)
}

func parseMetadataTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range metadataTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
