package domain

import (
	"fmt"
	"time"
)

// CampaignState is the lifecycle state of a campaign as shown to clients.
type CampaignState string

const (
	StatePending   CampaignState = "Pending"
	StateActive    CampaignState = "Active"
	StateCancelled CampaignState = "Cancelled"
	StateCompleted CampaignState = "Completed"
)

// stateCodes maps the contract's enum ordinals onto named states.
var stateCodes = [...]CampaignState{
	StatePending,
	StateActive,
	StateCancelled,
	StateCompleted,
}

// StateFromCode translates an on-chain state ordinal. Codes the contract
// does not define decode as Pending.
func StateFromCode(code uint8) CampaignState {
	if int(code) < len(stateCodes) {
		return stateCodes[code]
	}
	return StatePending
}

// ResolveState applies the deadline override: once a non-zero deadline has
// passed the campaign is Completed whatever the ledger says.
func ResolveState(code uint8, deadline, now time.Time) CampaignState {
	if !deadline.IsZero() && !deadline.After(now) {
		return StateCompleted
	}
	return StateFromCode(code)
}

// ParseState parses a state name, case-sensitively.
func ParseState(s string) (CampaignState, error) {
	for _, st := range stateCodes {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown campaign state %q", s)
}
