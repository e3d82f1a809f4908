package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// DecodeMetadata parses a metadata document field by field. A field whose
// value has the wrong type is skipped and reported in invalid; the rest of
// the document is kept. Only a body that is not a JSON object fails.
func DecodeMetadata(body []byte) (meta *CampaignMetadata, invalid []string, err error) {
	var raw map[string]json.RawMessage
	if err = json.Unmarshal(body, &raw); err != nil {
		return nil, nil, err
	}
	if raw == nil {
		return nil, nil, errors.New("metadata is not a JSON object")
	}

	m := &CampaignMetadata{}
	fields := []struct {
		key string
		set func(json.RawMessage) bool
	}{
		{"title", decodeInto(&m.Title)},
		{"organization", decodeInto(&m.Organization)},
		{"description", decodeInto(&m.Description)},
		{"category", decodeInto(&m.Category)},
		{"createdAt", decodeInto(&m.CreatedAt)},
		{"deadline", decodeInto(&m.Deadline)},
		{"image", decodeInto(&m.Image)},
		{"verified", decodeInto(&m.Verified)},
		{"supporterThreshold", decodeInto(&m.SupporterThreshold)},
	}
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		if !f.set(v) {
			invalid = append(invalid, f.key)
		}
	}
	return m, invalid, nil
}

func decodeInto[T any](dst **T) func(json.RawMessage) bool {
	return func(v json.RawMessage) bool {
		var out T
		if err := json.Unmarshal(v, &out); err != nil {
			return false
		}
		*dst = &out
		return true
	}
}
