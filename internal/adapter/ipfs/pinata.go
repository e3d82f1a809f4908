package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"chainledger/internal/core/domain"
)

const defaultPinataURL = "https://api.pinata.cloud"

// PinataClient pins JSON documents through the Pinata pinning API. It
// implements port.MetadataPublisher.
type PinataClient struct {
	baseURL string
	jwt     string
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewPinataClient returns a publisher authenticating with a Pinata JWT.
// An empty baseURL selects the public API endpoint.
func NewPinataClient(baseURL, jwt string, timeout time.Duration, logger *slog.Logger) *PinataClient {
	if baseURL == "" {
		baseURL = defaultPinataURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PinataClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		jwt:     jwt,
		client:  http.DefaultClient,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "pinata")),
	}
}

type pinJSONRequest struct {
	PinataContent  domain.CampaignMetadata `json:"pinataContent"`
	PinataMetadata pinMetadata             `json:"pinataMetadata"`
	PinataOptions  pinOptions              `json:"pinataOptions"`
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinOptions struct {
	CIDVersion int `json:"cidVersion"`
}

type pinJSONResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// Publish pins meta and returns its CID.
func (p *PinataClient) Publish(ctx context.Context, meta domain.CampaignMetadata) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	payload, err := json.Marshal(pinJSONRequest{
		PinataContent:  meta,
		PinataMetadata: pinMetadata{Name: "campaign-" + uuid.NewString()},
		PinataOptions:  pinOptions{CIDVersion: 1},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/pinning/pinJSONToIPFS", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.jwt)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("pinata request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("pinata returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out pinJSONResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode pinata response: %w", err)
	}
	if out.IpfsHash == "" {
		return "", errors.New("pinata response carried no IpfsHash")
	}
	p.logger.Debug("pinned metadata", slog.String("cid", out.IpfsHash))
	return out.IpfsHash, nil
}
