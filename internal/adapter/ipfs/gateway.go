package ipfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"chainledger/internal/metrics"
)

const (
	defaultMirrorTimeout = 5 * time.Second
	defaultMaxBytes      = 1 << 20
)

// GatewayClient fetches documents from an ordered list of IPFS HTTP gateways.
// It implements port.ContentFetcher.
type GatewayClient struct {
	mirrors  []string
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
	logger   *slog.Logger
	metrics  *metrics.Registry
}

// GatewayOption customises a GatewayClient.
type GatewayOption func(*GatewayClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) GatewayOption {
	return func(g *GatewayClient) { g.client = c }
}

// WithMirrorTimeout bounds each individual mirror attempt.
func WithMirrorTimeout(d time.Duration) GatewayOption {
	return func(g *GatewayClient) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithMaxBytes caps the accepted document size.
func WithMaxBytes(n int64) GatewayOption {
	return func(g *GatewayClient) {
		if n > 0 {
			g.maxBytes = n
		}
	}
}

// WithMetrics records mirror failures.
func WithMetrics(m *metrics.Registry) GatewayOption {
	return func(g *GatewayClient) { g.metrics = m }
}

// NewGatewayClient returns a client trying mirrors in the given order. Each
// mirror is a base URL the identifier is appended to, e.g.
// "https://ipfs.io/ipfs/".
func NewGatewayClient(mirrors []string, logger *slog.Logger, opts ...GatewayOption) *GatewayClient {
	if logger == nil {
		logger = slog.Default()
	}
	g := &GatewayClient{
		mirrors:  normalizeMirrors(mirrors),
		client:   http.DefaultClient,
		timeout:  defaultMirrorTimeout,
		maxBytes: defaultMaxBytes,
		logger:   logger.With(slog.String("component", "ipfs-gateway")),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func normalizeMirrors(mirrors []string) []string {
	out := make([]string, 0, len(mirrors))
	for _, m := range mirrors {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if !strings.HasSuffix(m, "/") {
			m += "/"
		}
		out = append(out, m)
	}
	return out
}

// Fetch returns the JSON document served for cid by the first mirror that
// answers with a 2xx status and a well-formed body. When every mirror fails
// the joined errors are returned.
func (g *GatewayClient) Fetch(ctx context.Context, cid string) ([]byte, error) {
	if len(g.mirrors) == 0 {
		return nil, errors.New("no ipfs mirrors configured")
	}
	var errs []error
	for _, mirror := range g.mirrors {
		body, err := g.fetchFrom(ctx, mirror, cid)
		if err == nil {
			return body, nil
		}
		g.logger.Debug("mirror failed", slog.String("mirror", mirror), slog.String("cid", cid), slog.Any("error", err))
		g.metrics.MirrorFailed(mirror)
		errs = append(errs, fmt.Errorf("%s: %w", mirror, err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}

func (g *GatewayClient) fetchFrom(ctx context.Context, mirror, cid string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mirror+cid, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > g.maxBytes {
		return nil, fmt.Errorf("document exceeds %d bytes", g.maxBytes)
	}
	if !json.Valid(body) {
		return nil, errors.New("response is not a JSON document")
	}
	return body, nil
}
