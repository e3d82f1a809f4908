package ipfs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func mirror(t *testing.T, h http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestGatewayFallsThroughToNextMirror(t *testing.T) {
	down, downHits := mirror(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	})
	garbage, garbageHits := mirror(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>rate limited</html>")
	})
	up, upHits := mirror(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ipfs/bafydoc", r.URL.Path)
		_, _ = io.WriteString(w, `{"title":"B"}`)
	})

	g := NewGatewayClient([]string{down.URL + "/ipfs", garbage.URL + "/ipfs/", up.URL + "/ipfs/"}, quietLogger())
	body, err := g.Fetch(context.Background(), "bafydoc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"B"}`, string(body))
	assert.EqualValues(t, 1, downHits.Load())
	assert.EqualValues(t, 1, garbageHits.Load())
	assert.EqualValues(t, 1, upHits.Load())
}

func TestGatewayStopsAtFirstSuccess(t *testing.T) {
	first, _ := mirror(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})
	second, secondHits := mirror(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	g := NewGatewayClient([]string{first.URL + "/", second.URL + "/"}, quietLogger())
	_, err := g.Fetch(context.Background(), "cid")
	require.NoError(t, err)
	assert.EqualValues(t, 0, secondHits.Load())
}

func TestGatewayAllMirrorsFail(t *testing.T) {
	a, _ := mirror(t, func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) })
	b, _ := mirror(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	g := NewGatewayClient([]string{a.URL, b.URL}, quietLogger())
	_, err := g.Fetch(context.Background(), "cid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "500")
}

// TestGatewayMirrorTimeout ensures a hung mirror is abandoned after its deadline.
func TestGatewayMirrorTimeout(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	hung, _ := mirror(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	up, _ := mirror(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"title":"late"}`)
	})

	g := NewGatewayClient([]string{hung.URL + "/", up.URL + "/"}, quietLogger(), WithMirrorTimeout(50*time.Millisecond))

	start := time.Now()
	body, err := g.Fetch(context.Background(), "cid")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"late"}`, string(body))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestGatewayRejectsOversizedDocument(t *testing.T) {
	big, _ := mirror(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"description":"0123456789"}`)
	})

	g := NewGatewayClient([]string{big.URL + "/"}, quietLogger(), WithMaxBytes(8))
	_, err := g.Fetch(context.Background(), "cid")
	require.Error(t, err)
}

func TestGatewayWithoutMirrors(t *testing.T) {
	g := NewGatewayClient([]string{" ", ""}, quietLogger())
	_, err := g.Fetch(context.Background(), "cid")
	require.Error(t, err)
}
