package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chainledger/internal/core/domain"
	"chainledger/internal/core/port"
	"chainledger/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockCampaignUseCase, http.Handler) {
	svc := mocks.NewMockCampaignUseCase(t)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics)
	return svc, h.Router()
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func TestListCampaignsDefaults(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		ListCampaigns(mock.Anything, port.ListParams{Limit: 10, Order: port.OrderAsc}).
		Return([]domain.NormalizedCampaign{{ID: 4, Title: "Water", GoalAmount: decimal.RequireFromString("1.5")}}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Water", got[0]["title"])
	assert.Equal(t, "1.5", got[0]["goalAmount"])
}

func TestListCampaignsParams(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		ListCampaigns(mock.Anything, port.ListParams{Limit: 5, Offset: 20, Order: port.OrderDesc}).
		Return([]domain.NormalizedCampaign{}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns?limit=5&offset=20&order=desc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListCampaignsBadParams(t *testing.T) {
	_, h := newTestHandler(t)
	for _, q := range []string{"limit=ten", "offset=x", "order=sideways"} {
		rec := serve(h, http.MethodGet, "/api/v1/campaigns?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestListCampaignsRejectedByUseCase(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return(nil, port.ErrInvalidLimit)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCampaignsLedgerDown(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return(nil, errors.New("rpc down"))

	rec := serve(h, http.MethodGet, "/api/v1/campaigns", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "rpc down")
}

func TestGetCampaign(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, uint64(7)).Return(&domain.NormalizedCampaign{ID: 7, State: domain.StateActive})
	svc.EXPECT().GetCampaign(mock.Anything, uint64(8)).Return(nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.EqualValues(t, 7, got["id"])
	assert.Equal(t, string(domain.StateActive), got["state"])

	rec = serve(h, http.MethodGet, "/api/v1/campaigns/8", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/campaigns/-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStats(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Stats(mock.Anything).Return(&domain.GlobalStats{TotalCampaigns: 3}, nil).Once()

	rec := serve(h, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCampaigns":3`)

	svc.EXPECT().Stats(mock.Anything).Return(nil, errors.New("rpc down")).Once()
	rec = serve(h, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPublishMetadata(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		PublishMetadata(mock.Anything, mock.MatchedBy(func(m domain.CampaignMetadata) bool {
			return m.Title != nil && *m.Title == "Clean water"
		})).
		Return("bafkreiabc", nil)

	rec := serve(h, http.MethodPost, "/api/v1/metadata", strings.NewReader(`{"title":"Clean water","category":"Healthcare"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"cid":"bafkreiabc"}`, rec.Body.String())
}

func TestPublishMetadataErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid", port.ErrInvalidMetadata, http.StatusBadRequest},
		{"disabled", port.ErrPublishingDisabled, http.StatusServiceUnavailable},
		{"upstream", errors.New("pinata returned 401"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().PublishMetadata(mock.Anything, mock.Anything).Return("", tc.err)

			rec := serve(h, http.MethodPost, "/api/v1/metadata", strings.NewReader(`{"title":"x"}`))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestPublishMetadataMalformedBody(t *testing.T) {
	_, h := newTestHandler(t)
	rec := serve(h, http.MethodPost, "/api/v1/metadata", strings.NewReader(`{"title":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	_, h := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = serve(h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}
