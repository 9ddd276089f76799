package lasttraintransport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainendpoint"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainservice"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainservice/night"
)

// mockService returns a fixed summary or error.
type mockService struct {
	summary night.Summary
	err     error
}

func (m mockService) EscapePlan(context.Context, night.Configuration) (night.Summary, error) {
	return m.summary, m.err
}

func newTestServer(s lasttrainservice.Service) *httptest.Server {
	logger := log.NewNopLogger()
	endpoints := lasttrainendpoint.New(s, logger)
	return httptest.NewServer(MakeHTTPHandler(endpoints, logger))
}

func TestEscapePlanHTTP(t *testing.T) {
	now := time.Date(2026, 3, 6, 22, 30, 0, 0, time.UTC)
	summary := night.Summary{
		Origin:      "Gangnam",
		Destination: "Incheon",
		Now:         now,
		Any:         night.Cutoff{Departure: now.Add(time.Hour), Duration: 45, Found: true},
		Queries:     7,
		Report:      "Route: Gangnam -> Incheon",
	}
	srv := newTestServer(mockService{summary: summary})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/plan/", "application/json",
		strings.NewReader(`{"origin": "Gangnam", "destination": "Incheon"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded night.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "Gangnam", decoded.Origin)
	assert.True(t, decoded.Any.Found)
	assert.Equal(t, 45, decoded.Any.Duration)
	assert.Equal(t, 7, decoded.Queries)
}

func TestEscapePlanHTTPBadRequest(t *testing.T) {
	srv := newTestServer(mockService{err: lasttrainservice.ErrOriginEmpty})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/plan/", "application/json",
		strings.NewReader(`{"destination": "Incheon"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var w struct {
		Err string `json:"err"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&w))
	assert.Equal(t, lasttrainservice.ErrOriginEmpty.Error(), w.Err)
}

func TestEscapePlanHTTPMethodNotAllowed(t *testing.T) {
	srv := newTestServer(mockService{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/plan/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHTTPClientRoundTrip(t *testing.T) {
	summary := night.Summary{Origin: "A", Destination: "B", NoRoute: true, Queries: 1}
	srv := newTestServer(mockService{summary: summary})
	defer srv.Close()

	client, err := MakeHTTPClient(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)

	got, err := client.EscapePlan(context.Background(), night.Configuration{
		Origin: "A", Destination: "B",
	})
	require.NoError(t, err)
	assert.True(t, got.NoRoute)
	assert.Equal(t, 1, got.Queries)
}
