package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/couchcryptid/fdsn-sourceid/internal/adapter/http"
	"github.com/couchcryptid/fdsn-sourceid/internal/converter"
	"github.com/couchcryptid/fdsn-sourceid/internal/observability"
	"github.com/couchcryptid/fdsn-sourceid/internal/sourceid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type failingConverter struct{}

func (failingConverter) ToSID(_, _, _, _ string) (string, error) { return "", fmt.Errorf("boom") }
func (failingConverter) FromCodes(_ ...string) (string, error)   { return "", fmt.Errorf("boom") }
func (failingConverter) Parse(_ string) (sourceid.Result, error) {
	return sourceid.Result{}, fmt.Errorf("boom")
}
func (failingConverter) ToCodes(_ string) ([]string, error) {
	return nil, fmt.Errorf("boom")
}
func (failingConverter) Build(_ sourceid.SourceID) (string, error) { return "", fmt.Errorf("boom") }

func newTestServer(readyErr error) *httpadapter.Server {
	svc := converter.NewService(slog.Default(), observability.NewMetricsForTesting(), nil, 0)
	return httpadapter.NewServer(":0", svc, &mockReadiness{err: readyErr}, slog.Default())
}

func serve(t *testing.T, srv *httpadapter.Server, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestToSID(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"full tuple", "network=IU&station=ANMO&location=00&channel=BHZ", "FDSN:IU_ANMO_00_B_H_Z"},
		{"network only", "network=IU", "FDSN:IU"},
		{"empty location", "network=IU&station=ANMO&location=", "FDSN:IU_ANMO_"},
		{"stops at first missing code", "network=IU&location=00&channel=BHZ", "FDSN:IU"},
	}

	srv := newTestServer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/v1/sid?"+tt.query, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expected, body["sid"])
		})
	}
}

func TestToSID_InvalidTuple(t *testing.T) {
	srv := newTestServer(nil)
	rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/v1/sid?network=ABC&station=ANMO&location=00&channel=BHZ", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "invalid SEED network code:'ABC'")
}

func TestToSID_MissingNetwork(t *testing.T) {
	srv := newTestServer(nil)
	rec, _ := serve(t, srv, httptest.NewRequest(http.MethodGet, "/v1/sid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToNSLC(t *testing.T) {
	srv := newTestServer(nil)

	t.Run("lossless", func(t *testing.T) {
		rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/v1/nslc?sid=FDSN:X72019_STA01_00_B_H_Z", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		nslc, ok := body["nslc"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "X7", nslc["network"])
		assert.Equal(t, "BHZ", nslc["channel"])

		sid, ok := body["sid"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "2019", sid["temp_net_year"])
	})

	t.Run("lossy", func(t *testing.T) {
		rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/v1/nslc?sid=FDSN:IU_LONGSTA_00_B_H_Z", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, body["nslc"])
		assert.Contains(t, body["reason"], "station code > 5 chars")
	})

	t.Run("invalid", func(t *testing.T) {
		rec, _ := serve(t, srv, httptest.NewRequest(http.MethodGet, "/v1/nslc?sid=IU.ANMO.00.BHZ", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestToCodes(t *testing.T) {
	tests := []struct {
		sid      string
		expected []any
	}{
		{"FDSN:XX", []any{"XX"}},
		{"FDSN:XX_STA", []any{"XX", "STA"}},
		{"FDSN:XX_STA_LO", []any{"XX", "STA", "LO"}},
		{"FDSN:XX_STA_LO_L_H_Z", []any{"XX", "STA", "LO", "LHZ"}},
	}

	srv := newTestServer(nil)
	for _, tt := range tests {
		t.Run(tt.sid, func(t *testing.T) {
			rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/v1/codes?sid="+tt.sid, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expected, body["codes"])
		})
	}

	t.Run("codes that do not fit", func(t *testing.T) {
		rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/v1/codes?sid=FDSN:NETWRK_STA", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body["error"], "invalid SEED network code:'NETWRK'")
	})
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		expected string
	}{
		{"null location drops channel", `{"network":"IU","station":"ANMO","location":null,"band":"B","source":"H","subsource":"Z"}`, http.StatusOK, "FDSN:IU_ANMO"},
		{"empty location keeps channel", `{"network":"IU","station":"ANMO","location":"","band":"B","source":"H","subsource":"Z"}`, http.StatusOK, "FDSN:IU_ANMO__B_H_Z"},
		{"missing network", `{"station":"ANMO"}`, http.StatusBadRequest, ""},
		{"malformed body", `{"network":`, http.StatusBadRequest, ""},
	}

	srv := newTestServer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/build", strings.NewReader(tt.body))
			rec, body := serve(t, srv, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, body["sid"])
			}
		})
	}
}

func TestConverterFailureReturns500(t *testing.T) {
	srv := httpadapter.NewServer(":0", failingConverter{}, &mockReadiness{}, slog.Default())
	rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/v1/nslc?sid=FDSN:IU", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", body["error"])
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(fmt.Errorf("not ready yet"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
