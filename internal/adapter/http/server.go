package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/fdsn-sourceid/internal/sourceid"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Converter converts between SEED codes and source identifiers.
type Converter interface {
	ToSID(network, station, location, channel string) (string, error)
	FromCodes(codes ...string) (string, error)
	Parse(sid string) (sourceid.Result, error)
	ToCodes(sid string) ([]string, error)
	Build(fields sourceid.SourceID) (string, error)
}

// Server exposes the conversion API alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	conv       Converter
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /v1/sid, /v1/nslc, /v1/codes, /v1/build,
// /healthz, /readyz, and /metrics routes.
func NewServer(addr string, conv Converter, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		conv:   conv,
		logger: logger,
	}

	mux.HandleFunc("GET /v1/sid", s.handleToSID)
	mux.HandleFunc("GET /v1/nslc", s.handleToNSLC)
	mux.HandleFunc("GET /v1/codes", s.handleToCodes)
	mux.HandleFunc("POST /v1/build", s.handleBuild)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type sidResponse struct {
	SID string `json:"sid"`
}

// seedParams are the query parameters of /v1/sid in hierarchy order.
var seedParams = []string{"network", "station", "location", "channel"}

// handleToSID converts SEED codes to a source identifier. Codes are taken in
// order up to the first missing parameter, so ?network=IU&station=ANMO yields
// FDSN:IU_ANMO while ?network=IU&station=ANMO&location= keeps the empty location.
func (s *Server) handleToSID(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	codes := make([]string, 0, len(seedParams))
	for _, name := range seedParams {
		if !q.Has(name) {
			break
		}
		codes = append(codes, q.Get(name))
	}

	var (
		sid string
		err error
	)
	if len(codes) == len(seedParams) {
		sid, err = s.conv.ToSID(codes[0], codes[1], codes[2], codes[3])
	} else {
		sid, err = s.conv.FromCodes(codes...)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sidResponse{SID: sid})
}

func (s *Server) handleToNSLC(w http.ResponseWriter, r *http.Request) {
	res, err := s.conv.Parse(r.URL.Query().Get("sid"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type codesResponse struct {
	Codes []string `json:"codes"`
}

// handleToCodes returns the SEED codes of a possibly partial source
// identifier, e.g. ?sid=FDSN:IU_ANMO yields ["IU","ANMO"].
func (s *Server) handleToCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := s.conv.ToCodes(r.URL.Query().Get("sid"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, codesResponse{Codes: codes})
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	var fields sourceid.SourceID
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "decode request body: " + err.Error()})
		return
	}
	sid, err := s.conv.Build(fields)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sidResponse{SID: sid})
}

// writeError maps codec errors to 400 and anything else to 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, sourceid.ErrInvalidNSLC) ||
		errors.Is(err, sourceid.ErrInvalidSourceID) ||
		errors.Is(err, sourceid.ErrEmptyNetwork) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("conversion failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
