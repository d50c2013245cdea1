package converter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/fdsn-sourceid/internal/observability"
	"github.com/couchcryptid/fdsn-sourceid/internal/sourceid"
	"github.com/jonboulle/clockwork"
)

// Service wraps the sourceid codec with logging, metrics and an optional
// parse cache. It is safe for concurrent use.
type Service struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
	cache   *lruCache // nil when caching is disabled
}

// NewService creates a Service. A cacheSize of zero or less disables the
// parse cache. Pass a nil clock to use real time.
func NewService(logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock, cacheSize int) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	s := &Service{
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
	if cacheSize > 0 {
		s.cache = newLRUCache(cacheSize)
		metrics.CacheEnabled.Set(1)
	} else {
		metrics.CacheEnabled.Set(0)
	}
	return s
}

// CheckReadiness always succeeds: the codec has no external dependencies.
func (s *Service) CheckReadiness(_ context.Context) error {
	return nil
}

// ToSID converts a complete SEED tuple to a source identifier.
func (s *Service) ToSID(network, station, location, channel string) (string, error) {
	start := s.clock.Now()
	sid, err := sourceid.NSLCToSID(network, station, location, channel)
	if err != nil {
		s.observe(observability.DirectionToSID, observability.OutcomeInvalid, start)
		s.logger.Warn("rejected NSLC",
			"network", network,
			"station", station,
			"location", location,
			"channel", channel,
			"error", err,
		)
		return "", fmt.Errorf("convert nslc: %w", err)
	}
	s.observe(observability.DirectionToSID, observability.OutcomeOK, start)
	return sid, nil
}

// FromCodes converts one to four SEED codes to a source identifier at the
// matching depth.
func (s *Service) FromCodes(codes ...string) (string, error) {
	start := s.clock.Now()
	sid, err := sourceid.FromSEEDCodes(codes...)
	if err != nil {
		s.observe(observability.DirectionToSID, observability.OutcomeInvalid, start)
		s.logger.Warn("rejected SEED codes", "codes", codes, "error", err)
		return "", fmt.Errorf("convert seed codes: %w", err)
	}
	s.observe(observability.DirectionToSID, observability.OutcomeOK, start)
	return sid, nil
}

// Parse decodes a source identifier and derives its NSLC, if any.
func (s *Service) Parse(sid string) (sourceid.Result, error) {
	start := s.clock.Now()
	res, err := s.parse(sid)
	if err != nil {
		s.observe(observability.DirectionToNSLC, observability.OutcomeInvalid, start)
		s.logger.Warn("rejected source identifier", "sid", sid, "error", err)
		return sourceid.Result{}, fmt.Errorf("parse source identifier: %w", err)
	}

	if res.SID.IsTemporary() {
		s.metrics.TempNetworks.Inc()
	}
	if !res.Lossless() {
		s.observe(observability.DirectionToNSLC, observability.OutcomeLossy, start)
		s.logger.Debug("no lossless NSLC equivalent", "sid", sid, "reason", res.Reason)
		return res, nil
	}
	s.observe(observability.DirectionToNSLC, observability.OutcomeOK, start)
	return res, nil
}

// ToNSLC returns the NSLC equivalent of a source identifier, or nil when
// the conversion would lose information.
func (s *Service) ToNSLC(sid string) (*sourceid.NSLC, error) {
	res, err := s.Parse(sid)
	if err != nil {
		return nil, err
	}
	return res.NSLC, nil
}

// ToCodes splits a source identifier into the SEED codes it holds, down to
// the depth it reaches.
func (s *Service) ToCodes(sid string) ([]string, error) {
	start := s.clock.Now()
	codes, err := sourceid.ToSEEDCodes(sid)
	if err != nil {
		s.observe(observability.DirectionToSEED, observability.OutcomeInvalid, start)
		s.logger.Warn("rejected source identifier", "sid", sid, "error", err)
		return nil, fmt.Errorf("split source identifier: %w", err)
	}
	s.observe(observability.DirectionToSEED, observability.OutcomeOK, start)
	return codes, nil
}

// Build assembles a source identifier from its codes.
func (s *Service) Build(fields sourceid.SourceID) (string, error) {
	start := s.clock.Now()
	sid, err := sourceid.BuildSID(fields)
	if err != nil {
		s.observe(observability.DirectionBuild, observability.OutcomeInvalid, start)
		s.logger.Warn("rejected source identifier fields", "network", fields.Network, "error", err)
		return "", fmt.Errorf("build source identifier: %w", err)
	}
	s.observe(observability.DirectionBuild, observability.OutcomeOK, start)
	return sid, nil
}

func (s *Service) parse(sid string) (sourceid.Result, error) {
	if s.cache == nil {
		return sourceid.ParseSID(sid)
	}
	if res, ok := s.cache.get(sid); ok {
		s.metrics.Cache.WithLabelValues("hit").Inc()
		return res, nil
	}
	s.metrics.Cache.WithLabelValues("miss").Inc()

	res, err := sourceid.ParseSID(sid)
	if err != nil {
		return res, err
	}
	// Only valid identifiers are cached so garbage input cannot evict them.
	s.cache.put(sid, res)
	return res, nil
}

func (s *Service) observe(direction, outcome string, start time.Time) {
	s.metrics.Conversions.WithLabelValues(direction, outcome).Inc()
	s.metrics.ConversionDuration.WithLabelValues(direction).Observe(s.clock.Since(start).Seconds())
}
