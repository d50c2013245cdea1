package sourceid

import (
	"fmt"
	"strings"
)

// Result is a parsed Source Identifier with its SEED equivalent, if any.
// NSLC is non-nil exactly when Reason is empty.
type Result struct {
	SID    SourceID `json:"sid"`
	NSLC   *NSLC    `json:"nslc"`
	Reason string   `json:"reason,omitempty"`
}

// Lossless reports whether the Source Identifier has an NSLC equivalent.
func (r Result) Lossless() bool {
	return r.NSLC != nil
}

// reasons accumulates why an NSLC could not be derived.
type reasons struct {
	b strings.Builder
}

func (r *reasons) addf(format string, args ...any) {
	fmt.Fprintf(&r.b, format, args...)
	r.b.WriteString(". ")
}

func (r *reasons) String() string {
	return strings.TrimSpace(r.b.String())
}

// ParseSID decodes a Source Identifier and derives its NSLC equivalent.
// An invalid sid returns ErrInvalidSourceID. A valid sid that does not fit
// in SEED codes is not an error: the Result has a nil NSLC and a Reason
// listing every code that does not fit.
func ParseSID(sid string) (Result, error) {
	m, ok := matchSID(sid)
	if !ok {
		return Result{}, invalidSourceID(sid)
	}

	parsed := SourceID{
		Network:   m.network,
		Station:   m.station,
		Band:      m.band,
		Source:    m.source,
		Subsource: m.subsource,
	}
	if m.depth >= DepthLocation {
		parsed.Location = Present(m.location)
	}

	// Every check runs even after the first failure so that the reason
	// reports all offending codes at once.
	var why reasons
	seed := &NSLC{}

	if code, year, isTemp := DetectTempNet(parsed.Network); isTemp {
		parsed.TempNetCode = &code
		parsed.TempNetYear = &year
		seed.Network = code
	} else if len(parsed.Network) <= 2 {
		seed.Network = parsed.Network
	} else {
		why.addf("network code > 2 chars: '%s'", parsed.Network)
		seed = nil
	}

	if len(parsed.Station) <= 5 {
		if seed != nil {
			seed.Station = parsed.Station
		}
	} else {
		why.addf("station code > 5 chars: '%s'", parsed.Station)
		seed = nil
	}

	location := parsed.Location.Value()
	if len(location) <= 2 {
		if seed != nil {
			seed.Location = location
		}
	} else {
		why.addf("location code > 2 chars: '%s'", location)
		seed = nil
	}

	if len(parsed.Band) == 1 && len(parsed.Source) == 1 && len(parsed.Subsource) == 1 {
		if seed != nil {
			seed.Channel = parsed.Band + parsed.Source + parsed.Subsource
		}
	} else {
		seed = nil
		if len(parsed.Band) != 1 {
			why.addf("band code not 1 char: '%s'", parsed.Band)
		}
		if len(parsed.Source) != 1 {
			why.addf("source code not 1 char: '%s'", parsed.Source)
		}
		if len(parsed.Subsource) != 1 {
			why.addf("subsource code not 1 char: '%s'", parsed.Subsource)
		}
	}

	// Length checks alone do not cover the SEED alphabet (no dashes).
	if seed != nil && !seed.Valid() {
		why.addf("NSLC codes invalid: '%s', '%s', '%s', '%s'",
			seed.Network, seed.Station, seed.Location, seed.Channel)
		seed = nil
	}

	return Result{SID: parsed, NSLC: seed, Reason: why.String()}, nil
}

// SIDToNSLC returns the NSLC equivalent of a Source Identifier, or nil when
// there is none. An invalid sid returns ErrInvalidSourceID.
func SIDToNSLC(sid string) (*NSLC, error) {
	res, err := ParseSID(sid)
	if err != nil {
		return nil, err
	}
	return res.NSLC, nil
}

// ToSEEDCodes splits a Source Identifier into the SEED codes it holds, down
// to the depth it reaches:
//
//	FDSN:IU                -> IU
//	FDSN:IU_ANMO           -> IU ANMO
//	FDSN:IU_ANMO_00        -> IU ANMO 00
//	FDSN:IU_ANMO_00_B_H_Z  -> IU ANMO 00 BHZ
//
// A temporary network is reduced to its two character code. Every code must
// be a valid SEED code; all failures are reported together as ErrInvalidNSLC.
func ToSEEDCodes(sid string) ([]string, error) {
	m, ok := matchSID(sid)
	if !ok {
		return nil, invalidSourceID(sid)
	}

	network := m.network
	if code, _, isTemp := DetectTempNet(network); isTemp {
		network = code
	}

	codes := []string{network}
	if m.depth >= DepthStation {
		codes = append(codes, m.station)
	}
	if m.depth >= DepthLocation {
		codes = append(codes, m.location)
	}
	if m.depth >= DepthChannel {
		codes = append(codes, seedChannel(m.band, m.source, m.subsource))
	}

	if problems := seedProblems(codes...); len(problems) > 0 {
		return nil, &Error{Kind: ErrInvalidNSLC, Input: sid, Problems: problems}
	}
	return codes, nil
}

// seedChannel collapses band, source and subsource into a SEED channel when
// each is a single character, and otherwise keeps the extended form so that
// validation reports it.
func seedChannel(band, source, subsource string) string {
	if len(band) == 1 && len(source) == 1 && len(subsource) == 1 {
		return band + source + subsource
	}
	return band + Separator + source + Separator + subsource
}
