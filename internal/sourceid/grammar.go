package sourceid

import (
	"regexp"
	"strings"
)

const (
	// Prefix starts every Source Identifier.
	Prefix = "FDSN:"

	// Separator joins the codes of a Source Identifier.
	Separator = "_"
)

// SEED code grammars.
var (
	networkSEEDRe  = regexp.MustCompile(`^[A-Z0-9]{1,2}$`)
	stationSEEDRe  = regexp.MustCompile(`^[A-Z0-9]{1,5}$`)
	locationSEEDRe = regexp.MustCompile(`^[A-Z0-9]{0,2}$`)
	channelSEEDRe  = regexp.MustCompile(`^[A-Z0-9]{3}$`)
)

// Source Identifier code grammars. Station and location also allow a dash.
var (
	networkSIDRe   = regexp.MustCompile(`^[A-Z0-9]{1,8}$`)
	stationSIDRe   = regexp.MustCompile(`^[-A-Z0-9]{1,8}$`)
	locationSIDRe  = regexp.MustCompile(`^[-A-Z0-9]{0,8}$`)
	bandSIDRe      = regexp.MustCompile(`^[A-Z0-9]*$`)
	sourceSIDRe    = regexp.MustCompile(`^[A-Z0-9]+$`)
	subsourceSIDRe = regexp.MustCompile(`^[A-Z0-9]*$`)
)

// tempNetRe matches a temporary network code followed by its start year,
// e.g. "X72019" -> code=X7, year=2019. Applied to the network code only.
var tempNetRe = regexp.MustCompile(`^(?P<code>[XYZ0-9][A-Z0-9])(?P<year>[0-9]{4})$`)

// Depth is how far down the network > station > location > channel
// hierarchy a Source Identifier reaches.
type Depth int

const (
	DepthNetwork Depth = iota + 1
	DepthStation
	DepthLocation
	DepthChannel
)

// sidMatch holds the codes of a Source Identifier by role.
type sidMatch struct {
	network   string
	station   string
	location  string
	band      string
	source    string
	subsource string
	depth     Depth
}

// sidGroup is one code of the Source Identifier grammar.
type sidGroup struct {
	role    string
	pattern *regexp.Regexp
	field   func(m *sidMatch) *string
}

// sidGroups lists the codes in the order they appear. A code may only be
// present when every code before it is.
var sidGroups = []sidGroup{
	{role: "network", pattern: networkSIDRe, field: func(m *sidMatch) *string { return &m.network }},
	{role: "station", pattern: stationSIDRe, field: func(m *sidMatch) *string { return &m.station }},
	{role: "location", pattern: locationSIDRe, field: func(m *sidMatch) *string { return &m.location }},
	{role: "band", pattern: bandSIDRe, field: func(m *sidMatch) *string { return &m.band }},
	{role: "source", pattern: sourceSIDRe, field: func(m *sidMatch) *string { return &m.source }},
	{role: "subsource", pattern: subsourceSIDRe, field: func(m *sidMatch) *string { return &m.subsource }},
}

// sidDepths maps the number of separated codes to the depth reached. The
// channel is all-or-nothing: band, source and subsource always appear together.
var sidDepths = map[int]Depth{
	1: DepthNetwork,
	2: DepthStation,
	3: DepthLocation,
	6: DepthChannel,
}

// matchSID walks the Source Identifier grammar group by group. None of the
// code alphabets include the separator, so splitting on it is unambiguous.
func matchSID(sid string) (sidMatch, bool) {
	rest, ok := strings.CutPrefix(sid, Prefix)
	if !ok {
		return sidMatch{}, false
	}

	codes := strings.Split(rest, Separator)
	depth, ok := sidDepths[len(codes)]
	if !ok {
		return sidMatch{}, false
	}

	m := sidMatch{depth: depth}
	for i, code := range codes {
		g := sidGroups[i]
		if !g.pattern.MatchString(code) {
			return sidMatch{}, false
		}
		*g.field(&m) = code
	}
	return m, true
}
