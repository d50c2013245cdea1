package sourceid

import "strings"

// NSLCToSID converts a complete SEED tuple to a Source Identifier, splitting
// the channel into band, source and subsource:
//
//	IU ANMO 00 BHZ -> FDSN:IU_ANMO_00_B_H_Z
func NSLCToSID(network, station, location, channel string) (string, error) {
	if problems := seedProblems(network, station, location, channel); len(problems) > 0 {
		return "", &Error{Kind: ErrInvalidNSLC, Input: NSLC{network, station, location, channel}.String(), Problems: problems}
	}

	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteString(network)
	for _, code := range []string{station, location, channel[0:1], channel[1:2], channel[2:3]} {
		b.WriteString(Separator)
		b.WriteString(code)
	}

	sid := b.String()
	if !ValidateSID(sid) {
		return "", invalidSourceID(sid)
	}
	return sid, nil
}

// BuildSID assembles a Source Identifier from its codes, stopping at the
// first level that is missing:
//   - station is included only when non-empty;
//   - location only after a station and when present, even if empty;
//   - band, source and subsource only after a location and when source is
//     non-empty.
//
// TempNetCode and TempNetYear are ignored; Network must hold the full code.
func BuildSID(s SourceID) (string, error) {
	if s.Network == "" {
		return "", &Error{Kind: ErrEmptyNetwork}
	}

	sid := Prefix + s.Network
	if s.Station != "" {
		sid += Separator + s.Station
		if s.Location.IsPresent() {
			sid += Separator + s.Location.Value()
			if s.Source != "" {
				sid += Separator + s.Band + Separator + s.Source + Separator + s.Subsource
			}
		}
	}

	if !ValidateSID(sid) {
		return "", invalidSourceID(sid)
	}
	return sid, nil
}

// FromSEEDCodes converts one to four SEED codes, in network, station,
// location, channel order, to a Source Identifier at the matching depth:
//
//	IU               -> FDSN:IU
//	IU ANMO          -> FDSN:IU_ANMO
//	IU ANMO 00       -> FDSN:IU_ANMO_00
//	IU ANMO 00 BHZ   -> FDSN:IU_ANMO_00_B_H_Z
//
// Every code given must be valid; all failures are reported together.
func FromSEEDCodes(codes ...string) (string, error) {
	if len(codes) == 0 || codes[0] == "" {
		return "", &Error{Kind: ErrEmptyNetwork, Input: strings.Join(codes, " ")}
	}
	if problems := seedProblems(codes...); len(problems) > 0 {
		return "", &Error{Kind: ErrInvalidNSLC, Input: strings.Join(codes, " "), Problems: problems}
	}

	s := SourceID{Network: codes[0]}
	if len(codes) > 1 {
		s.Station = codes[1]
	}
	if len(codes) > 2 {
		s.Location = Present(codes[2])
	}
	if len(codes) > 3 {
		s.Band, s.Source, s.Subsource = codes[3][0:1], codes[3][1:2], codes[3][2:3]
	}
	return BuildSID(s)
}
