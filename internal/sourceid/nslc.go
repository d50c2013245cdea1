package sourceid

import "fmt"

// NSLC is a SEED Network/Station/Location/Channel tuple.
type NSLC struct {
	Network  string `json:"network"`
	Station  string `json:"station"`
	Location string `json:"location"`
	Channel  string `json:"channel"`
}

// String renders the tuple in the dotted form used by most seismic tools,
// e.g. "IU.ANMO.00.BHZ".
func (n NSLC) String() string {
	return n.Network + "." + n.Station + "." + n.Location + "." + n.Channel
}

// Valid reports whether every code of the tuple is a valid SEED code.
func (n NSLC) Valid() bool {
	return ValidateNSLC(n.Network, n.Station, n.Location, n.Channel)
}

// ValidateNSLC reports whether all four codes match their SEED grammars.
func ValidateNSLC(network, station, location, channel string) bool {
	return ValidNetwork(network) &&
		ValidStation(station) &&
		ValidLocation(location) &&
		ValidChannel(channel)
}

// ValidNetwork reports whether s is a 1-2 char SEED network code.
func ValidNetwork(s string) bool { return networkSEEDRe.MatchString(s) }

// ValidStation reports whether s is a 1-5 char SEED station code.
func ValidStation(s string) bool { return stationSEEDRe.MatchString(s) }

// ValidLocation reports whether s is a 0-2 char SEED location code.
func ValidLocation(s string) bool { return locationSEEDRe.MatchString(s) }

// ValidChannel reports whether s is a 3 char SEED channel code.
func ValidChannel(s string) bool { return channelSEEDRe.MatchString(s) }

// seedProblems lists every code of a (possibly partial) tuple that fails its
// grammar. Only the first len(codes) fields are checked.
func seedProblems(codes ...string) []string {
	checks := []struct {
		name  string
		valid func(string) bool
	}{
		{"network", ValidNetwork},
		{"station", ValidStation},
		{"location", ValidLocation},
		{"channel", ValidChannel},
	}

	var problems []string
	for i, code := range codes {
		if i >= len(checks) {
			problems = append(problems, fmt.Sprintf("unexpected extra code:'%s'", code))
			continue
		}
		if !checks[i].valid(code) {
			problems = append(problems, fmt.Sprintf("invalid SEED %s code:'%s'", checks[i].name, code))
		}
	}
	return problems
}
