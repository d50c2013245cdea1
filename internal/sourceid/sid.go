package sourceid

import "encoding/json"

// ValidateSID reports whether sid is a well-formed Source Identifier.
func ValidateSID(sid string) bool {
	_, ok := matchSID(sid)
	return ok
}

// OptionalCode is a code that may be absent, present but empty, or populated.
// The zero value is absent.
type OptionalCode struct {
	value   string
	present bool
}

// Present returns a code that is present, even when v is empty.
func Present(v string) OptionalCode {
	return OptionalCode{value: v, present: true}
}

// Value returns the code, or "" when absent.
func (c OptionalCode) Value() string { return c.value }

// IsPresent reports whether the code is present.
func (c OptionalCode) IsPresent() bool { return c.present }

// MarshalJSON encodes an absent code as null.
func (c OptionalCode) MarshalJSON() ([]byte, error) {
	if !c.present {
		return []byte("null"), nil
	}
	return json.Marshal(c.value)
}

// UnmarshalJSON decodes null as absent and any string, including "", as present.
func (c *OptionalCode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = OptionalCode{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Present(s)
	return nil
}

// SourceID holds the codes of a Source Identifier. Absent codes are empty,
// except Location which distinguishes absent from present-but-empty.
// TempNetCode and TempNetYear are set only by ParseSID and only for
// temporary networks; BuildSID ignores them.
type SourceID struct {
	Network     string       `json:"network"`
	TempNetCode *string      `json:"temp_net_code"`
	TempNetYear *string      `json:"temp_net_year"`
	Station     string       `json:"station"`
	Location    OptionalCode `json:"location"`
	Band        string       `json:"band"`
	Source      string       `json:"source"`
	Subsource   string       `json:"subsource"`
}

// String rebuilds the Source Identifier, or returns "" if the codes do not
// form one.
func (s SourceID) String() string {
	sid, err := BuildSID(s)
	if err != nil {
		return ""
	}
	return sid
}

// IsTemporary reports whether the network is a temporary network with a year.
func (s SourceID) IsTemporary() bool {
	return s.TempNetCode != nil
}
