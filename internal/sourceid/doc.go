// Package sourceid converts between legacy SEED channel codes and FDSN
// Source Identifiers.
//
// # Identifier Schemes
//
// The legacy scheme is a fixed-width Network/Station/Location/Channel tuple
// (NSLC):
//
//	network   1-2 upper-alphanumeric chars   e.g. "IU"
//	station   1-5 upper-alphanumeric chars   e.g. "ANMO"
//	location  0-2 upper-alphanumeric chars   e.g. "00", or empty
//	channel   exactly 3 chars                e.g. "BHZ" (band, source, subsource)
//
// A Source Identifier (SID) is a single string with a fixed prefix and
// underscore-separated codes, splitting the channel into its three parts:
//
//	FDSN:NET_STA_LOC_BAND_SOURCE_SUBSOURCE   e.g. "FDSN:IU_ANMO_00_B_H_Z"
//
// SID codes are longer than their SEED counterparts (up to 8 chars for
// network, station and location; source has no fixed limit) and may be
// truncated from the right: "FDSN:IU", "FDSN:IU_ANMO" and "FDSN:IU_ANMO_00"
// are all valid. A location that is present but empty still keeps its
// separator ("FDSN:IU_ANMO__B_H_Z").
//
// # Temporary Networks
//
// Temporary deployments use a 2-char SEED network code whose first char is
// X, Y, Z or a digit. In a SID the deployment start year is appended, e.g.
// "X72019" is SEED network "X7" starting in 2019. See [DetectTempNet].
//
// # Lossy Conversion
//
// Every valid NSLC has a SID equivalent, but not every SID has an NSLC
// equivalent. [ParseSID] always returns the decoded SID fields and derives
// the NSLC only when no information is lost; otherwise [Result.Reason] lists
// every code that could not be represented.
//
// Truncated identifiers convert by depth in both directions: [FromSEEDCodes]
// and [ToSEEDCodes] map "FDSN:IU_ANMO" to and from the codes IU and ANMO.
//
// All functions are pure and safe for concurrent use.
package sourceid
