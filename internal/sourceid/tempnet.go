package sourceid

var (
	tempNetCodeIdx = tempNetRe.SubexpIndex("code")
	tempNetYearIdx = tempNetRe.SubexpIndex("year")
)

// DetectTempNet splits an extended temporary network code into its SEED code
// and deployment year, e.g. "X72019" -> ("X7", "2019", true). Permanent
// network codes and codes without a year return ok=false.
func DetectTempNet(network string) (code, year string, ok bool) {
	m := tempNetRe.FindStringSubmatch(network)
	if m == nil {
		return "", "", false
	}
	return m[tempNetCodeIdx], m[tempNetYearIdx], true
}
