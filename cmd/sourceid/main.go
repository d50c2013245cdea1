// Command sourceid converts between FDSN source identifiers and SEED codes.
// A single argument starting with "FDSN:" is decoded to SEED codes; anything
// else is taken as one to four SEED codes and encoded as a source identifier.
//
// Usage:
//
//	sourceid FDSN:XX_STA_LO_L_H_Z
//	sourceid FDSN:XX_STA_LO
//	sourceid FDSN:XX_STA
//	sourceid FDSN:XX
//	sourceid XX STA LO LHZ
//	sourceid XX STA
//	sourceid -json FDSN:X72019_STA_00_B_H_Z
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/fdsn-sourceid/internal/config"
	"github.com/couchcryptid/fdsn-sourceid/internal/observability"
	"github.com/couchcryptid/fdsn-sourceid/internal/sourceid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sourceid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log conversion details to stderr")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: sourceid [-v] [-json] FDSN:NET_STA_LOC_B_S_SS | NET [STA [LOC [CHAN]]]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger := observability.NewLoggerTo(stderr, &config.Config{LogLevel: level, LogFormat: "text"})

	codes := fs.Args()
	if len(codes) == 1 && strings.HasPrefix(codes[0], sourceid.Prefix) {
		return toSEED(codes[0], *asJSON, stdout, stderr, logger)
	}
	return toSID(codes, *asJSON, stdout, stderr, logger)
}

func toSEED(sid string, asJSON bool, stdout, stderr io.Writer, logger *slog.Logger) int {
	logger.Debug("generating SEED codes", "sid", sid)

	res, err := sourceid.ParseSID(sid)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if res.SID.IsTemporary() {
		logger.Debug("temporary network", "code", *res.SID.TempNetCode, "year", *res.SID.TempNetYear)
	}

	if asJSON {
		return writeJSON(stdout, stderr, res)
	}

	codes, err := sourceid.ToSEEDCodes(sid)
	if err != nil {
		logger.Debug("no SEED equivalent", "sid", sid, "reason", res.Reason)
		fmt.Fprintln(stderr, err)
		return 1
	}

	padded := make([]string, 4)
	copy(padded, codes)
	fmt.Fprintf(stdout, "Input SourceID: '%s'\n", sid)
	fmt.Fprintf(stdout, "=> %s\n", describe(padded[0], padded[1], padded[2], padded[3]))
	return 0
}

func toSID(codes []string, asJSON bool, stdout, stderr io.Writer, logger *slog.Logger) int {
	logger.Debug("generating SourceID", "codes", codes)

	sid, err := sourceid.FromSEEDCodes(codes...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if asJSON {
		return writeJSON(stdout, stderr, map[string]string{"sid": sid})
	}

	padded := make([]string, 4)
	copy(padded, codes)
	fmt.Fprintf(stdout, "Input %s\n", describe(padded[0], padded[1], padded[2], padded[3]))
	fmt.Fprintf(stdout, "=> SourceID: '%s'\n", sid)
	return 0
}

// describe renders codes as "Network: 'IU' Station: 'ANMO' ...", omitting
// empty codes after the network.
func describe(network, station, location, channel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network: '%s'", network)
	for _, c := range []struct{ label, code string }{
		{"Station", station},
		{"Location", location},
		{"Channel", channel},
	} {
		if c.code != "" {
			fmt.Fprintf(&b, " %s: '%s'", c.label, c.code)
		}
	}
	return b.String()
}

func writeJSON(stdout, stderr io.Writer, v any) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
