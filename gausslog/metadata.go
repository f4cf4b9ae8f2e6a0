package gausslog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// metadataBuilder folds the scattered metadata spans of the preamble
// and epilogue into one JobMetadata. Termination stays abnormal until
// the terminal marker is actually seen; a log that just stops is not a
// job that finished.
type metadataBuilder struct {
	meta JobMetadata
	seen bool
}

func newMetadataBuilder() *metadataBuilder {
	return &metadataBuilder{meta: JobMetadata{Termination: TerminationAbnormal}}
}

func (b *metadataBuilder) consume(lines []string, span Span) []Diagnostic {
	first := strings.TrimSpace(lines[span.Start])
	if isFence(first) {
		return b.consumeFenced(lines, span)
	}
	return b.consumeLine(first, span)
}

// consumeFenced handles the route and title blocks. The route can wrap
// over several lines inside its fence; title is the first fenced block
// that is not a route.
func (b *metadataBuilder) consumeFenced(lines []string, span Span) []Diagnostic {
	var content []string
	for j := span.Start + 1; j < span.End-1; j++ {
		content = append(content, strings.TrimSpace(lines[j]))
	}
	if len(content) == 0 {
		return nil
	}
	b.seen = true
	if strings.HasPrefix(content[0], "#") {
		if b.meta.Route == "" {
			b.meta.Route = strings.Join(content, " ")
			b.parseRoute()
		}
		return nil
	}
	if b.meta.Title == "" {
		b.meta.Title = strings.Join(content, " ")
	}
	return nil
}

func (b *metadataBuilder) consumeLine(t string, span Span) []Diagnostic {
	b.seen = true
	switch {
	case strings.HasPrefix(t, "#"):
		if b.meta.Route == "" {
			b.meta.Route = t
			b.parseRoute()
		}
	case strings.HasPrefix(t, "Charge ="):
		if err := b.parseChargeMultiplicity(t); err != nil {
			return []Diagnostic{{
				Section: SectionMetadata, Line: span.Start + 1, EndLine: span.End,
				Cause: err.Error(),
			}}
		}
	case strings.HasPrefix(t, "Gaussian "):
		if b.meta.Version == "" {
			b.meta.Version = versionFromBanner(t)
		}
	case strings.Contains(t, "termination of Gaussian"):
		if strings.HasPrefix(t, "Normal") {
			b.meta.Termination = TerminationNormal
		} else {
			b.meta.Termination = TerminationAbnormal
		}
	case strings.HasPrefix(t, "Job cpu time"):
		b.meta.CPUTime = parseClockTime(t)
	case strings.HasPrefix(t, "Elapsed time"):
		b.meta.ElapsedTime = parseClockTime(t)
	}
	return nil
}

// parseRoute pulls the method and basis out of the first route token
// containing a slash, e.g. "#p B3LYP/6-31G* pop=(mk,npa)".
func (b *metadataBuilder) parseRoute() {
	for _, tok := range strings.Fields(b.meta.Route) {
		if strings.HasPrefix(tok, "#") || strings.Contains(tok, "=") {
			continue
		}
		if cut := strings.IndexByte(tok, '/'); cut > 0 {
			b.meta.Method = tok[:cut]
			b.meta.BasisSet = tok[cut+1:]
			return
		}
	}
}

func (b *metadataBuilder) parseChargeMultiplicity(t string) error {
	fields := strings.Fields(t)
	// "Charge = 0 Multiplicity = 1"
	if len(fields) < 6 || fields[1] != "=" || fields[4] != "=" {
		return fmt.Errorf("malformed charge line %q", t)
	}
	charge, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("charge: %w", err)
	}
	mult, err := strconv.Atoi(fields[5])
	if err != nil {
		return fmt.Errorf("multiplicity: %w", err)
	}
	b.meta.Charge = charge
	b.meta.Multiplicity = mult
	return nil
}

// versionFromBanner extracts the revision token from a banner line such
// as "Gaussian 09:  ES64L-G09RevD.01 24-Apr-2013".
func versionFromBanner(t string) string {
	if colon := strings.IndexByte(t, ':'); colon >= 0 {
		rest := strings.Fields(t[colon+1:])
		if len(rest) > 0 {
			return rest[0]
		}
	}
	return strings.TrimSpace(t)
}

// parseClockTime reads "Job cpu time: 0 days 0 hours 1 minutes 23.0
// seconds." into a duration. Unparseable lines yield zero; the raw line
// carries no information a caller could act on beyond the duration.
func parseClockTime(t string) time.Duration {
	fields := strings.Fields(t)
	var total time.Duration
	for i := 0; i+1 < len(fields); i++ {
		unit := strings.TrimSuffix(strings.TrimSuffix(fields[i+1], "."), ",")
		var scale time.Duration
		switch unit {
		case "days", "day":
			scale = 24 * time.Hour
		case "hours", "hour":
			scale = time.Hour
		case "minutes", "minute":
			scale = time.Minute
		case "seconds", "second":
			scale = time.Second
		default:
			continue
		}
		v, err := ParseFloat(fields[i])
		if err != nil {
			continue
		}
		total += time.Duration(v * float64(scale))
	}
	return total
}
