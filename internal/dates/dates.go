package dates

import (
	"strconv"
	"strings"
	"time"
)

// The snapshot mixes date representations: BR display dates, ISO dates with
// and without time-of-day, zulu timestamps from an old Firestore export.
// Parse accepts all of them; formatters render the two canonical outputs.

var fallbackLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"02/01/2006 15:04:05",
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z07:00",
}

var isoNoOffsetLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// Parse turns a heterogeneous date string into an instant. Empty, "none" and
// "null" (any case) parse to nothing; so does anything unrecognized. The
// second return reports success — no input ever produces an error.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "null":
		return time.Time{}, false
	}

	// DD/MM/YYYY with 1-2 digit day, 2 digit month, 4 digit year
	if parts := strings.Split(s, "/"); len(parts) == 3 &&
		len(parts[0]) >= 1 && len(parts[0]) <= 2 && len(parts[1]) == 2 && len(parts[2]) == 4 {
		d, errD := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		y, errY := strconv.Atoi(parts[2])
		if errD == nil && errM == nil && errY == nil {
			if t, ok := civil(y, m, d); ok {
				return t, true
			}
		}
	}

	// ISO / zulu timestamps
	if strings.Contains(s, "T") || strings.HasSuffix(s, "Z") {
		v := s
		if strings.HasSuffix(v, "Z") {
			v = strings.TrimSuffix(v, "Z") + "+00:00"
		}
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
		// retry without the offset suffix
		v = strings.SplitN(v, "+", 2)[0]
		v = strings.ReplaceAll(v, "Z", "")
		for _, layout := range isoNoOffsetLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// civil validates a calendar triple; time.Date would silently normalize
// 32/01 into february.
func civil(y, m, d int) (time.Time, bool) {
	if m < 1 || m > 12 || d < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || t.Month() != time.Month(m) || t.Year() != y {
		return time.Time{}, false
	}
	return t, true
}

// FormatBR renders DD/MM/YYYY, or "" when the input does not parse.
func FormatBR(s string) string {
	if t, ok := Parse(s); ok {
		return t.Format("02/01/2006")
	}
	return ""
}

// FormatISO renders YYYY-MM-DD, or "" when the input does not parse.
func FormatISO(s string) string {
	if t, ok := Parse(s); ok {
		return t.Format("2006-01-02")
	}
	return ""
}

// DiffDays is the whole-day difference b-a, clamped at zero. Unparseable
// endpoints count as zero.
func DiffDays(a, b string) int {
	ta, okA := Parse(a)
	tb, okB := Parse(b)
	if !okA || !okB {
		return 0
	}
	d := int(tb.Sub(ta).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
