package repository

import (
	"fmt"
	"time"
)

// timestampLayout is how timestamps are written: ISO-8601 with the local offset.
const timestampLayout = time.RFC3339Nano

// naiveLayouts accept ISO-8601 strings without an offset, as written by the
// legacy desktop app. They are interpreted in the local zone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t.Local(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
