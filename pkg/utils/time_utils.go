package utils

import "time"

// Epoch seconds are the storage format for every timestamp column.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds returns zero time for t<=0 to let callers decide how to
// render an unset value.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
