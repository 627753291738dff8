package dto

import "time"

// TimestampLayout is the fixed human-readable rendering for all list/detail
// timestamps, e.g. "2025 Aug 31, 07:45 PM".
const TimestampLayout = "2006 Jan 02, 03:04 PM"

// FormatTimestamp renders t in the fixed API format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatTimestampPtr renders an optional timestamp, keeping nil as nil.
func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TimestampLayout)
	return &s
}
