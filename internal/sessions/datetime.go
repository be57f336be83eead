package sessions

import (
	"fmt"
	"time"
)

// Epoch is the sentinel used when an index entry has no usable timestamp
var Epoch = time.Unix(0, 0).UTC()

// Layouts without an offset are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseError reports a timestamp that is not extended ISO-8601
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseTimestamp parses an ISO-8601 timestamp such as "2026-01-19T01:51:54.536Z".
// A trailing Z is the same instant as a +00:00 offset.
func ParseTimestamp(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &ParseError{Value: s, Err: firstErr}
}

// parseTimestampOr returns fallback when s is empty or malformed
func parseTimestampOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return fallback
	}
	return t
}
