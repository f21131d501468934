package domain

import (
	"strings"
	"time"
)

// TimeFrame is an absolute, inclusive datetime range resolved from a relative
// phrase. A nil Start and End means the frame imposes no constraint.
type TimeFrame struct {
	Start *time.Time
	End   *time.Time
}

// Bounded reports whether both ends of the frame are present.
func (t TimeFrame) Bounded() bool {
	return t.Start != nil && t.End != nil
}

// Contains reports whether the instant falls inside the frame, inclusive on
// both ends. Unbounded frames contain nothing.
func (t TimeFrame) Contains(at time.Time) bool {
	if !t.Bounded() {
		return false
	}
	return !at.Before(*t.Start) && !at.After(*t.End)
}

// ResolveTimeFrame maps a relative time phrase to an absolute range using the
// local wall-clock date. Matching is a case-insensitive substring check in a
// fixed order; unrecognized or blank phrases resolve to an unconstrained
// frame, never an error. No timezone normalization is performed.
func ResolveTimeFrame(phrase string) TimeFrame {
	return resolveTimeFrameAt(phrase, time.Now())
}

func resolveTimeFrameAt(phrase string, now time.Time) TimeFrame {
	if strings.TrimSpace(phrase) == "" {
		return TimeFrame{}
	}

	lower := strings.ToLower(phrase)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case strings.Contains(lower, "today"):
		return frame(today, today.AddDate(0, 0, 1).Add(-time.Second))
	case strings.Contains(lower, "tomorrow"):
		return frame(today.AddDate(0, 0, 1), today.AddDate(0, 0, 2).Add(-time.Second))
	case strings.Contains(lower, "yesterday"):
		return frame(today.AddDate(0, 0, -1), today.Add(-time.Second))
	case strings.Contains(lower, "this week"):
		// Weeks start on Sunday; time.Weekday already has Sunday = 0.
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return frame(start, start.AddDate(0, 0, 7).Add(-time.Second))
	case strings.Contains(lower, "next week"):
		start := today.AddDate(0, 0, 7-int(today.Weekday()))
		return frame(start, start.AddDate(0, 0, 7).Add(-time.Second))
	case strings.Contains(lower, "this month"):
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return frame(start, start.AddDate(0, 1, 0).Add(-time.Second))
	case strings.Contains(lower, "next month"):
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
		return frame(start, start.AddDate(0, 1, 0).Add(-time.Second))
	}

	return TimeFrame{}
}

func frame(start, end time.Time) TimeFrame {
	return TimeFrame{Start: &start, End: &end}
}

// datetimeLayouts are the formats accepted for shipment datetime strings,
// tried in order.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDatetime parses a shipment datetime string against the accepted
// layouts. Layouts without a zone are interpreted in local time so they
// compare correctly against resolved frames.
func ParseDatetime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range datetimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
