package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anchor is a Wednesday so week arithmetic is non-trivial.
var anchor = time.Date(2024, time.March, 13, 15, 42, 7, 0, time.Local)

// TestResolveTimeFrame_Today verifies the range covers midnight to one second
// before the next midnight.
func TestResolveTimeFrame_Today(t *testing.T) {
	frame := resolveTimeFrameAt("today", anchor)

	require.True(t, frame.Bounded())
	assert.Equal(t, time.Date(2024, time.March, 13, 0, 0, 0, 0, time.Local), *frame.Start)
	assert.Equal(t, time.Date(2024, time.March, 13, 23, 59, 59, 0, time.Local), *frame.End)
}

// TestResolveTimeFrame_Tomorrow verifies the next-day range.
func TestResolveTimeFrame_Tomorrow(t *testing.T) {
	frame := resolveTimeFrameAt("tomorrow", anchor)

	require.True(t, frame.Bounded())
	assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.Local), *frame.Start)
	assert.Equal(t, time.Date(2024, time.March, 14, 23, 59, 59, 0, time.Local), *frame.End)
}

// TestResolveTimeFrame_Yesterday verifies the previous-day range ends one
// second before today's midnight.
func TestResolveTimeFrame_Yesterday(t *testing.T) {
	frame := resolveTimeFrameAt("yesterday", anchor)

	require.True(t, frame.Bounded())
	assert.Equal(t, time.Date(2024, time.March, 12, 0, 0, 0, 0, time.Local), *frame.Start)
	assert.Equal(t, time.Date(2024, time.March, 12, 23, 59, 59, 0, time.Local), *frame.End)
}

// TestResolveTimeFrame_ThisWeek verifies the Sunday-to-Saturday window around
// the anchor date.
func TestResolveTimeFrame_ThisWeek(t *testing.T) {
	frame := resolveTimeFrameAt("this week", anchor)

	require.True(t, frame.Bounded())
	// 2024-03-13 is a Wednesday; the week starts Sunday 2024-03-10.
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local), *frame.Start)
	assert.Equal(t, time.Date(2024, time.March, 16, 23, 59, 59, 0, time.Local), *frame.End)
}

// TestResolveTimeFrame_NextWeek verifies the following Sunday-to-Saturday window.
func TestResolveTimeFrame_NextWeek(t *testing.T) {
	frame := resolveTimeFrameAt("next week", anchor)

	require.True(t, frame.Bounded())
	assert.Equal(t, time.Date(2024, time.March, 17, 0, 0, 0, 0, time.Local), *frame.Start)
	assert.Equal(t, time.Date(2024, time.March, 23, 23, 59, 59, 0, time.Local), *frame.End)
}

// TestResolveTimeFrame_ThisMonth verifies first-of-month to one second before
// the next month.
func TestResolveTimeFrame_ThisMonth(t *testing.T) {
	frame := resolveTimeFrameAt("this month", anchor)

	require.True(t, frame.Bounded())
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local), *frame.Start)
	assert.Equal(t, time.Date(2024, time.March, 31, 23, 59, 59, 0, time.Local), *frame.End)
}

// TestResolveTimeFrame_NextMonth verifies the following month's range.
func TestResolveTimeFrame_NextMonth(t *testing.T) {
	frame := resolveTimeFrameAt("next month", anchor)

	require.True(t, frame.Bounded())
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local), *frame.Start)
	assert.Equal(t, time.Date(2024, time.April, 30, 23, 59, 59, 0, time.Local), *frame.End)
}

// TestResolveTimeFrame_SubstringAndCase verifies phrases are matched as
// case-insensitive substrings inside longer text.
func TestResolveTimeFrame_SubstringAndCase(t *testing.T) {
	frame := resolveTimeFrameAt("shipments due THIS WEEK please", anchor)
	require.True(t, frame.Bounded())
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local), *frame.Start)
}

// TestResolveTimeFrame_Unrecognized verifies unknown phrases yield an
// unconstrained frame, not an error.
func TestResolveTimeFrame_Unrecognized(t *testing.T) {
	for _, phrase := range []string{"last quarter", "in two days", "soon", "2024-03-13"} {
		frame := resolveTimeFrameAt(phrase, anchor)
		assert.Nil(t, frame.Start, phrase)
		assert.Nil(t, frame.End, phrase)
	}
}

// TestResolveTimeFrame_Blank verifies blank input yields an unconstrained frame.
func TestResolveTimeFrame_Blank(t *testing.T) {
	for _, phrase := range []string{"", "   ", "\t"} {
		frame := resolveTimeFrameAt(phrase, anchor)
		assert.False(t, frame.Bounded())
	}
}

// TestTimeFrame_Contains verifies inclusive bounds on both ends.
func TestTimeFrame_Contains(t *testing.T) {
	frame := resolveTimeFrameAt("today", anchor)

	assert.True(t, frame.Contains(*frame.Start))
	assert.True(t, frame.Contains(*frame.End))
	assert.False(t, frame.Contains(frame.Start.Add(-time.Second)))
	assert.False(t, frame.Contains(frame.End.Add(time.Second)))
	assert.False(t, TimeFrame{}.Contains(anchor))
}

// TestParseDatetime covers the accepted layouts and failure modes.
func TestParseDatetime(t *testing.T) {
	parsed, ok := ParseDatetime("2024-03-13T08:30:00")
	require.True(t, ok)
	assert.Equal(t, 8, parsed.Hour())

	parsed, ok = ParseDatetime("2024-03-13 08:30:00")
	require.True(t, ok)
	assert.Equal(t, 30, parsed.Minute())

	parsed, ok = ParseDatetime("2024-03-13")
	require.True(t, ok)
	assert.Equal(t, 13, parsed.Day())

	_, ok = ParseDatetime("not a date")
	assert.False(t, ok)

	_, ok = ParseDatetime("")
	assert.False(t, ok)
}
