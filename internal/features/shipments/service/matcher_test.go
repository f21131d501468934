package service

import (
	"testing"
	"time"

	"shipment-risk-assistant/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
)

func boundedFrame(start, end time.Time) domain.TimeFrame {
	return domain.TimeFrame{Start: &start, End: &end}
}

// TestMatches_OriginCitySubstring verifies case-insensitive substring
// containment for city filters.
func TestMatches_OriginCitySubstring(t *testing.T) {
	criteria := domain.FilterCriteria{OriginCity: "yo"}

	assert.True(t, Matches(domain.ShipmentRecord{OriginCity: "Tokyo"}, criteria, MatchFrames{}))
	assert.False(t, Matches(domain.ShipmentRecord{OriginCity: "Osaka"}, criteria, MatchFrames{}))
}

// TestMatches_ShipmentModeEquality verifies exact case-insensitive mode match.
func TestMatches_ShipmentModeEquality(t *testing.T) {
	criteria := domain.FilterCriteria{ShipmentMode: "air"}

	assert.True(t, Matches(domain.ShipmentRecord{ShipmentMode: "Air"}, criteria, MatchFrames{}))
	assert.False(t, Matches(domain.ShipmentRecord{ShipmentMode: "Airfreight"}, criteria, MatchFrames{}))
}

// TestMatches_MissingFieldSkipsPredicate verifies a record without the
// filtered field is not excluded by that predicate.
func TestMatches_MissingFieldSkipsPredicate(t *testing.T) {
	criteria := domain.FilterCriteria{OriginCity: "Tokyo"}

	assert.True(t, Matches(domain.ShipmentRecord{}, criteria, MatchFrames{}))
}

// TestMatches_AtRisk verifies boolean matching and the unparsable-skip rule.
func TestMatches_AtRisk(t *testing.T) {
	atRisk := domain.FilterCriteria{AtRisk: "true"}

	assert.True(t, Matches(domain.ShipmentRecord{IsAtRisk: "true"}, atRisk, MatchFrames{}))
	assert.False(t, Matches(domain.ShipmentRecord{IsAtRisk: "false"}, atRisk, MatchFrames{}))
	// Unparsable record value skips the predicate instead of excluding.
	assert.True(t, Matches(domain.ShipmentRecord{IsAtRisk: "unknown"}, atRisk, MatchFrames{}))
	// Unparsable filter value skips the predicate entirely.
	assert.True(t, Matches(domain.ShipmentRecord{IsAtRisk: "false"}, domain.FilterCriteria{AtRisk: "maybe"}, MatchFrames{}))
}

// TestMatches_DeliveryFrame verifies the inclusive range check on the ETA.
func TestMatches_DeliveryFrame(t *testing.T) {
	frames := MatchFrames{
		Delivery: boundedFrame(
			time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
			time.Date(2024, 3, 16, 23, 59, 59, 0, time.Local),
		),
	}

	inside := domain.ShipmentRecord{DeliveryETADatetime: "2024-03-12T10:00:00"}
	outside := domain.ShipmentRecord{DeliveryETADatetime: "2024-03-20T10:00:00"}
	unparsable := domain.ShipmentRecord{DeliveryETADatetime: "when it gets there"}

	assert.True(t, Matches(inside, domain.FilterCriteria{}, frames))
	assert.False(t, Matches(outside, domain.FilterCriteria{}, frames))
	// Unparsable dates skip the predicate, they do not exclude the record.
	assert.True(t, Matches(unparsable, domain.FilterCriteria{}, frames))
}

// TestMatches_UnboundedFrameSkipsPredicate verifies half-open frames impose
// no constraint.
func TestMatches_UnboundedFrameSkipsPredicate(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	frames := MatchFrames{Creation: domain.TimeFrame{Start: &start}}

	record := domain.ShipmentRecord{ShipmentCreationDatetime: "2020-01-01T00:00:00"}

	assert.True(t, Matches(record, domain.FilterCriteria{}, frames))
}

// TestMatches_Conjunctive verifies all active predicates must hold.
func TestMatches_Conjunctive(t *testing.T) {
	criteria := domain.FilterCriteria{ShipmentMode: "Air", DestinationCity: "Chicago"}

	match := domain.ShipmentRecord{ShipmentMode: "Air", DestinationCity: "Chicago"}
	wrongMode := domain.ShipmentRecord{ShipmentMode: "Ocean", DestinationCity: "Chicago"}

	assert.True(t, Matches(match, criteria, MatchFrames{}))
	assert.False(t, Matches(wrongMode, criteria, MatchFrames{}))
}

// TestFilter verifies only matching records survive.
func TestFilter(t *testing.T) {
	records := []domain.ShipmentRecord{
		{UpsShipmentNumber: "1Z1", DestinationCity: "Chicago"},
		{UpsShipmentNumber: "1Z2", DestinationCity: "Dallas"},
		{UpsShipmentNumber: "1Z3", DestinationCity: "Chicago Heights"},
	}

	matched := Filter(records, domain.FilterCriteria{DestinationCity: "Chicago"}, MatchFrames{})

	assert.Len(t, matched, 2)
	assert.Equal(t, "1Z1", matched[0].UpsShipmentNumber)
	assert.Equal(t, "1Z3", matched[1].UpsShipmentNumber)
}

// TestResolveFrames verifies each criteria phrase lands on its own frame.
func TestResolveFrames(t *testing.T) {
	frames := ResolveFrames(domain.FilterCriteria{ShipmentCreationDateTime: "today"})
	assert.True(t, frames.Creation.Bounded())
	assert.False(t, frames.Delivery.Bounded())
	assert.True(t, frames.Creation.Contains(time.Now()))

	frames = ResolveFrames(domain.FilterCriteria{DeliveryETADateTime: "this week"})
	assert.False(t, frames.Creation.Bounded())
	assert.True(t, frames.Delivery.Bounded())
	assert.True(t, frames.Delivery.Contains(time.Now()))
}
