package service

import (
	"strconv"
	"strings"

	"shipment-risk-assistant/internal/features/shipments/domain"
)

// MatchFrames holds the resolved time ranges used by the datetime predicates.
type MatchFrames struct {
	Creation domain.TimeFrame
	Delivery domain.TimeFrame
}

// ResolveFrames resolves the relative datetime phrases of the criteria into
// absolute frames anchored at the current wall clock.
func ResolveFrames(criteria domain.FilterCriteria) MatchFrames {
	return MatchFrames{
		Creation: domain.ResolveTimeFrame(criteria.ShipmentCreationDateTime),
		Delivery: domain.ResolveTimeFrame(criteria.DeliveryETADateTime),
	}
}

// Matches evaluates whether a shipment satisfies the filter criteria. Active
// predicates are always ANDed together. A predicate whose record field is
// missing or does not parse as the expected type is skipped rather than
// failing the whole match; this permissiveness on malformed optional fields
// is deliberate.
func Matches(record domain.ShipmentRecord, criteria domain.FilterCriteria, frames MatchFrames) bool {
	include := true

	if criteria.ShipmentMode != "" && record.ShipmentMode != "" {
		include = include && strings.EqualFold(record.ShipmentMode, criteria.ShipmentMode)
	}

	if include && criteria.OriginCity != "" && record.OriginCity != "" {
		include = include && containsFold(record.OriginCity, criteria.OriginCity)
	}

	if include && criteria.DestinationCity != "" && record.DestinationCity != "" {
		include = include && containsFold(record.DestinationCity, criteria.DestinationCity)
	}

	if include {
		if want, ok := criteria.AtRiskBool(); ok {
			if got, err := strconv.ParseBool(record.IsAtRisk); err == nil {
				include = got == want
			}
		}
	}

	if include && frames.Creation.Bounded() {
		if created, ok := domain.ParseDatetime(record.ShipmentCreationDatetime); ok {
			include = frames.Creation.Contains(created)
		}
	}

	if include && frames.Delivery.Bounded() {
		if eta, ok := domain.ParseDatetime(record.DeliveryETADatetime); ok {
			include = frames.Delivery.Contains(eta)
		}
	}

	return include
}

// Filter returns the shipments that satisfy the criteria.
func Filter(records []domain.ShipmentRecord, criteria domain.FilterCriteria, frames MatchFrames) []domain.ShipmentRecord {
	matched := make([]domain.ShipmentRecord, 0, len(records))
	for _, record := range records {
		if Matches(record, criteria, frames) {
			matched = append(matched, record)
		}
	}
	return matched
}

// containsFold reports case-insensitive substring containment.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
