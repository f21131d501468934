package domain

import (
	"strconv"
	"strings"
)

// FilterSet maps shipment field names to the string values extracted from a
// user message. Keys are matched case-sensitively against the known field
// list; absence of a key means the field is unconstrained.
type FilterSet map[string]string

// knownFields is the whitelist of shipment attributes a filter may target.
// Keys not in this list are discarded before any query is built.
var knownFields = map[string]bool{
	"upsShipmentNumber":          true,
	"shipmentMode":               true,
	"carrierService":             true,
	"shipmentCreationDatetime":   true,
	"pickupDatetime":             true,
	"deliveryETADatetime":        true,
	"actualDeliveryDatetime":     true,
	"milestoneStatus":            true,
	"deliveryStatus":             true,
	"isAtRisk":                   true,
	"atRiskSeverity":             true,
	"weatherMetar":               true,
	"weatherCondition":           true,
	"trafficCondition":           true,
	"originPortCode":             true,
	"destinationPortCode":        true,
	"flightIATA":                 true,
	"containerNumber":            true,
	"originCity":                 true,
	"destinationCity":            true,
	"originCountry":              true,
	"destinationCountry":         true,
	"weatherConditionRiskScore":  true,
	"trafficConditionRiskScore":  true,
	"portCongestionRiskScore":    true,
	"airportCongestionRiskScore": true,
	"flightDelayRiskScore":       true,
	"airRisk":                    true,
	"oceanRisk":                  true,
	"surfaceRisk":                true,
}

// IsKnownField reports whether name is a valid filter target.
func IsKnownField(name string) bool {
	return knownFields[name]
}

// KeepKnown returns a copy of the filter set containing only whitelisted
// fields with non-empty values.
func (f FilterSet) KeepKnown() FilterSet {
	kept := make(FilterSet, len(f))
	for field, value := range f {
		if knownFields[field] && value != "" {
			kept[field] = value
		}
	}
	return kept
}

// riskFieldSuffixes identify filter fields that hold numeric risk scores.
var riskFieldSuffixes = []string{"Risk", "RiskScore"}

// isRiskField reports whether the field carries a numeric risk score.
func isRiskField(name string) bool {
	for _, suffix := range riskFieldSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// RiskScore maps a qualitative risk level to its numeric score.
// Unrecognized levels return ok=false and the caller decides the default.
func RiskScore(level string) (score int, ok bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return 1, true
	case "medium":
		return 3, true
	case "high":
		return 5, true
	default:
		return 0, false
	}
}

// NormalizeRiskScores rewrites qualitative risk values ("low", "medium",
// "high") on risk-score fields to their numeric form, in place. Values that
// are already numeric or unrecognized are left untouched.
func (f FilterSet) NormalizeRiskScores() {
	for field, value := range f {
		if !isRiskField(field) {
			continue
		}
		if score, ok := RiskScore(value); ok {
			f[field] = strconv.Itoa(score)
		}
	}
}
