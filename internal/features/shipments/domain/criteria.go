package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString is a string that also accepts JSON booleans and numbers, since
// the completion service does not reliably quote scalar values.
type FlexString string

// UnmarshalJSON stores the textual form of whatever scalar was supplied.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(b)
	return nil
}

// FilterCriteria is the structured filter set extracted from a user message
// for the SLA branch. Empty fields are unconstrained. The datetime fields
// hold relative phrases ("today", "this week") resolved by ResolveTimeFrame.
type FilterCriteria struct {
	ShipmentMode             string     `json:"shipmentMode,omitempty"`
	OriginCity               string     `json:"originCity,omitempty"`
	DestinationCity          string     `json:"destinationCity,omitempty"`
	AtRisk                   FlexString `json:"atRisk,omitempty"`
	ShipmentCreationDateTime string     `json:"shipmentCreationDateTime,omitempty"`
	DeliveryETADateTime      string     `json:"deliveryETADateTime,omitempty"`
}

// AtRiskBool parses the atRisk filter as a boolean. ok is false when the
// filter is absent or unparsable, in which case the predicate is skipped.
func (c FilterCriteria) AtRiskBool() (value bool, ok bool) {
	if c.AtRisk == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(string(c.AtRisk))
	if err != nil {
		return false, false
	}
	return parsed, true
}
