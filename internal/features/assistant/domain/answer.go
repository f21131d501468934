package domain

import (
	"strings"

	shipmentdomain "shipment-risk-assistant/internal/features/shipments/domain"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	// IntentSla asks which shipments are likely to miss their SLA.
	IntentSla Intent = "sla"
	// IntentShipment asks for shipment records matching some filters.
	IntentShipment Intent = "shipment"
	// IntentGeneral is anything else; it gets a static help response.
	IntentGeneral Intent = "general"
)

// ParseIntent maps a classification token to an Intent. Anything the
// classifier did not clearly label is treated as general.
func ParseIntent(token string) Intent {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case string(IntentSla):
		return IntentSla
	case string(IntentShipment):
		return IntentShipment
	default:
		return IntentGeneral
	}
}

// QueryRequest is the request body accepted by the assistant endpoint.
type QueryRequest struct {
	// Message is the natural-language question about shipments.
	Message string `json:"message"`
}

// ShipmentRisk is one row of the per-shipment risk assessment produced for
// the shipment branch.
type ShipmentRisk struct {
	UpsShipmentNumber string `json:"upsShipmentNumber"`
	RiskLevel         string `json:"riskLevel"`
	RiskReason        string `json:"riskReason"`
}

// ShipmentAnswer is the response for the shipment branch: matching records
// plus a per-shipment risk assessment.
type ShipmentAnswer struct {
	Message        string                          `json:"message"`
	Shipments      []shipmentdomain.ShipmentRecord `json:"shipments"`
	RiskAssessment []ShipmentRisk                  `json:"riskAssessment"`
}

// SummaryAnswer is the response for the SLA branch: a narrative summary of
// which shipments are likely to breach.
type SummaryAnswer struct {
	Message string `json:"message"`
	Summary string `json:"summary"`
}

// Answer is the tagged result of a pipeline run; exactly one payload matching
// the Intent is populated.
type Answer struct {
	Intent   Intent
	Help     string
	Shipment *ShipmentAnswer
	Summary  *SummaryAnswer
}
