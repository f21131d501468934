package domain

// ShipmentRecord represents a single shipment as returned by the shipment API.
// All source fields are optional strings; numeric and boolean attributes are
// transported as text and parsed where needed. The record is read-only to the
// pipeline except for the SLA prediction fields, which are derived here.
type ShipmentRecord struct {
	ID                         string `json:"id,omitempty"`
	UpsShipmentNumber          string `json:"upsShipmentNumber,omitempty"`
	ShipmentMode               string `json:"shipmentMode,omitempty"`
	CarrierService             string `json:"carrierService,omitempty"`
	ShipmentCreationDatetime   string `json:"shipmentCreationDatetime,omitempty"`
	PickupDatetime             string `json:"pickupDatetime,omitempty"`
	DeliveryETADatetime        string `json:"deliveryETADatetime,omitempty"`
	ActualDeliveryDatetime     string `json:"actualDeliveryDatetime,omitempty"`
	MilestoneStatus            string `json:"milestoneStatus,omitempty"`
	DeliveryStatus             string `json:"deliveryStatus,omitempty"`
	IsAtRisk                   string `json:"isAtRisk,omitempty"`
	AtRiskSeverity             string `json:"atRiskSeverity,omitempty"`
	WeatherMetar               string `json:"weatherMetar,omitempty"`
	WeatherCondition           string `json:"weatherCondition,omitempty"`
	TrafficCondition           string `json:"trafficCondition,omitempty"`
	OriginPortCode             string `json:"originPortCode,omitempty"`
	DestinationPortCode        string `json:"destinationPortCode,omitempty"`
	FlightIATA                 string `json:"flightIATA,omitempty"`
	ContainerNumber            string `json:"containerNumber,omitempty"`
	OriginCity                 string `json:"originCity,omitempty"`
	DestinationCity            string `json:"destinationCity,omitempty"`
	OriginCountry              string `json:"originCountry,omitempty"`
	DestinationCountry         string `json:"destinationCountry,omitempty"`
	WeatherConditionRiskScore  string `json:"weatherConditionRiskScore,omitempty"`
	TrafficConditionRiskScore  string `json:"trafficConditionRiskScore,omitempty"`
	PortCongestionRiskScore    string `json:"portCongestionRiskScore,omitempty"`
	AirportCongestionRiskScore string `json:"airportCongestionRiskScore,omitempty"`
	FlightDelayRiskScore       string `json:"flightDelayRiskScore,omitempty"`
	AirRisk                    string `json:"airRisk,omitempty"`
	OceanRisk                  string `json:"oceanRisk,omitempty"`
	SurfaceRisk                string `json:"surfaceRisk,omitempty"`

	// SlaBreach and SlaBreachProbability are derived by the SLA prediction
	// step; they are absent on records that were never run through it.
	SlaBreach            *bool    `json:"slaBreach,omitempty"`
	SlaBreachProbability *float64 `json:"slaBreachProbability,omitempty"`
}

// ShipmentResponse is the envelope returned by the shipment API.
// An empty or missing list is a valid, non-error result.
type ShipmentResponse struct {
	ShipmentList []ShipmentRecord `json:"shipmentList"`
	Success      bool             `json:"success"`
}
