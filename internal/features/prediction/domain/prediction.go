package domain

import "strings"

// FeatureRow is the per-shipment feature payload submitted to the ML
// endpoint. Pointer fields are omitted as JSON null when the source value was
// missing or unparsable, which the model treats as an absent feature.
type FeatureRow struct {
	ShipmentMode       string `json:"shipmentMode"`
	CarrierService     string `json:"carrierService"`
	OriginCity         string `json:"originCity"`
	DestinationCity    string `json:"destinationCity"`
	OriginCountry      string `json:"originCountry"`
	DestinationCountry string `json:"destinationCountry"`
	CreationHour       *int   `json:"creation_hour"`
	PickupHour         *int   `json:"pickup_hour"`
	EtaHour            *int   `json:"eta_hour"`
	DaysToPickup       *int   `json:"days_to_pickup"`
	DaysToEta          *int   `json:"days_to_eta"`
	AirRisk            *int   `json:"airRisk"`
	OceanRisk          *int   `json:"oceanRisk"`
	SurfaceRisk        *int   `json:"surfaceRisk"`
}

// PredictionResult holds the two positionally-aligned arrays returned by the
// prediction endpoint (or loaded from the mock table). Cells are kept loosely
// typed because the endpoint mixes booleans, strings, and numbers.
type PredictionResult struct {
	Prediction  []any `json:"prediction"`
	Probability []any `json:"probability"`
}

// CoerceBool interprets a prediction cell as a breach flag: native booleans
// pass through, "true"/"1" strings count as true, and numeric cells are true
// above 0.5. Everything else is false.
func CoerceBool(cell any) bool {
	switch v := cell.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true") || v == "1"
	case float64:
		return v > 0.5
	case int:
		return float64(v) > 0.5
	default:
		return false
	}
}

// CoerceProbability interprets a probability cell. Only numeric cells count;
// anything else is absent, not zero.
func CoerceProbability(cell any) *float64 {
	switch v := cell.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}
