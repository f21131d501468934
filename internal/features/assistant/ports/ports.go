package ports

import (
	"context"

	shipmentdomain "shipment-risk-assistant/internal/features/shipments/domain"
)

// TextCompletion defines the interface for the external text-completion
// service. Prompts may reference variables as {{$name}}; implementations
// substitute them before sending.
type TextCompletion interface {
	Complete(ctx context.Context, prompt string, variables map[string]string) (string, error)
}

// SlaPredictor defines the interface for annotating shipments with SLA
// breach predictions.
type SlaPredictor interface {
	Predict(ctx context.Context, shipments []shipmentdomain.ShipmentRecord) ([]shipmentdomain.ShipmentRecord, error)
}
