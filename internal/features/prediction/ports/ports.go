package ports

import (
	"context"

	"shipment-risk-assistant/internal/features/prediction/domain"
)

// PredictionEndpoint defines the interface for the external ML model that
// scores SLA breach likelihood for a batch of feature rows.
type PredictionEndpoint interface {
	// Predict submits the full feature batch in one call and returns the
	// positionally-aligned prediction and probability arrays.
	Predict(ctx context.Context, features []domain.FeatureRow) (domain.PredictionResult, error)
}

// MockSource defines the interface for the static prediction table used when
// the live model is disabled or failing.
type MockSource interface {
	// Load returns the mock table, or nil with no error when the source is
	// unavailable — the caller then skips mock predictions entirely.
	Load() (*domain.PredictionResult, error)
}
