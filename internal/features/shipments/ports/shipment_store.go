package ports

import (
	"context"

	"shipment-risk-assistant/internal/features/shipments/domain"
)

// ShipmentStore defines the interface for retrieving shipment records from
// the external shipment API. This is a Secondary Port (Driven Port).
type ShipmentStore interface {
	// FetchAll retrieves every shipment the API will return.
	FetchAll(ctx context.Context) ([]domain.ShipmentRecord, error)

	// FetchByQuery retrieves shipments matching a raw query-text payload
	// produced by the query builder.
	FetchByQuery(ctx context.Context, query string) ([]domain.ShipmentRecord, error)
}
