package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shipment-risk-assistant/internal/core/httpclient"
	"shipment-risk-assistant/internal/core/logger"
	"shipment-risk-assistant/internal/features/shipments/domain"

	"go.uber.org/zap"
)

// ShipmentAPIAdapter implements the ShipmentStore interface against the
// shipment API, which accepts either a fetch-everything payload or a raw
// query-text payload.
type ShipmentAPIAdapter struct {
	client *http.Client
	apiURL string
	logger *zap.Logger
}

// NewShipmentAPIAdapter creates a new ShipmentAPIAdapter.
func NewShipmentAPIAdapter(apiURL string, timeout time.Duration) *ShipmentAPIAdapter {
	return &ShipmentAPIAdapter{
		client: httpclient.NewClient(timeout),
		apiURL: apiURL,
		logger: logger.Get(),
	}
}

// shipmentRequest is the payload shape the shipment API expects.
type shipmentRequest struct {
	Status string `json:"status"`
	Query  string `json:"query,omitempty"`
}

// FetchAll retrieves every shipment from the API.
func (a *ShipmentAPIAdapter) FetchAll(ctx context.Context) ([]domain.ShipmentRecord, error) {
	return a.post(ctx, shipmentRequest{Status: "all"})
}

// FetchByQuery retrieves shipments matching the raw query text.
func (a *ShipmentAPIAdapter) FetchByQuery(ctx context.Context, query string) ([]domain.ShipmentRecord, error) {
	return a.post(ctx, shipmentRequest{Status: "dynamic", Query: query})
}

func (a *ShipmentAPIAdapter) post(ctx context.Context, payload shipmentRequest) ([]domain.ShipmentRecord, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shipment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create shipment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		if httpclient.IsTimeout(err) {
			return nil, fmt.Errorf("shipment api: %w", httpclient.ErrTimeout)
		}
		return nil, fmt.Errorf("shipment api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shipment api returned status: %d", resp.StatusCode)
	}

	var shipmentResp domain.ShipmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&shipmentResp); err != nil {
		return nil, fmt.Errorf("failed to decode shipment response: %w", err)
	}

	if len(shipmentResp.ShipmentList) == 0 {
		a.logger.Warn("No shipments found in response", zap.String("status", payload.Status))
		return []domain.ShipmentRecord{}, nil
	}

	return shipmentResp.ShipmentList, nil
}
