package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shipment-risk-assistant/internal/core/httpclient"
	"shipment-risk-assistant/internal/features/prediction/domain"
)

// MLEndpointAdapter implements the PredictionEndpoint interface against an
// HTTP model endpoint authenticated with a bearer credential.
type MLEndpointAdapter struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewMLEndpointAdapter creates a new MLEndpointAdapter.
func NewMLEndpointAdapter(endpoint, apiKey string, timeout time.Duration) *MLEndpointAdapter {
	return &MLEndpointAdapter{
		client:   httpclient.NewClient(timeout),
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// Predict posts the feature batch as {"data": [...]} and decodes the
// prediction/probability arrays from the response.
func (a *MLEndpointAdapter) Predict(ctx context.Context, features []domain.FeatureRow) (domain.PredictionResult, error) {
	payload := struct {
		Data []domain.FeatureRow `json:"data"`
	}{Data: features}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("failed to encode prediction payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("failed to create prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		if httpclient.IsTimeout(err) {
			return domain.PredictionResult{}, fmt.Errorf("prediction endpoint: %w", httpclient.ErrTimeout)
		}
		return domain.PredictionResult{}, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.PredictionResult{}, fmt.Errorf("prediction endpoint returned status: %d", resp.StatusCode)
	}

	var result domain.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("failed to decode prediction response: %w", err)
	}

	return result, nil
}
