package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	"shipment-risk-assistant/internal/features/prediction/domain"
)

// MockFileSource implements the MockSource interface over a static JSON file
// holding pre-recorded prediction and probability arrays.
type MockFileSource struct {
	path string
}

// NewMockFileSource creates a new MockFileSource reading from path.
func NewMockFileSource(path string) *MockFileSource {
	return &MockFileSource{path: path}
}

// Load reads and parses the mock table. A missing file is not an error; it
// means mock predictions are simply unavailable.
func (s *MockFileSource) Load() (*domain.PredictionResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read mock predictions: %w", err)
	}

	var table domain.PredictionResult
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse mock predictions: %w", err)
	}

	return &table, nil
}
