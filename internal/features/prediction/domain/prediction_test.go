package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		name string
		cell any
		want bool
	}{
		{"native true", true, true},
		{"native false", false, false},
		{"string true", "true", true},
		{"string true mixed case", "True", true},
		{"string one", "1", true},
		{"string zero", "0", false},
		{"other string", "yes", false},
		{"number above threshold", 0.7, true},
		{"number at threshold", 0.5, false},
		{"number below threshold", 0.2, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceBool(tt.cell))
		})
	}
}

func TestCoerceProbability(t *testing.T) {
	p := CoerceProbability(0.42)
	require.NotNil(t, p)
	assert.Equal(t, 0.42, *p)

	assert.Nil(t, CoerceProbability("0.42"))
	assert.Nil(t, CoerceProbability(true))
	assert.Nil(t, CoerceProbability(nil))
}
