package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRiskScore verifies the qualitative-to-numeric mapping.
func TestRiskScore(t *testing.T) {
	cases := []struct {
		level string
		score int
		ok    bool
	}{
		{"low", 1, true},
		{"medium", 3, true},
		{"high", 5, true},
		{"LOW", 1, true},
		{"  High ", 5, true},
		{"critical", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		score, ok := RiskScore(tc.level)
		assert.Equal(t, tc.ok, ok, tc.level)
		assert.Equal(t, tc.score, score, tc.level)
	}
}

// TestFilterSet_KeepKnown verifies whitelist filtering is case-sensitive and
// drops empty values.
func TestFilterSet_KeepKnown(t *testing.T) {
	filters := FilterSet{
		"originCity":      "Tokyo",
		"OriginCity":      "Osaka", // wrong casing, not whitelisted
		"favouriteColour": "blue",
		"shipmentMode":    "",
	}

	kept := filters.KeepKnown()

	assert.Equal(t, FilterSet{"originCity": "Tokyo"}, kept)
}

// TestFilterSet_NormalizeRiskScores verifies risk words become numeric only
// on risk fields.
func TestFilterSet_NormalizeRiskScores(t *testing.T) {
	filters := FilterSet{
		"airRisk":                 "high",
		"portCongestionRiskScore": "medium",
		"oceanRisk":               "2",
		"originCity":              "low", // city named Low, not a risk field
	}

	filters.NormalizeRiskScores()

	assert.Equal(t, "5", filters["airRisk"])
	assert.Equal(t, "3", filters["portCongestionRiskScore"])
	assert.Equal(t, "2", filters["oceanRisk"])
	assert.Equal(t, "low", filters["originCity"])
}

// TestIsKnownField spot-checks a few whitelist entries.
func TestIsKnownField(t *testing.T) {
	assert.True(t, IsKnownField("upsShipmentNumber"))
	assert.True(t, IsKnownField("surfaceRisk"))
	assert.False(t, IsKnownField("UpsShipmentNumber"))
	assert.False(t, IsKnownField("password"))
}
