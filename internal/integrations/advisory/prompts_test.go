package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_Diagnostic(t *testing.T) {
	prompt, err := BuildPrompt(PromptDiagnostic, PromptParams{
		VehicleType: "Car",
		Brand:       "Maruti Suzuki",
		Model:       "Swift",
		Symptoms:    "squeaking brakes",
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, "Maruti Suzuki Swift")
	assert.Contains(t, prompt, "squeaking brakes")
}

func TestBuildPrompt_CostEstimateJoinsItems(t *testing.T) {
	prompt, err := BuildPrompt(PromptCostEstimate, PromptParams{
		VehicleType:  "Motorcycle",
		Brand:        "Yamaha",
		Model:        "MT-15",
		ServiceType:  "Regular Maintenance",
		ServiceItems: []string{"Oil Change", "Chain Lubrication"},
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, "Oil Change, Chain Lubrication")
}

func TestBuildPrompt_UnknownKind(t *testing.T) {
	_, err := BuildPrompt(PromptKind("horoscope"), PromptParams{})

	require.ErrorIs(t, err, ErrInternal)
}

func TestPromptKind_IsValid(t *testing.T) {
	assert.True(t, PromptDiagnostic.IsValid())
	assert.True(t, PromptMaintenance.IsValid())
	assert.True(t, PromptCostEstimate.IsValid())
	assert.True(t, PromptChat.IsValid())
	assert.False(t, PromptKind("horoscope").IsValid())
}
