package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mediascrub/pkg/heuristic"
	"mediascrub/pkg/models"
)

func TestClassify_EntropyThresholds(t *testing.T) {
	tests := []struct {
		summary string
		entropy float64
		want    models.RiskLevel
	}{
		{summary: "zero entropy", entropy: 0.0, want: models.RiskLow},
		{summary: "well below medium", entropy: 3.2, want: models.RiskLow},
		{summary: "medium boundary is still low", entropy: 6.0, want: models.RiskLow},
		{summary: "just above medium boundary", entropy: 6.0001, want: models.RiskMedium},
		{summary: "middle of medium band", entropy: 7.0, want: models.RiskMedium},
		{summary: "high boundary is still medium", entropy: 7.5, want: models.RiskMedium},
		{summary: "just above high boundary", entropy: 7.5001, want: models.RiskHigh},
		{summary: "maximum entropy", entropy: 8.0, want: models.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			level, _ := heuristic.Classify(tt.entropy, nil, false)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestClassify_Advisories(t *testing.T) {
	_, lowAdvisories := heuristic.Classify(2.0, nil, false)
	assert.Empty(t, lowAdvisories)

	_, mediumAdvisories := heuristic.Classify(6.8, nil, false)
	assert.Equal(t, []string{"medium entropy - monitor for anomalies"}, mediumAdvisories)

	_, highAdvisories := heuristic.Classify(7.9, nil, false)
	assert.Equal(t, []string{"high entropy detected - possible hidden data"}, highAdvisories)
}

func TestClassify_RepeatedSignatureOverride(t *testing.T) {
	repeated := []heuristic.SignatureMatch{
		{Name: "png", Hex: "89504e470d0a1a0a", Count: 2},
	}

	// Signature override wins regardless of entropy
	for _, entropy := range []float64{0.0, 4.0, 6.5, 7.9} {
		level, advisories := heuristic.Classify(entropy, repeated, false)
		assert.Equal(t, models.RiskHigh, level, "entropy=%f", entropy)
		assert.Contains(t, advisories, "multiple file signatures detected")
	}
}

func TestClassify_SingleSignatureIsNotSuspicious(t *testing.T) {
	single := []heuristic.SignatureMatch{
		{Name: "jpeg", Hex: "ffd8ff", Count: 1},
	}

	level, advisories := heuristic.Classify(1.5, single, false)
	assert.Equal(t, models.RiskLow, level)
	assert.Empty(t, advisories)
}

func TestClassify_JPEGLSBAdvisory(t *testing.T) {
	// Above 7.0 on a JPEG the LSB advisory is appended regardless of level
	level, advisories := heuristic.Classify(7.2, nil, true)
	assert.Equal(t, models.RiskMedium, level)
	assert.Contains(t, advisories, "high-entropy JPEG - check least-significant-bit planes for steganography")

	// A non-JPEG at the same entropy gets no such advisory
	_, advisories = heuristic.Classify(7.2, nil, false)
	assert.NotContains(t, advisories, "high-entropy JPEG - check least-significant-bit planes for steganography")

	// Below the advisory threshold nothing is appended even for a JPEG
	_, advisories = heuristic.Classify(6.9, nil, true)
	assert.NotContains(t, advisories, "high-entropy JPEG - check least-significant-bit planes for steganography")
}
