package heuristic

import (
	"mediascrub/pkg/models"
)

// Classification thresholds. A repeated file signature forces HIGH regardless
// of where the entropy landed.
const (
	highEntropyThreshold   = 7.5
	mediumEntropyThreshold = 6.0
	jpegLSBAdvisoryEntropy = 7.0
)

const (
	adviceHighEntropy    = "high entropy detected - possible hidden data"
	adviceMediumEntropy  = "medium entropy - monitor for anomalies"
	adviceRepeatedMagic  = "multiple file signatures detected"
	adviceJPEGLSBSuspect = "high-entropy JPEG - check least-significant-bit planes for steganography"
)

// Classify maps an entropy estimate and the signature scan outcome to a risk
// level with advisory messages. It is a pure function: the same inputs always
// produce the same classification.
//
// isJPEG reflects the file extension of the analyzed path; a JPEG above the
// LSB advisory threshold gets an extra advisory independent of its level.
func Classify(entropy float64, matches []SignatureMatch, isJPEG bool) (models.RiskLevel, []string) {
	var advisories []string

	level := models.RiskLow
	switch {
	case entropy > highEntropyThreshold:
		level = models.RiskHigh
		advisories = append(advisories, adviceHighEntropy)
	case entropy > mediumEntropyThreshold:
		level = models.RiskMedium
		advisories = append(advisories, adviceMediumEntropy)
	}

	for _, m := range matches {
		if m.Repeated() {
			level = models.RiskHigh
			advisories = append(advisories, adviceRepeatedMagic)
			break
		}
	}

	if isJPEG && entropy > jpegLSBAdvisoryEntropy {
		advisories = append(advisories, adviceJPEGLSBSuspect)
	}

	return level, advisories
}
