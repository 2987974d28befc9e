package heuristic

import (
	"path/filepath"
	"strings"
	"time"

	"mediascrub/pkg/filehandler"
	"mediascrub/pkg/logger"
	"mediascrub/pkg/models"
)

// Analyzer produces hidden-data risk reports for files on disk. The entropy
// backend is chosen once at construction; the analysis itself never probes
// for capabilities.
type Analyzer struct {
	entropy EntropyComputer
	log     logger.Logger
}

// NewAnalyzer creates an Analyzer with the given entropy backend. Passing nil
// selects the histogram implementation.
func NewAnalyzer(entropy EntropyComputer, log logger.Logger) *Analyzer {
	if entropy == nil {
		entropy = HistogramEntropy{}
	}
	return &Analyzer{entropy: entropy, log: log}
}

// Analyze reads the file at path and classifies its hidden-data risk. Any
// read failure yields a report with RiskUnknown and the triggering error; the
// caller decides whether to continue a batch.
func (a *Analyzer) Analyze(path string) (*models.AnalysisReport, error) {
	start := time.Now()
	report := &models.AnalysisReport{
		Path:         path,
		RiskLevel:    models.RiskUnknown,
		AnalysisTime: start,
	}

	data, err := filehandler.ReadFileBytes(path)
	if err != nil {
		a.log.Emit(logger.ERROR, "Analysis failed for %s: %v\n", path, err)
		report.AnalysisDuration = time.Since(start)
		return report, err
	}

	report.ByteSize = int64(len(data))
	report.Entropy = a.entropy.Entropy(data)

	matches := ScanSignatures(data)
	for _, m := range matches {
		report.MatchedSignatures = append(report.MatchedSignatures, m.Hex)
	}

	ext := strings.ToLower(filepath.Ext(path))
	isJPEG := ext == ".jpg" || ext == ".jpeg"
	report.RiskLevel, report.Advisories = Classify(report.Entropy, matches, isJPEG)

	report.AnalysisDuration = time.Since(start)
	a.log.Emit(logger.DEBUG, "Analyzed %s: entropy=%.4f risk=%s\n", path, report.Entropy, report.RiskLevel)
	return report, nil
}
