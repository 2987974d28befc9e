package models

import (
	"time"
)

// RiskLevel classifies how likely a file is to carry hidden data
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskUnknown
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// AnalysisReport contains the results of a hidden-data heuristic analysis.
// A report is created fresh per analysis call and never mutated after it
// is returned.
type AnalysisReport struct {
	Path              string        `json:"path"`
	ByteSize          int64         `json:"byteSize"`
	Entropy           float64       `json:"entropy"` // bits per byte, 0.0-8.0
	MatchedSignatures []string      `json:"matchedSignatures"`
	RiskLevel         RiskLevel     `json:"riskLevel"`
	Advisories        []string      `json:"advisories"`
	AnalysisTime      time.Time     `json:"analysisTime"`
	AnalysisDuration  time.Duration `json:"analysisDuration"`
}

// AddAdvisory appends an advisory message to the report
func (r *AnalysisReport) AddAdvisory(message string) {
	r.Advisories = append(r.Advisories, message)
}

// CleaningResult contains the outcome of cleaning a single file
type CleaningResult struct {
	Success      bool            `json:"success"`
	OriginalPath string          `json:"originalPath"`
	FinalPath    string          `json:"finalPath"`
	Operations   []string        `json:"operations"`
	Errors       []string        `json:"errors"`
	Report       *AnalysisReport `json:"report,omitempty"`
}

// AddOperation records a completed transform step
func (r *CleaningResult) AddOperation(op string) {
	r.Operations = append(r.Operations, op)
}

// AddError records a per-stage failure without aborting the result
func (r *CleaningResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// BatchSummary aggregates the results of a directory run
type BatchSummary struct {
	TotalFiles     int              `json:"totalFiles"`
	ProcessedFiles int              `json:"processedFiles"`
	FailedFiles    int              `json:"failedFiles"`
	FileResults    []CleaningResult `json:"fileResults"`
}

// Record tallies a single file result into the summary
func (s *BatchSummary) Record(result CleaningResult) {
	s.TotalFiles++
	s.FileResults = append(s.FileResults, result)
	if result.Success {
		s.ProcessedFiles++
	} else {
		s.FailedFiles++
	}
}
