package model

import (
	"time"

	"github.com/google/uuid"
)

// Summary represents the outcome of one batch classification run
type Summary struct {
	RunID          string        `json:"run_id"`
	InputDir       string        `json:"input_dir"`
	TransparentDir string        `json:"transparent_dir"`
	OpaqueDir      string        `json:"opaque_dir"`
	Results        []*FileResult `json:"results"`
	Transparent    int           `json:"transparent"`
	Opaque         int           `json:"opaque"`
	Skipped        int           `json:"skipped"`
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     time.Time     `json:"finished_at"`
}

// NewSummary creates a new summary for a run over inputDir
func NewSummary(inputDir, transparentDir, opaqueDir string) *Summary {
	return &Summary{
		RunID:          uuid.NewString(),
		InputDir:       inputDir,
		TransparentDir: transparentDir,
		OpaqueDir:      opaqueDir,
		Results:        make([]*FileResult, 0),
		StartedAt:      time.Now(),
	}
}

// Add records a processed file and updates the counters
func (s *Summary) Add(result *FileResult) {
	s.Results = append(s.Results, result)
	switch {
	case result.Skipped():
		s.Skipped++
	case result.Class == ClassTransparent:
		s.Transparent++
	default:
		s.Opaque++
	}
}

// Finish marks the run as finished; later calls keep the first time
func (s *Summary) Finish() {
	if s.FinishedAt.IsZero() {
		s.FinishedAt = time.Now()
	}
}

// Total returns the number of PNG files seen, skipped ones included
func (s *Summary) Total() int {
	return len(s.Results)
}

// Failed returns all results that were skipped because of an error
func (s *Summary) Failed() []*FileResult {
	var failed []*FileResult
	for _, result := range s.Results {
		if result.Skipped() {
			failed = append(failed, result)
		}
	}
	return failed
}

// Duration returns how long the run took, zero while still running
func (s *Summary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
