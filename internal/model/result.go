package model

import (
	"path/filepath"
	"time"
)

// FileResult represents the outcome of processing a single PNG file
type FileResult struct {
	Name        string    // base name of the source file
	SourcePath  string    // path of the file in the input directory
	Class       Class     // classification, empty when skipped
	OutputPath  string    // path of the copy, empty when skipped
	Err         string    // decode or copy error if the file was skipped
	ProcessedAt time.Time // when the file was handled
}

// NewFileResult creates a result for the file at path
func NewFileResult(path string) *FileResult {
	return &FileResult{
		Name:        filepath.Base(path),
		SourcePath:  path,
		ProcessedAt: time.Now(),
	}
}

// Skipped reports whether the file was left out of both output directories
func (r *FileResult) Skipped() bool {
	return r.Err != ""
}
