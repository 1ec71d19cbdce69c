package model

import (
	"testing"
)

func TestNewFileResult(t *testing.T) {
	result := NewFileResult("/tmp/in/icon.png")

	if result.Name != "icon.png" {
		t.Errorf("Expected Name to be 'icon.png', got '%s'", result.Name)
	}

	if result.SourcePath != "/tmp/in/icon.png" {
		t.Errorf("Expected SourcePath to be '/tmp/in/icon.png', got '%s'", result.SourcePath)
	}

	if result.ProcessedAt.IsZero() {
		t.Error("Expected ProcessedAt to be set")
	}

	if result.Skipped() {
		t.Error("New result should not be skipped")
	}
}

func TestFileResult_Skipped(t *testing.T) {
	result := &FileResult{Name: "broken.png", Err: "png: invalid format"}
	if !result.Skipped() {
		t.Error("Result with an error should be skipped")
	}
}
