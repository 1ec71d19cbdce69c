package classify

import (
	"context"

	"github.com/ytget/png-sorter/internal/model"
)

// Classifier defines the interface for the batch classification service.
type Classifier interface {
	SetUpdateCallback(func(*model.FileResult))

	// Run classifies every PNG in inputDir into the two output directories,
	// creating them when missing. Empty output paths use the default names.
	Run(ctx context.Context, inputDir, transparentDir, opaqueDir string) (*model.Summary, error)
}
