package classify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ytget/png-sorter/internal/detect"
	"github.com/ytget/png-sorter/internal/logging"
	"github.com/ytget/png-sorter/internal/model"
	"github.com/ytget/png-sorter/internal/platform"
)

// Operation names used in logs and errors
const (
	OpClassify     = "classify"
	OpPrepareDirs  = "prepare output directories"
	OpListInputDir = "list input directory"
)

// ErrNoInputDir is returned when no input directory was given
var ErrNoInputDir = errors.New("input directory is required")

// Service handles batch classification
type Service struct {
	logger   *zap.Logger
	inspect  func(path string) (bool, error)
	onUpdate func(*model.FileResult) // callback for UI updates
}

// NewService creates a new classification service
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger:  logger,
		inspect: detect.Inspect,
	}
}

// SetUpdateCallback sets the callback function for per-file updates
func (s *Service) SetUpdateCallback(callback func(*model.FileResult)) {
	s.onUpdate = callback
}

// Run classifies the PNG files of inputDir. Per-file failures are logged and
// recorded as skipped; only directory-level failures are returned. Earlier
// copies stay in place when the run stops early.
func (s *Service) Run(ctx context.Context, inputDir, transparentDir, opaqueDir string) (*model.Summary, error) {
	if inputDir == "" {
		return nil, ErrNoInputDir
	}
	if transparentDir == "" {
		transparentDir = model.ClassTransparent.DirName()
	}
	if opaqueDir == "" {
		opaqueDir = model.ClassOpaque.DirName()
	}

	summary := model.NewSummary(inputDir, transparentDir, opaqueDir)
	log := logging.WithOperation(s.logger, OpClassify, summary.RunID)
	defer summary.Finish()

	for _, dir := range []string{transparentDir, opaqueDir} {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return summary, logging.NewOperationError(OpPrepareDirs, summary.RunID, fmt.Errorf("%s: %w", dir, err))
		}
	}

	files, err := platform.ListPNGFiles(inputDir)
	if err != nil {
		return summary, logging.NewOperationError(OpListInputDir, summary.RunID, err)
	}

	log.Info("classification started",
		zap.String("input_dir", inputDir),
		zap.Int("files", len(files)))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			log.Warn("classification cancelled", zap.Int("processed", summary.Total()))
			return summary, err
		}

		result := s.processFile(log, path, transparentDir, opaqueDir)
		summary.Add(result)
		s.notifyUpdate(result)
	}

	summary.Finish()
	log.Info("classification finished",
		zap.Int("transparent", summary.Transparent),
		zap.Int("opaque", summary.Opaque),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("duration", summary.Duration()))

	return summary, nil
}

// processFile classifies and copies a single file
func (s *Service) processFile(log *zap.Logger, path, transparentDir, opaqueDir string) *model.FileResult {
	result := model.NewFileResult(path)

	transparent, err := s.inspect(path)
	if err != nil {
		log.Error("failed to process image", zap.String("file", result.Name), zap.Error(err))
		result.Err = err.Error()
		return result
	}

	result.Class = model.ClassOf(transparent)
	target := opaqueDir
	if transparent {
		target = transparentDir
	}

	output, err := platform.CopyFile(path, target)
	if err != nil {
		log.Error("failed to copy image", zap.String("file", result.Name), zap.Error(err))
		result.Class = ""
		result.Err = err.Error()
		return result
	}

	result.OutputPath = output
	log.Debug("image classified",
		zap.String("file", result.Name),
		zap.Stringer("class", result.Class))
	return result
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(result *model.FileResult) {
	if s.onUpdate != nil {
		s.onUpdate(result)
	}
}
