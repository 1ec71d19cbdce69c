package classify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ytget/png-sorter/internal/logging"
	"github.com/ytget/png-sorter/internal/model"
	"github.com/ytget/png-sorter/internal/testutil"
)

type fixture struct {
	input       string
	transparent string
	opaque      string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	input := filepath.Join(root, "in")
	require.NoError(t, os.Mkdir(input, 0755))

	testutil.WritePNG(t, input, "alpha.png", testutil.TranslucentRGBA(4, 4, 100))
	testutil.WritePNG(t, input, "palette.PNG", testutil.Paletted(4, 4, true))
	testutil.WritePNG(t, input, "solid.png", testutil.OpaqueRGBA(4, 4))
	testutil.WriteFile(t, input, "broken.png", testutil.Corrupt())
	testutil.WriteFile(t, input, "readme.txt", []byte("ignored"))

	return fixture{
		input:       input,
		transparent: filepath.Join(root, "out", "transparent"),
		opaque:      filepath.Join(root, "out", "opaque"),
	}
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestNewService(t *testing.T) {
	service := NewService(nil)

	if service.logger == nil {
		t.Error("Expected a no-op logger when nil is passed")
	}
	if service.inspect == nil {
		t.Error("Expected the default detector to be set")
	}
}

func TestRun_SortsFiles(t *testing.T) {
	fx := newFixture(t)
	service := NewService(zap.NewNop())

	summary, err := service.Run(context.Background(), fx.input, fx.transparent, fx.opaque)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha.png", "palette.PNG"}, listNames(t, fx.transparent))
	assert.Equal(t, []string{"solid.png"}, listNames(t, fx.opaque))
	assert.Equal(t, 2, summary.Transparent)
	assert.Equal(t, 1, summary.Opaque)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 4, summary.Total())
	assert.False(t, summary.FinishedAt.IsZero())
}

func TestRun_CopiesAreByteIdentical(t *testing.T) {
	fx := newFixture(t)
	_, err := NewService(nil).Run(context.Background(), fx.input, fx.transparent, fx.opaque)
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(fx.input, "solid.png"))
	require.NoError(t, err)
	dst, err := os.ReadFile(filepath.Join(fx.opaque, "solid.png"))
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

func TestRun_CorruptFileIsSkippedAndLogged(t *testing.T) {
	fx := newFixture(t)
	core, logs := observer.New(zap.ErrorLevel)
	service := NewService(zap.New(core))

	summary, err := service.Run(context.Background(), fx.input, fx.transparent, fx.opaque)
	require.NoError(t, err)

	assert.NotContains(t, listNames(t, fx.transparent), "broken.png")
	assert.NotContains(t, listNames(t, fx.opaque), "broken.png")

	failed := summary.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "broken.png", failed[0].Name)
	assert.Empty(t, failed[0].OutputPath)

	entries := logs.FilterMessage("failed to process image").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "broken.png", entries[0].ContextMap()["file"])
}

func TestRun_LogsSummaryWithDuration(t *testing.T) {
	fx := newFixture(t)
	core, logs := observer.New(zap.InfoLevel)
	service := NewService(zap.New(core))

	summary, err := service.Run(context.Background(), fx.input, fx.transparent, fx.opaque)
	require.NoError(t, err)
	assert.False(t, summary.FinishedAt.IsZero())

	entries := logs.FilterMessage("classification finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(summary.Transparent), fields["transparent"])
	assert.Equal(t, summary.Duration(), fields["duration"])
	assert.Equal(t, summary.RunID, fields["run_id"])
}

func TestRun_IsIdempotent(t *testing.T) {
	fx := newFixture(t)
	service := NewService(nil)

	_, err := service.Run(context.Background(), fx.input, fx.transparent, fx.opaque)
	require.NoError(t, err)
	firstT, firstO := listNames(t, fx.transparent), listNames(t, fx.opaque)
	firstBytes, _ := os.ReadFile(filepath.Join(fx.transparent, "alpha.png"))

	_, err = service.Run(context.Background(), fx.input, fx.transparent, fx.opaque)
	require.NoError(t, err)

	assert.Equal(t, firstT, listNames(t, fx.transparent))
	assert.Equal(t, firstO, listNames(t, fx.opaque))
	secondBytes, _ := os.ReadFile(filepath.Join(fx.transparent, "alpha.png"))
	assert.Equal(t, firstBytes, secondBytes)
}

func TestRun_DefaultOutputDirs(t *testing.T) {
	fx := newFixture(t)
	work := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	defer os.Chdir(prev)

	summary, err := NewService(nil).Run(context.Background(), fx.input, "", "")
	require.NoError(t, err)

	assert.Equal(t, model.DefaultTransparentDir, summary.TransparentDir)
	assert.Equal(t, model.DefaultOpaqueDir, summary.OpaqueDir)
	assert.DirExists(t, filepath.Join(work, "transparent"))
	assert.DirExists(t, filepath.Join(work, "opaque"))
}

func TestRun_MissingInputDir(t *testing.T) {
	root := t.TempDir()
	summary, err := NewService(nil).Run(context.Background(),
		filepath.Join(root, "missing"), filepath.Join(root, "t"), filepath.Join(root, "o"))

	require.Error(t, err)
	var opErr *logging.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, OpListInputDir, opErr.Operation)
	assert.Equal(t, summary.RunID, opErr.RunID)

	// Output directories are created before the input is listed
	assert.DirExists(t, filepath.Join(root, "t"))
}

func TestRun_EmptyInputDir(t *testing.T) {
	_, err := NewService(nil).Run(context.Background(), "", "t", "o")
	assert.ErrorIs(t, err, ErrNoInputDir)
}

func TestRun_OutputDirIsAFile(t *testing.T) {
	fx := newFixture(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := NewService(nil).Run(context.Background(), fx.input, filepath.Join(blocker, "sub"), fx.opaque)
	var opErr *logging.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, OpPrepareDirs, opErr.Operation)
}

func TestRun_Cancelled(t *testing.T) {
	fx := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewService(nil).Run(ctx, fx.input, fx.transparent, fx.opaque)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Total())
}

func TestRun_CopyFailureIsSkipped(t *testing.T) {
	fx := newFixture(t)
	service := NewService(nil)
	service.inspect = func(path string) (bool, error) {
		// Remove the file between detection and copy
		return false, os.Remove(path)
	}

	summary, err := service.Run(context.Background(), fx.input, fx.transparent, fx.opaque)
	require.NoError(t, err)
	assert.Equal(t, summary.Total(), summary.Skipped)
	for _, result := range summary.Results {
		assert.Empty(t, result.Class)
	}
}

func TestUpdateCallback(t *testing.T) {
	fx := newFixture(t)
	service := NewService(nil)

	var updates []*model.FileResult
	service.SetUpdateCallback(func(result *model.FileResult) {
		updates = append(updates, result)
	})

	summary, err := service.Run(context.Background(), fx.input, fx.transparent, fx.opaque)
	require.NoError(t, err)

	require.Len(t, updates, summary.Total())
	for i := range updates {
		assert.Same(t, summary.Results[i], updates[i])
	}
}
