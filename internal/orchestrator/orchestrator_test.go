package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkmind/internal/config"
	"linkmind/internal/models"
	"linkmind/internal/registry"
)

type recordingTool struct {
	id    string
	calls *[]string
}

func (t *recordingTool) ID() string   { return t.id }
func (t *recordingTool) Name() string { return t.id }

func (t *recordingTool) Execute(context.Context, registry.Input, config.ToolSettings) (any, error) {
	*t.calls = append(*t.calls, t.id)
	return t.id + " done", nil
}

func loaderFor(t *testing.T, contents string) *config.Loader {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644)
	require.NoError(t, err)
	return config.NewLoader(dir)
}

func TestExecuteFeature_DisabledFlag(t *testing.T) {
	loader := loaderFor(t, `
feature_flags:
  bookmarkValidation: false
`)
	exec := New(loader, registry.New())

	_, err := exec.ExecuteFeature(context.Background(), FeatureBookmarkValidation, FeatureTools(FeatureBookmarkValidation), registry.Input{})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFeatureDisabled)
}

func TestExecuteFeature_AbsentFlagRuns(t *testing.T) {
	var calls []string
	reg := registry.New()
	reg.Register(&recordingTool{id: config.ToolBookmarkValidator, calls: &calls})
	loader := loaderFor(t, `
tools:
  - id: bookmarkValidator
    enabled: true
`)
	exec := New(loader, reg)

	outcomes, err := exec.ExecuteFeature(context.Background(), FeatureBookmarkValidation, FeatureTools(FeatureBookmarkValidation), registry.Input{})

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "bookmarkValidator done", outcomes[config.ToolBookmarkValidator].Result)
	assert.Equal(t, []string{config.ToolBookmarkValidator}, calls)
}

func TestExecuteFeature_ReloadsConfigEachRun(t *testing.T) {
	var calls []string
	reg := registry.New()
	reg.Register(&recordingTool{id: config.ToolBookmarkValidator, calls: &calls})

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tools:
  - id: bookmarkValidator
    enabled: true
`), 0o644))
	exec := New(config.NewLoader(dir), reg)

	_, err := exec.ExecuteFeature(context.Background(), FeatureBookmarkValidation, FeatureTools(FeatureBookmarkValidation), registry.Input{})
	require.NoError(t, err)
	assert.Len(t, calls, 1)

	// Disable the tool on disk; the next run must pick it up without any
	// restart or loader rebuild.
	require.NoError(t, os.WriteFile(path, []byte(`
tools:
  - id: bookmarkValidator
    enabled: false
`), 0o644))

	outcomes, err := exec.ExecuteFeature(context.Background(), FeatureBookmarkValidation, FeatureTools(FeatureBookmarkValidation), registry.Input{})
	require.NoError(t, err)
	assert.Empty(t, outcomes)
	assert.Len(t, calls, 1)
}

func TestExecuteTool_GatingErrorsSurface(t *testing.T) {
	loader := loaderFor(t, `
tools:
  - id: bookmarkValidator
    enabled: false
`)
	reg := registry.New()
	var calls []string
	reg.Register(&recordingTool{id: config.ToolBookmarkValidator, calls: &calls})
	exec := New(loader, reg)

	_, err := exec.ExecuteTool(context.Background(), config.ToolBookmarkValidator, registry.Input{})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrToolDisabled)
	assert.Empty(t, calls)
}

func TestFeatureTools_KnownFeatures(t *testing.T) {
	assert.Equal(t, []string{config.ToolBookmarkValidator}, FeatureTools(FeatureBookmarkValidation))
	assert.Equal(t,
		[]string{config.ToolBookmarkImporter, config.ToolBookmarkValidator, config.ToolAIOptimizer},
		FeatureTools(FeatureBookmarkImport))
}

func TestFeatureTools_UnknownFeatureIsEmpty(t *testing.T) {
	tools := FeatureTools("noSuchFeature")
	assert.NotNil(t, tools)
	assert.Empty(t, tools)
}

func TestFeatureTools_ReturnsCopy(t *testing.T) {
	tools := FeatureTools(FeatureBookmarkValidation)
	tools[0] = "mutated"

	assert.Equal(t, []string{config.ToolBookmarkValidator}, FeatureTools(FeatureBookmarkValidation))
}

func TestFeatures_ListsAllKnownIDs(t *testing.T) {
	features := Features()

	assert.ElementsMatch(t, []string{
		FeatureBookmarkManagement,
		FeatureBookmarkImport,
		FeatureBookmarkOptimization,
		FeatureBookmarkValidation,
	}, features)
}
