package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkmind/internal/models"
	"linkmind/internal/registry"
)

type stubExecutor struct {
	featureID string
	toolIDs   []string
	bookmarks []models.Bookmark

	outcomes map[string]registry.Outcome
	err      error
}

func (s *stubExecutor) ExecuteFeature(_ context.Context, featureID string, toolIDs []string, input registry.Input) (map[string]registry.Outcome, error) {
	s.featureID = featureID
	s.toolIDs = toolIDs
	s.bookmarks = input.Bookmarks
	return s.outcomes, s.err
}

func featureRunTask(t *testing.T, payload FeatureRunPayload) *asynq.Task {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(TypeFeatureRun, raw)
}

func TestHandleFeatureRun(t *testing.T) {
	executor := &stubExecutor{outcomes: map[string]registry.Outcome{
		"aiOptimizer": {ToolID: "aiOptimizer", Result: "done"},
	}}
	handler := HandleFeatureRun(executor)

	task := featureRunTask(t, FeatureRunPayload{
		RunID:     "run-1",
		FeatureID: "bookmarkOptimization",
		ToolIDs:   []string{"aiOptimizer"},
		Bookmarks: []models.Bookmark{{URL: "https://a.com"}},
	})

	require.NoError(t, handler(context.Background(), task))
	assert.Equal(t, "bookmarkOptimization", executor.featureID)
	assert.Equal(t, []string{"aiOptimizer"}, executor.toolIDs)
	require.Len(t, executor.bookmarks, 1)
}

func TestHandleFeatureRun_ToolErrorsDoNotFailTask(t *testing.T) {
	executor := &stubExecutor{outcomes: map[string]registry.Outcome{
		"aiOptimizer": {ToolID: "aiOptimizer", Err: errors.New("boom")},
	}}
	handler := HandleFeatureRun(executor)

	task := featureRunTask(t, FeatureRunPayload{RunID: "run-2", FeatureID: "bookmarkOptimization"})

	assert.NoError(t, handler(context.Background(), task))
}

func TestHandleFeatureRun_FeatureErrorFailsTask(t *testing.T) {
	executor := &stubExecutor{err: models.ErrFeatureDisabled}
	handler := HandleFeatureRun(executor)

	task := featureRunTask(t, FeatureRunPayload{RunID: "run-3", FeatureID: "bookmarkOptimization"})

	err := handler(context.Background(), task)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFeatureDisabled)
}

func TestHandleFeatureRun_BadPayload(t *testing.T) {
	handler := HandleFeatureRun(&stubExecutor{})

	err := handler(context.Background(), asynq.NewTask(TypeFeatureRun, []byte("{not json")))

	assert.Error(t, err)
}
