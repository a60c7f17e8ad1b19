package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"linkmind/internal/registry"
)

// FeatureExecutor is the slice of the orchestrator the worker needs.
type FeatureExecutor interface {
	ExecuteFeature(ctx context.Context, featureID string, toolIDs []string, input registry.Input) (map[string]registry.Outcome, error)
}

// HandleFeatureRun returns the asynq handler for TypeFeatureRun tasks.
// Per-tool failures are already isolated inside the executor; only
// feature-level failures (disabled feature, bad config, bad payload) fail
// the task.
func HandleFeatureRun(executor FeatureExecutor) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload FeatureRunPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("decode feature run payload: %w", err)
		}

		outcomes, err := executor.ExecuteFeature(ctx, payload.FeatureID, payload.ToolIDs, registry.Input{
			Bookmarks: payload.Bookmarks,
		})
		if err != nil {
			return fmt.Errorf("run feature %s (run %s): %w", payload.FeatureID, payload.RunID, err)
		}

		failed := 0
		for _, outcome := range outcomes {
			if outcome.Err != nil {
				failed++
			}
		}
		log.WithFields(log.Fields{
			"run_id":  payload.RunID,
			"feature": payload.FeatureID,
			"tools":   len(outcomes),
			"failed":  failed,
		}).Info("feature run completed")

		return nil
	}
}

// RegisterHandlers wires the job handlers onto the mux.
func RegisterHandlers(mux *asynq.ServeMux, executor FeatureExecutor) {
	mux.HandleFunc(TypeFeatureRun, HandleFeatureRun(executor))
}
