// Package jobs moves orchestrated feature runs onto the asynq queue so
// large batches run outside the caller's request path.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"linkmind/internal/models"
)

// FeatureRunPayload is the task body for TypeFeatureRun.
type FeatureRunPayload struct {
	RunID     string            `json:"run_id"`
	FeatureID string            `json:"feature_id"`
	ToolIDs   []string          `json:"tool_ids"`
	Bookmarks []models.Bookmark `json:"bookmarks"`
}

// JobClient enqueues background feature runs.
type JobClient interface {
	EnqueueFeatureRun(ctx context.Context, featureID string, toolIDs []string, bookmarks []models.Bookmark) (*models.FeatureRun, error)
	Close() error
}

// AsynqJobClient is the asynq-backed JobClient.
type AsynqJobClient struct {
	client *asynq.Client
}

var _ JobClient = (*AsynqJobClient)(nil)

func NewAsynqJobClient(redisAddr, password string, db int) *AsynqJobClient {
	cli := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})
	return &AsynqJobClient{client: cli}
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

// EnqueueFeatureRun wraps the run in a task and hands it to asynq. The
// returned FeatureRun carries the generated run id for tracking.
func (jc *AsynqJobClient) EnqueueFeatureRun(ctx context.Context, featureID string, toolIDs []string, bookmarks []models.Bookmark) (*models.FeatureRun, error) {
	if jc.client == nil {
		return nil, fmt.Errorf("job client is not initialized")
	}

	run := &models.FeatureRun{
		RunID:     uuid.NewString(),
		FeatureID: featureID,
		ToolIDs:   toolIDs,
		StartedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(FeatureRunPayload{
		RunID:     run.RunID,
		FeatureID: featureID,
		ToolIDs:   toolIDs,
		Bookmarks: bookmarks,
	})
	if err != nil {
		return nil, fmt.Errorf("encode feature run payload: %w", err)
	}

	task := asynq.NewTask(TypeFeatureRun, payload)
	info, err := jc.client.EnqueueContext(ctx, task, asynq.Queue("features"))
	if err != nil {
		return nil, fmt.Errorf("enqueue feature run %s: %w", featureID, err)
	}

	log.WithFields(log.Fields{
		"run_id":  run.RunID,
		"feature": featureID,
		"task_id": info.ID,
		"queue":   info.Queue,
	}).Info("enqueued feature run")

	return run, nil
}
