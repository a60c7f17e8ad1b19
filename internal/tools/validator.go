package tools

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"linkmind/internal/backend"
	"linkmind/internal/config"
	"linkmind/internal/models"
	"linkmind/internal/registry"
)

// ValidateResult reports a validation run driven through the backend.
type ValidateResult struct {
	Status           models.ValidationStatus `json:"validation_status"`
	InvalidBookmarks []models.Bookmark       `json:"invalid_bookmarks"`
	Timestamp        time.Time               `json:"timestamp"`
}

// Validator kicks off the backend's link validation and polls until every
// task completes or the retry budget runs out. The actual HTTP probing of
// links lives entirely behind the backend; this tool only orchestrates it.
type Validator struct {
	backend backend.Client
	// pollInterval is overridable in tests.
	pollInterval time.Duration
}

var _ registry.Tool = (*Validator)(nil)

func NewValidator(client backend.Client) *Validator {
	return &Validator{backend: client, pollInterval: time.Second}
}

func (v *Validator) ID() string   { return config.ToolBookmarkValidator }
func (v *Validator) Name() string { return "Bookmark Validator" }

func (v *Validator) Execute(ctx context.Context, input registry.Input, settings config.ToolSettings) (any, error) {
	maxRetries := settings.Int("max_retries", 30)

	if err := v.backend.StartValidation(ctx); err != nil {
		return nil, fmt.Errorf("start validation: %w", err)
	}

	status, err := v.backend.ValidationStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("poll validation status: %w", err)
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		status, err = v.backend.ValidationStatus(ctx)
		if err != nil {
			return nil, fmt.Errorf("poll validation status: %w", err)
		}
		if status.CompletedTasks >= status.TotalTasks {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(v.pollInterval):
		}
	}

	invalid, err := v.backend.InvalidBookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch invalid bookmarks: %w", err)
	}

	log.WithFields(log.Fields{
		"total":   status.TotalTasks,
		"invalid": len(invalid),
	}).Info("validation finished")

	return &ValidateResult{
		Status:           *status,
		InvalidBookmarks: invalid,
		Timestamp:        time.Now().UTC(),
	}, nil
}
