package tools

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"linkmind/internal/backend"
	"linkmind/internal/config"
	"linkmind/internal/dupes"
	"linkmind/internal/models"
	"linkmind/internal/registry"
)

// DetectResult reports one duplicate detection run.
type DetectResult struct {
	DuplicateGroups     []models.DuplicateGroup `json:"duplicate_groups"`
	TotalDuplicates     int                     `json:"total_duplicates"`
	UniqueBookmarks     int                     `json:"unique_bookmarks"`
	SimilarityThreshold float64                 `json:"similarity_threshold"`
	Timestamp           time.Time               `json:"timestamp"`
}

// Detector groups near-duplicate bookmarks. When the input carries no
// bookmarks it pulls the full collection from the backend.
type Detector struct {
	backend backend.Client
}

var _ registry.Tool = (*Detector)(nil)

func NewDetector(client backend.Client) *Detector {
	return &Detector{backend: client}
}

func (d *Detector) ID() string   { return config.ToolDuplicateDetector }
func (d *Detector) Name() string { return "Duplicate Detector" }

func (d *Detector) Execute(ctx context.Context, input registry.Input, settings config.ToolSettings) (any, error) {
	threshold := settings.Float("similarity_threshold", dupes.DefaultThreshold)

	bookmarks := input.Bookmarks
	if len(bookmarks) == 0 {
		var err error
		bookmarks, err = d.backend.ListBookmarks(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch bookmarks for duplicate detection: %w", err)
		}
	}

	groups := dupes.FindGroups(bookmarks, threshold)

	total := 0
	surplus := 0
	for _, g := range groups {
		total += len(g.Bookmarks)
		surplus += len(g.Bookmarks) - 1
	}

	log.WithFields(log.Fields{
		"bookmarks": len(bookmarks),
		"groups":    len(groups),
		"threshold": threshold,
	}).Info("duplicate detection finished")

	return &DetectResult{
		DuplicateGroups:     groups,
		TotalDuplicates:     total,
		UniqueBookmarks:     len(bookmarks) - surplus,
		SimilarityThreshold: threshold,
		Timestamp:           time.Now().UTC(),
	}, nil
}
