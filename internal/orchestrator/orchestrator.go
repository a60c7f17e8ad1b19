// Package orchestrator drives configuration-gated tool execution for named
// features.
package orchestrator

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"linkmind/internal/config"
	"linkmind/internal/models"
	"linkmind/internal/registry"
)

// Feature ids known to the orchestrator.
const (
	FeatureBookmarkManagement   = "bookmarkManagement"
	FeatureBookmarkImport       = "bookmarkImport"
	FeatureBookmarkOptimization = "bookmarkOptimization"
	FeatureBookmarkValidation   = "bookmarkValidation"
)

// featureToolMap binds each known feature to its constituent tools.
// Unknown feature ids resolve to an empty list rather than erroring.
var featureToolMap = map[string][]string{
	FeatureBookmarkManagement:   {config.ToolBookmarkValidator, config.ToolAIOptimizer, config.ToolDuplicateDetector},
	FeatureBookmarkImport:       {config.ToolBookmarkImporter, config.ToolBookmarkValidator, config.ToolAIOptimizer},
	FeatureBookmarkOptimization: {config.ToolAIOptimizer, config.ToolDuplicateDetector, config.ToolFolderOrganizer},
	FeatureBookmarkValidation:   {config.ToolBookmarkValidator},
}

// Executor is the top-level entry point for orchestrated runs. It owns the
// reload step: every ExecuteFeature/ExecuteTool call takes a fresh
// configuration snapshot before acting, so feature toggles apply to the
// next run without restarts. The snapshot is then threaded through
// explicitly and never changes mid-run.
type Executor struct {
	loader   *config.Loader
	registry *registry.Registry
}

func New(loader *config.Loader, reg *registry.Registry) *Executor {
	return &Executor{loader: loader, registry: reg}
}

// ExecuteFeature reloads configuration, verifies the feature-level flag
// (absent flags default to enabled) and delegates to the registry's batch
// execution. One failing tool never aborts the others; its error lands in
// the returned outcome map.
func (e *Executor) ExecuteFeature(ctx context.Context, featureID string, toolIDs []string, input registry.Input) (map[string]registry.Outcome, error) {
	snap, err := e.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config for feature %s: %w", featureID, err)
	}

	log.WithFields(log.Fields{
		"feature":     featureID,
		"environment": snap.Environment,
		"tools":       len(toolIDs),
	}).Info("executing feature")

	if !snap.FeatureEnabled(featureID) {
		return nil, fmt.Errorf("%w: %s", models.ErrFeatureDisabled, featureID)
	}

	return e.registry.ExecuteAll(ctx, snap, toolIDs, input), nil
}

// ExecuteTool reloads configuration and runs a single tool. Gating
// failures (unregistered, disabled, unsatisfied dependencies) surface as
// errors here, unlike the batch path.
func (e *Executor) ExecuteTool(ctx context.Context, toolID string, input registry.Input) (any, error) {
	snap, err := e.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config for tool %s: %w", toolID, err)
	}

	log.WithFields(log.Fields{"tool": toolID, "environment": snap.Environment}).Info("executing tool")

	return e.registry.Execute(ctx, snap, toolID, input)
}

// FeatureTools returns the tool ids that make up a known feature, or an
// empty list for an unknown feature id.
func FeatureTools(featureID string) []string {
	tools, ok := featureToolMap[featureID]
	if !ok {
		return []string{}
	}
	out := make([]string, len(tools))
	copy(out, tools)
	return out
}

// Features lists the known feature ids.
func Features() []string {
	return []string{
		FeatureBookmarkManagement,
		FeatureBookmarkImport,
		FeatureBookmarkOptimization,
		FeatureBookmarkValidation,
	}
}
