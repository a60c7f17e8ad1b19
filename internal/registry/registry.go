// Package registry holds the uniformly invocable bookmark-processing
// tools and gates their execution on configuration state.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"linkmind/internal/config"
	"linkmind/internal/models"
)

// Input is the typed payload handed to a tool. Bookmarks are value copies
// of the caller's collection; a tool never mutates shared state directly
// and instead returns updated bookmarks through its result (see
// BookmarkCarrier).
type Input struct {
	Bookmarks []models.Bookmark
	// File points at a bookmark export for the importer; empty otherwise.
	FilePath string
}

// BookmarkCarrier is implemented by tool results that rewrite bookmarks.
// ExecuteAll merges the carried bookmarks into the working input after the
// tool completes, so later tools in a batch observe earlier tools' writes
// through an explicit merge step rather than shared mutable slices.
type BookmarkCarrier interface {
	UpdatedBookmarks() []models.Bookmark
}

// Tool is one unit of bookmark-processing logic. Implementations are
// registered once at process start and must be stateless.
type Tool interface {
	ID() string
	Name() string
	Execute(ctx context.Context, input Input, settings config.ToolSettings) (any, error)
}

// Outcome records one tool's result or error within a batch. Exactly one
// of Result and Err is set.
type Outcome struct {
	ToolID string
	Result any
	Err    error
}

// Registry maps tool ids to registered tools. Configuration is not cached
// here; every gating decision reads the snapshot the caller passes in.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func New() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Registering an id twice replaces the earlier tool.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.ID()] = tool
}

// RegisterAll registers each tool in order.
func (r *Registry) RegisterAll(tools []Tool) {
	for _, t := range tools {
		r.Register(t)
	}
}

// Get returns a registered tool by id.
func (r *Registry) Get(id string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[id]
	return t, ok
}

// IsEnabled reports whether the tool has a configuration entry that
// enables it. A tool without configuration is disabled.
func (r *Registry) IsEnabled(snap *config.Snapshot, id string) bool {
	tc, ok := snap.Tool(id)
	return ok && tc.Enabled
}

// DependenciesSatisfied reports whether every declared dependency of the
// tool exists in configuration and is itself enabled. Only the immediate
// dependency's enabled state is checked, not the dependency's own
// dependencies; the one-hop scope is intentional.
func (r *Registry) DependenciesSatisfied(snap *config.Snapshot, id string) bool {
	tc, ok := snap.Tool(id)
	if !ok || len(tc.Dependencies) == 0 {
		return true
	}
	for _, dep := range tc.Dependencies {
		depCfg, ok := snap.Tool(dep)
		if !ok || !depCfg.Enabled {
			return false
		}
	}
	return true
}

// Execute runs a single tool against the given snapshot. Unlike the batch
// path, a tool that is missing, disabled or has unsatisfied dependencies
// fails explicitly here.
func (r *Registry) Execute(ctx context.Context, snap *config.Snapshot, id string, input Input) (any, error) {
	tool, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrToolNotRegistered, id)
	}
	if !r.IsEnabled(snap, id) {
		return nil, fmt.Errorf("%w: %s", models.ErrToolDisabled, id)
	}
	if !r.DependenciesSatisfied(snap, id) {
		return nil, fmt.Errorf("%w: %s", models.ErrDependencyUnsatisfied, id)
	}

	result, err := tool.Execute(ctx, input, snap.Settings(id))
	if err != nil {
		log.WithFields(log.Fields{"tool": id}).WithError(err).Error("tool execution failed")
		return nil, fmt.Errorf("execute tool %s: %w", id, err)
	}
	return result, nil
}

// ExecuteAll runs the requested tools sequentially in ascending configured
// priority order. Priority order is an execution-order guarantee, not just
// a sort: later tools see the bookmark updates merged from earlier ones.
// Tools that are disabled, unregistered or have unsatisfied dependencies
// are silently skipped (no entry in the result map); a tool that fails is
// recorded as an error outcome and never aborts its siblings.
func (r *Registry) ExecuteAll(ctx context.Context, snap *config.Snapshot, ids []string, input Input) map[string]Outcome {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return snap.ToolPriority(sorted[i]) < snap.ToolPriority(sorted[j])
	})

	results := make(map[string]Outcome)
	working := cloneInput(input)

	for _, id := range sorted {
		if !r.IsEnabled(snap, id) || !r.DependenciesSatisfied(snap, id) {
			log.WithFields(log.Fields{"tool": id}).Debug("skipping gated tool")
			continue
		}
		tool, ok := r.Get(id)
		if !ok {
			continue
		}

		result, err := tool.Execute(ctx, working, snap.Settings(id))
		if err != nil {
			log.WithFields(log.Fields{"tool": id}).WithError(err).Error("tool execution failed")
			results[id] = Outcome{ToolID: id, Err: err}
			continue
		}
		results[id] = Outcome{ToolID: id, Result: result}

		if carrier, ok := result.(BookmarkCarrier); ok {
			working.Bookmarks = mergeBookmarks(working.Bookmarks, carrier.UpdatedBookmarks())
		}
	}

	return results
}

// Status reports a tool's gating state under a snapshot.
type Status struct {
	ToolID          string `json:"tool_id"`
	Name            string `json:"name"`
	Enabled         bool   `json:"enabled"`
	DependenciesMet bool   `json:"dependencies_met"`
	Registered      bool   `json:"registered"`
	Priority        int    `json:"priority"`
}

// Statuses reports the gating state of every configured tool, sorted by
// ascending priority for display.
func (r *Registry) Statuses(snap *config.Snapshot) []Status {
	statuses := make([]Status, 0, len(snap.Tools))
	for _, tc := range snap.Tools {
		_, registered := r.Get(tc.ID)
		statuses = append(statuses, Status{
			ToolID:          tc.ID,
			Name:            tc.Name,
			Enabled:         tc.Enabled,
			DependenciesMet: r.DependenciesSatisfied(snap, tc.ID),
			Registered:      registered,
			Priority:        tc.Priority,
		})
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Priority < statuses[j].Priority
	})
	return statuses
}

// AvailableTools lists the registered tools enabled under the snapshot.
func (r *Registry) AvailableTools(snap *config.Snapshot) []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Tool
	for id, t := range r.tools {
		if r.IsEnabled(snap, id) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func cloneInput(in Input) Input {
	out := in
	out.Bookmarks = make([]models.Bookmark, len(in.Bookmarks))
	copy(out.Bookmarks, in.Bookmarks)
	return out
}

// mergeBookmarks overlays updates onto the working set by URL, appending
// bookmarks not present yet. Order of existing entries is preserved.
func mergeBookmarks(current, updates []models.Bookmark) []models.Bookmark {
	index := make(map[string]int, len(current))
	for i, b := range current {
		index[b.URL] = i
	}
	for _, u := range updates {
		if i, ok := index[u.URL]; ok {
			current[i] = u
		} else {
			index[u.URL] = len(current)
			current = append(current, u)
		}
	}
	return current
}
