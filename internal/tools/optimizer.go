// Package tools implements the registered bookmark-processing tools:
// optimizer, duplicate detector, validator, importer and folder organizer.
package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"linkmind/internal/backend"
	"linkmind/internal/classify"
	"linkmind/internal/config"
	"linkmind/internal/keywords"
	"linkmind/internal/models"
	"linkmind/internal/registry"
)

// OptimizeOptions echoes which optimizations ran.
type OptimizeOptions struct {
	AutoCategorize bool `json:"auto_categorize"`
	GenerateAlias  bool `json:"generate_alias"`
	ExtractTags    bool `json:"extract_tags"`
}

// OptimizeResult reports the optimizer's output. It carries the rewritten
// bookmarks forward so later tools in a batch observe the new tags and
// categories.
type OptimizeResult struct {
	OptimizedBookmarks []models.Bookmark `json:"optimized_bookmarks"`
	Options            OptimizeOptions   `json:"optimization_options"`
	Timestamp          time.Time         `json:"timestamp"`
}

// UpdatedBookmarks implements registry.BookmarkCarrier.
func (r *OptimizeResult) UpdatedBookmarks() []models.Bookmark {
	return r.OptimizedBookmarks
}

// Optimizer derives an alias, tags and a category for each bookmark from
// its title and URL, then delegates persistence to the backend.
type Optimizer struct {
	backend backend.Client
	rules   []classify.Rule
}

var _ registry.Tool = (*Optimizer)(nil)

// NewOptimizer builds the optimizer. A nil rule slice means the default
// classification rules.
func NewOptimizer(client backend.Client, rules []classify.Rule) *Optimizer {
	return &Optimizer{backend: client, rules: rules}
}

func (o *Optimizer) ID() string   { return config.ToolAIOptimizer }
func (o *Optimizer) Name() string { return "AI Optimizer" }

func (o *Optimizer) Execute(ctx context.Context, input registry.Input, settings config.ToolSettings) (any, error) {
	opts := OptimizeOptions{
		AutoCategorize: settings.Bool("auto_categorize", true),
		GenerateAlias:  settings.Bool("generate_alias", true),
		ExtractTags:    settings.Bool("extract_tags", true),
	}

	optimized := make([]models.Bookmark, 0, len(input.Bookmarks))
	for _, bookmark := range input.Bookmarks {
		update := models.BookmarkUpdate{}
		changed := false

		if opts.GenerateAlias {
			alias := GenerateAlias(bookmark.Title)
			update.Alias = &alias
			changed = true
		}
		if opts.ExtractTags {
			cfg := keywords.DefaultConfig()
			cfg.MaxTags = keywords.OptimalTagCount(bookmark.Title, cfg.MaxTags)
			update.Tags = keywords.Extract(bookmark.Title, cfg).Keywords
			changed = true
		}
		if opts.AutoCategorize {
			category := classify.Classify(bookmark.Title, bookmark.URL, o.rules).Category
			update.Category = &category
			changed = true
		}

		if !changed {
			optimized = append(optimized, bookmark)
			continue
		}

		updated, err := o.backend.UpdateBookmark(ctx, bookmark.URL, update)
		if err != nil {
			return nil, fmt.Errorf("optimize bookmark %s: %w", bookmark.URL, err)
		}
		optimized = append(optimized, *updated)
	}

	log.WithFields(log.Fields{"count": len(optimized)}).Info("optimizer finished")

	return &OptimizeResult{
		OptimizedBookmarks: optimized,
		Options:            opts,
		Timestamp:          time.Now().UTC(),
	}, nil
}

// GenerateAlias reduces a title to a lowercase hyphenated slug, keeping
// only ASCII letters, digits and spaces.
func GenerateAlias(title string) string {
	lower := strings.ToLower(title)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}
