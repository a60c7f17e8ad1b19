package models

import "time"

// Bookmark represents one saved link. The URL is the unique key within a
// collection. IsValid is owned by the external validation backend and is
// read-only here.
type Bookmark struct {
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Alias    string   `json:"alias,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags"`
	IsValid  bool     `json:"is_valid"`
}

// BookmarkUpdate carries the fields a tool may change on a bookmark.
// Nil fields are left untouched by the backend.
type BookmarkUpdate struct {
	Alias    *string  `json:"alias,omitempty"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// SimilarityScore pairs a group member with its similarity to the
// group representative.
type SimilarityScore struct {
	Bookmark Bookmark `json:"bookmark"`
	Score    float64  `json:"score"`
}

// DuplicateGroup is one cluster of near-duplicate bookmarks. The
// representative is always element 0 of Bookmarks. Groups are built fresh
// per detection run and never mutated afterward; acting on a group (e.g.
// deleting all but the representative) is the caller's side effect.
type DuplicateGroup struct {
	Representative   Bookmark          `json:"representative"`
	Bookmarks        []Bookmark        `json:"bookmarks"`
	SimilarityScores []SimilarityScore `json:"similarity_scores"`
}

// ValidationStatus mirrors the backend's validation progress report.
type ValidationStatus struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	InvalidCount   int `json:"invalid_count"`
}

// Folder is one node of an organized bookmark tree.
type Folder struct {
	Name      string     `json:"name"`
	Folders   []*Folder  `json:"folders"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

// FeatureRun records one orchestrated execution for reporting.
type FeatureRun struct {
	RunID     string    `json:"run_id"`
	FeatureID string    `json:"feature_id"`
	ToolIDs   []string  `json:"tool_ids"`
	StartedAt time.Time `json:"started_at"`
}
