package tools

import (
	"context"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"linkmind/internal/backend"
	"linkmind/internal/config"
	"linkmind/internal/models"
	"linkmind/internal/registry"
)

// UncategorizedFolder collects bookmarks without a category.
const UncategorizedFolder = "Uncategorized"

// OrganizeResult reports the proposed folder layout. The engine never
// creates folders itself; the caller decides whether to apply the tree.
type OrganizeResult struct {
	FolderStructure   *models.Folder               `json:"folder_structure"`
	OrganizedByCat    map[string][]models.Bookmark `json:"organized_bookmarks"`
	AutoCreateFolders bool                         `json:"auto_create_folders"`
	MaxFolderDepth    int                          `json:"max_folder_depth"`
	Timestamp         time.Time                    `json:"timestamp"`
}

// Organizer groups bookmarks by category into a bounded folder tree. It
// depends on the optimizer having assigned categories, which is why its
// configuration declares the optimizer as a dependency.
type Organizer struct {
	backend backend.Client
}

var _ registry.Tool = (*Organizer)(nil)

func NewOrganizer(client backend.Client) *Organizer {
	return &Organizer{backend: client}
}

func (o *Organizer) ID() string   { return config.ToolFolderOrganizer }
func (o *Organizer) Name() string { return "Folder Organizer" }

func (o *Organizer) Execute(ctx context.Context, input registry.Input, settings config.ToolSettings) (any, error) {
	autoCreate := settings.Bool("auto_create_folders", true)
	maxDepth := settings.Int("max_folder_depth", 3)

	bookmarks := input.Bookmarks
	if len(bookmarks) == 0 {
		var err error
		bookmarks, err = o.backend.ListBookmarks(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch bookmarks for organizing: %w", err)
		}
	}

	byCategory := OrganizeByCategory(bookmarks)
	root := BuildFolderStructure(byCategory, maxDepth)

	log.WithFields(log.Fields{
		"bookmarks":  len(bookmarks),
		"categories": len(byCategory),
	}).Info("folder organization finished")

	return &OrganizeResult{
		FolderStructure:   root,
		OrganizedByCat:    byCategory,
		AutoCreateFolders: autoCreate,
		MaxFolderDepth:    maxDepth,
		Timestamp:         time.Now().UTC(),
	}, nil
}

// OrganizeByCategory buckets bookmarks by their category, defaulting to
// UncategorizedFolder.
func OrganizeByCategory(bookmarks []models.Bookmark) map[string][]models.Bookmark {
	organized := make(map[string][]models.Bookmark)
	for _, b := range bookmarks {
		category := b.Category
		if category == "" {
			category = UncategorizedFolder
		}
		organized[category] = append(organized[category], b)
	}
	return organized
}

// BuildFolderStructure turns category buckets into a one-level folder
// tree under a single root, with folders ordered by name for stable
// output. The depth bound exists for future sub-folder splitting; a value
// below 1 collapses everything into the root.
func BuildFolderStructure(byCategory map[string][]models.Bookmark, maxDepth int) *models.Folder {
	root := &models.Folder{Name: "Bookmarks"}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	if maxDepth < 1 {
		for _, name := range names {
			root.Bookmarks = append(root.Bookmarks, byCategory[name]...)
		}
		return root
	}

	for _, name := range names {
		root.Folders = append(root.Folders, &models.Folder{
			Name:      name,
			Bookmarks: byCategory[name],
		})
	}
	return root
}
