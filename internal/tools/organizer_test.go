package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkmind/internal/config"
	"linkmind/internal/models"
	"linkmind/internal/registry"
)

func TestOrganizer_GroupsByCategoryIntoFolders(t *testing.T) {
	organizer := NewOrganizer(&fakeBackend{})

	input := registry.Input{Bookmarks: []models.Bookmark{
		{URL: "https://a.com", Category: "Development"},
		{URL: "https://b.com", Category: "News"},
		{URL: "https://c.com", Category: "Development"},
		{URL: "https://d.com"},
	}}

	result, err := organizer.Execute(context.Background(), input, config.ToolSettings{})
	require.NoError(t, err)

	organized := result.(*OrganizeResult)
	root := organized.FolderStructure
	require.NotNil(t, root)
	assert.Equal(t, "Bookmarks", root.Name)

	// Folder names are sorted for stable output.
	require.Len(t, root.Folders, 3)
	assert.Equal(t, "Development", root.Folders[0].Name)
	assert.Equal(t, "News", root.Folders[1].Name)
	assert.Equal(t, UncategorizedFolder, root.Folders[2].Name)
	assert.Len(t, root.Folders[0].Bookmarks, 2)
	assert.Len(t, root.Folders[2].Bookmarks, 1)
}

func TestOrganizer_FetchesFromBackendWhenInputEmpty(t *testing.T) {
	backend := &fakeBackend{bookmarks: []models.Bookmark{
		{URL: "https://a.com", Category: "News"},
	}}
	organizer := NewOrganizer(backend)

	result, err := organizer.Execute(context.Background(), registry.Input{}, config.ToolSettings{})
	require.NoError(t, err)

	organized := result.(*OrganizeResult)
	require.Len(t, organized.FolderStructure.Folders, 1)
	assert.Equal(t, "News", organized.FolderStructure.Folders[0].Name)
}

func TestBuildFolderStructure_DepthBelowOneCollapses(t *testing.T) {
	byCategory := map[string][]models.Bookmark{
		"Development": {{URL: "https://a.com"}},
		"News":        {{URL: "https://b.com"}},
	}

	root := BuildFolderStructure(byCategory, 0)

	assert.Empty(t, root.Folders)
	require.Len(t, root.Bookmarks, 2)
	// Collapsed output is ordered by category name, not map order.
	assert.Equal(t, "https://a.com", root.Bookmarks[0].URL)
	assert.Equal(t, "https://b.com", root.Bookmarks[1].URL)
}

func TestOrganizeByCategory_DefaultsToUncategorized(t *testing.T) {
	byCategory := OrganizeByCategory([]models.Bookmark{{URL: "https://a.com"}})

	require.Contains(t, byCategory, UncategorizedFolder)
	assert.Len(t, byCategory[UncategorizedFolder], 1)
}

func TestOrganizer_EchoesSettings(t *testing.T) {
	organizer := NewOrganizer(&fakeBackend{})

	input := registry.Input{Bookmarks: []models.Bookmark{{URL: "https://a.com"}}}
	result, err := organizer.Execute(context.Background(), input, config.ToolSettings{
		"auto_create_folders": false,
		"max_folder_depth":    1,
	})
	require.NoError(t, err)

	organized := result.(*OrganizeResult)
	assert.False(t, organized.AutoCreateFolders)
	assert.Equal(t, 1, organized.MaxFolderDepth)
}
