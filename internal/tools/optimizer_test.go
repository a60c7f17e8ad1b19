package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkmind/internal/config"
	"linkmind/internal/models"
	"linkmind/internal/registry"
)

func TestOptimizer_AssignsAliasTagsAndCategory(t *testing.T) {
	backend := &fakeBackend{}
	optimizer := NewOptimizer(backend, nil)

	input := registry.Input{Bookmarks: []models.Bookmark{
		{URL: "https://github.com/golang/go", Title: "Go Programming Language"},
	}}

	result, err := optimizer.Execute(context.Background(), input, config.ToolSettings{})
	require.NoError(t, err)

	optimized := result.(*OptimizeResult)
	require.Len(t, optimized.OptimizedBookmarks, 1)
	got := optimized.OptimizedBookmarks[0]

	assert.Equal(t, "go-programming-language", got.Alias)
	assert.Equal(t, "Development", got.Category)
	assert.NotEmpty(t, got.Tags)

	require.Len(t, backend.updates, 1)
	require.NotNil(t, backend.updates[0].Alias)
	require.NotNil(t, backend.updates[0].Category)
}

func TestOptimizer_SettingsDisableSteps(t *testing.T) {
	backend := &fakeBackend{}
	optimizer := NewOptimizer(backend, nil)

	input := registry.Input{Bookmarks: []models.Bookmark{
		{URL: "https://example.com", Title: "Example"},
	}}
	settings := config.ToolSettings{
		"generate_alias":  false,
		"extract_tags":    false,
		"auto_categorize": true,
	}

	_, err := optimizer.Execute(context.Background(), input, settings)
	require.NoError(t, err)

	require.Len(t, backend.updates, 1)
	assert.Nil(t, backend.updates[0].Alias)
	assert.Nil(t, backend.updates[0].Tags)
	require.NotNil(t, backend.updates[0].Category)
}

func TestOptimizer_AllStepsDisabledSkipsBackend(t *testing.T) {
	backend := &fakeBackend{}
	optimizer := NewOptimizer(backend, nil)

	input := registry.Input{Bookmarks: []models.Bookmark{
		{URL: "https://example.com", Title: "Example"},
	}}
	settings := config.ToolSettings{
		"generate_alias":  false,
		"extract_tags":    false,
		"auto_categorize": false,
	}

	result, err := optimizer.Execute(context.Background(), input, settings)
	require.NoError(t, err)

	assert.Empty(t, backend.updates)
	optimized := result.(*OptimizeResult)
	require.Len(t, optimized.OptimizedBookmarks, 1)
	assert.Equal(t, "https://example.com", optimized.OptimizedBookmarks[0].URL)
}

func TestOptimizer_BackendErrorAborts(t *testing.T) {
	boom := errors.New("backend down")
	backend := &fakeBackend{updateErr: boom}
	optimizer := NewOptimizer(backend, nil)

	input := registry.Input{Bookmarks: []models.Bookmark{
		{URL: "https://example.com", Title: "Example"},
	}}

	_, err := optimizer.Execute(context.Background(), input, config.ToolSettings{})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestOptimizer_ResultCarriesBookmarks(t *testing.T) {
	var carrier registry.BookmarkCarrier = &OptimizeResult{
		OptimizedBookmarks: []models.Bookmark{{URL: "https://a.com"}},
	}

	assert.Len(t, carrier.UpdatedBookmarks(), 1)
}

func TestGenerateAlias(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Go Programming Language", "go-programming-language"},
		{"Hello,   World!", "hello-world"},
		{"React官方文档", "react"},
		{"C++ & Rust: a comparison", "c-rust-a-comparison"},
		{"只有中文", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateAlias(tt.title))
		})
	}
}
