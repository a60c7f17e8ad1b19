package tools

import (
	"context"

	"linkmind/internal/models"
)

// fakeBackend is an in-memory backend.Client for tool tests. Each field
// overrides one call; unset calls return zero values.
type fakeBackend struct {
	bookmarks []models.Bookmark
	invalid   []models.Bookmark

	listErr   error
	updateErr error
	uploadErr error

	updates  []models.BookmarkUpdate
	uploaded []models.Bookmark

	validationStarted bool
	statusCalls       int
	statuses          []models.ValidationStatus
}

func (f *fakeBackend) ListBookmarks(context.Context) ([]models.Bookmark, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookmarks, nil
}

func (f *fakeBackend) UpdateBookmark(_ context.Context, bookmarkURL string, update models.BookmarkUpdate) (*models.Bookmark, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updates = append(f.updates, update)

	updated := models.Bookmark{URL: bookmarkURL}
	for _, b := range f.bookmarks {
		if b.URL == bookmarkURL {
			updated = b
			break
		}
	}
	if update.Alias != nil {
		updated.Alias = *update.Alias
	}
	if update.Category != nil {
		updated.Category = *update.Category
	}
	if update.Tags != nil {
		updated.Tags = update.Tags
	}
	return &updated, nil
}

func (f *fakeBackend) UploadBookmarks(_ context.Context, bookmarks []models.Bookmark) (int, error) {
	if f.uploadErr != nil {
		return 0, f.uploadErr
	}
	f.uploaded = append(f.uploaded, bookmarks...)
	return len(bookmarks), nil
}

func (f *fakeBackend) StartValidation(context.Context) error {
	f.validationStarted = true
	return nil
}

func (f *fakeBackend) ValidationStatus(context.Context) (*models.ValidationStatus, error) {
	var status models.ValidationStatus
	if len(f.statuses) > 0 {
		i := f.statusCalls
		if i >= len(f.statuses) {
			i = len(f.statuses) - 1
		}
		status = f.statuses[i]
	}
	f.statusCalls++
	return &status, nil
}

func (f *fakeBackend) InvalidBookmarks(context.Context) ([]models.Bookmark, error) {
	return f.invalid, nil
}
