// Package backend is the HTTP client for the external bookmark backend,
// which owns persistence, link validation and uploads. The engine itself
// never persists anything; every write here is delegation.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"linkmind/internal/models"
)

// Client is the slice of the backend surface the tools consume. Tools
// accept this interface so tests can substitute fakes or httptest servers.
type Client interface {
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)
	UpdateBookmark(ctx context.Context, bookmarkURL string, update models.BookmarkUpdate) (*models.Bookmark, error)
	UploadBookmarks(ctx context.Context, bookmarks []models.Bookmark) (int, error)
	StartValidation(ctx context.Context) error
	ValidationStatus(ctx context.Context) (*models.ValidationStatus, error)
	InvalidBookmarks(ctx context.Context) ([]models.Bookmark, error)
}

// HTTPClient talks to the backend over its JSON API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type bookmarksData struct {
	Bookmarks []models.Bookmark `json:"bookmarks"`
}

type bookmarkData struct {
	Bookmark models.Bookmark `json:"bookmark"`
}

type uploadData struct {
	ProcessedCount int `json:"processed_count"`
}

func (c *HTTPClient) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	var data bookmarksData
	if err := c.do(ctx, http.MethodGet, "/api/bookmarks", nil, &data); err != nil {
		return nil, err
	}
	return data.Bookmarks, nil
}

func (c *HTTPClient) UpdateBookmark(ctx context.Context, bookmarkURL string, update models.BookmarkUpdate) (*models.Bookmark, error) {
	path := "/api/bookmarks?url=" + url.QueryEscape(bookmarkURL)
	var data bookmarkData
	if err := c.do(ctx, http.MethodPatch, path, update, &data); err != nil {
		return nil, err
	}
	return &data.Bookmark, nil
}

func (c *HTTPClient) UploadBookmarks(ctx context.Context, bookmarks []models.Bookmark) (int, error) {
	var data uploadData
	payload := bookmarksData{Bookmarks: bookmarks}
	if err := c.do(ctx, http.MethodPost, "/api/bookmarks/upload", payload, &data); err != nil {
		return 0, err
	}
	return data.ProcessedCount, nil
}

func (c *HTTPClient) StartValidation(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/validation/start", nil, nil)
}

func (c *HTTPClient) ValidationStatus(ctx context.Context) (*models.ValidationStatus, error) {
	var status models.ValidationStatus
	if err := c.do(ctx, http.MethodGet, "/api/validation/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *HTTPClient) InvalidBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	var data bookmarksData
	if err := c.do(ctx, http.MethodGet, "/api/bookmarks/invalid", nil, &data); err != nil {
		return nil, err
	}
	return data.Bookmarks, nil
}

// do issues one request and decodes the enveloped response into out when
// out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", models.ErrBackend, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s %s: status %d: %s", models.ErrBackend, method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data for %s %s: %w", method, path, err)
	}
	return nil
}
