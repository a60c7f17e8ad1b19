package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"linkmind/internal/backend"
	"linkmind/internal/config"
	"linkmind/internal/models"
	"linkmind/internal/registry"
)

const defaultMaxFileSize = 10 * 1024 * 1024

// ImportResult reports one import run.
type ImportResult struct {
	Filename       string    `json:"filename"`
	ParsedCount    int       `json:"parsed_count"`
	ProcessedCount int       `json:"processed_count"`
	Timestamp      time.Time `json:"timestamp"`
}

// Importer parses a browser bookmark export (Netscape HTML or JSON) and
// delegates persistence of the parsed bookmarks to the backend.
type Importer struct {
	backend backend.Client
}

var _ registry.Tool = (*Importer)(nil)

func NewImporter(client backend.Client) *Importer {
	return &Importer{backend: client}
}

func (i *Importer) ID() string   { return config.ToolBookmarkImporter }
func (i *Importer) Name() string { return "Bookmark Importer" }

func (i *Importer) Execute(ctx context.Context, input registry.Input, settings config.ToolSettings) (any, error) {
	if input.FilePath == "" {
		return nil, fmt.Errorf("%w: importer requires a file path", models.ErrValidation)
	}

	maxFileSize := int64(settings.Int("max_file_size", defaultMaxFileSize))
	supported := settings.Strings("supported_formats", []string{"html", "json"})

	info, err := os.Stat(input.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stat import file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("%w: file size %d exceeds limit %d", models.ErrValidation, info.Size(), maxFileSize)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(input.FilePath)), ".")
	if !formatSupported(format, supported) {
		return nil, fmt.Errorf("%w: unsupported format %q (supported: %s)",
			models.ErrValidation, format, strings.Join(supported, ", "))
	}

	raw, err := os.ReadFile(input.FilePath)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var bookmarks []models.Bookmark
	switch format {
	case "html":
		bookmarks, err = ParseNetscapeExport(raw)
	case "json":
		err = json.Unmarshal(raw, &bookmarks)
	default:
		err = fmt.Errorf("%w: no parser for format %q", models.ErrValidation, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s export: %w", format, err)
	}

	processed, err := i.backend.UploadBookmarks(ctx, bookmarks)
	if err != nil {
		return nil, fmt.Errorf("upload imported bookmarks: %w", err)
	}

	log.WithFields(log.Fields{
		"file":      filepath.Base(input.FilePath),
		"parsed":    len(bookmarks),
		"processed": processed,
	}).Info("import finished")

	return &ImportResult{
		Filename:       filepath.Base(input.FilePath),
		ParsedCount:    len(bookmarks),
		ProcessedCount: processed,
		Timestamp:      time.Now().UTC(),
	}, nil
}

func formatSupported(format string, supported []string) bool {
	for _, s := range supported {
		if strings.EqualFold(s, format) {
			return true
		}
	}
	return false
}
