// Package filesystem loads filing documents from local files and
// directories, and watches directories for changes.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regcheck-cli/internal/ingest/docx"
	"github.com/custodia-labs/regcheck-cli/internal/logger"
)

var _ driven.DocumentSource = (*Source)(nil)

// Source loads DOCX and plain text documents from the local filesystem.
type Source struct{}

// New creates a filesystem document source.
func New() *Source {
	return &Source{}
}

// Load reads every supported document at or under path. A single file path
// loads just that file. Files that fail to parse are skipped with a warning
// so one corrupt upload does not block the rest of the filing set.
func (s *Source) Load(ctx context.Context, path string) ([]*domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	if !info.IsDir() {
		doc, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		return []*domain.Document{doc}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && isHidden(p) {
				return filepath.SkipDir
			}
			return nil
		}
		if isHidden(p) || !Supported(p) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	sort.Strings(files)

	var docs []*domain.Document
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := loadFile(file)
		if err != nil {
			logger.Warn("skipping %s: %v", file, err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Supported reports whether the file extension is one the source can parse.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx", ".txt":
		return true
	default:
		return false
	}
}

// loadFile reads and parses a single document file.
func loadFile(path string) (*domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var paragraphs []domain.Paragraph
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		paragraphs, err = docx.Extract(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".txt":
		paragraphs = splitParagraphs(string(raw))
	default:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrInvalidInput)
	}

	return &domain.Document{
		ID:         uuid.New().String(),
		Filename:   filepath.Base(path),
		UploadedAt: time.Now(),
		Paragraphs: paragraphs,
	}, nil
}

// splitParagraphs treats each non-blank line of a text file as a paragraph.
func splitParagraphs(text string) []domain.Paragraph {
	var paragraphs []domain.Paragraph
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(strings.TrimSpace(line), "\r")
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, domain.Paragraph{
			Index: len(paragraphs),
			Text:  line,
		})
	}
	return paragraphs
}

// isHidden reports whether any path element starts with a dot.
// The special elements "." and ".." do not count.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
