package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SuchitArtal/virtual-lab/internal/models"
)

// document is the on-disk layout: one JSON object holding the full
// requests array, pretty-printed so the file stays human-readable.
type document struct {
	Requests []models.LabRequest `json:"requests"`
}

// File stores the collection in a single JSON file. Each Save rewrites
// the whole file through a temp file + rename so readers never observe a
// partial document.
type File struct {
	path string
}

// NewFile returns a file store backed by path, creating the parent
// directory if needed.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &File{path: path}, nil
}

func (f *File) Load(ctx context.Context) ([]models.LabRequest, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		if err := f.Save(ctx, nil); err != nil {
			return nil, err
		}
		return []models.LabRequest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	if doc.Requests == nil {
		doc.Requests = []models.LabRequest{}
	}
	return doc.Requests, nil
}

func (f *File) Save(_ context.Context, requests []models.LabRequest) error {
	doc := document{Requests: requests}
	if doc.Requests == nil {
		doc.Requests = []models.LabRequest{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode requests: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".requests-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
