// Package archive persists one JSON artifact per recommendation run.
// Artifacts are written once and never read back by the running system;
// the load functions exist so a saved set round-trips field-for-field.
package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/nicholas-gates/book-recommendations/internal/model"
)

const timestampLayout = "20060102_150405"

// BookArtifact is the persisted envelope for one book recommendation run.
type BookArtifact struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	model.BookRecommendationSet
}

// MediaArtifact is the persisted envelope for one cross-domain media run.
type MediaArtifact struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	model.CrossDomainMediaSet
}

// Writer persists recommendation artifacts under a directory.
type Writer struct {
	dir string
}

// NewWriter creates a new artifact writer
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// SaveBookSet writes the set as a timestamped JSON artifact and returns its path
func (w *Writer) SaveBookSet(set *model.BookRecommendationSet) (string, error) {
	name := fmt.Sprintf("book_recommendations_%s.json", time.Now().Format(timestampLayout))
	artifact := BookArtifact{
		RunID:                 uuid.New().String(),
		CreatedAt:             time.Now().UTC(),
		BookRecommendationSet: *set,
	}
	return w.write(name, artifact)
}

// SaveMediaSet writes the set as a timestamped JSON artifact and returns its path
func (w *Writer) SaveMediaSet(set *model.CrossDomainMediaSet) (string, error) {
	name := fmt.Sprintf("media_recommendations_%s.json", time.Now().Format(timestampLayout))
	artifact := MediaArtifact{
		RunID:               uuid.New().String(),
		CreatedAt:           time.Now().UTC(),
		CrossDomainMediaSet: *set,
	}
	return w.write(name, artifact)
}

func (w *Writer) write(name string, artifact any) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal artifact: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return path, nil
}

// LoadBookSet reads a book artifact back and validates it
func LoadBookSet(path string) (*model.BookRecommendationSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var artifact BookArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact JSON: %w", err)
	}

	if err := artifact.BookRecommendationSet.Validate(); err != nil {
		return nil, fmt.Errorf("artifact failed validation: %w", err)
	}

	return &artifact.BookRecommendationSet, nil
}

// LoadMediaSet reads a media artifact back and validates it
func LoadMediaSet(path string) (*model.CrossDomainMediaSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var artifact MediaArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact JSON: %w", err)
	}

	if err := artifact.CrossDomainMediaSet.Validate(); err != nil {
		return nil, fmt.Errorf("artifact failed validation: %w", err)
	}

	return &artifact.CrossDomainMediaSet, nil
}
