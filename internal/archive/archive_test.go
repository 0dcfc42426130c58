package archive

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nicholas-gates/book-recommendations/internal/model"
)

func sampleBookSet() *model.BookRecommendationSet {
	book := func(title string) model.BookRecommendation {
		return model.BookRecommendation{
			Title:       title,
			Author:      "Author Name",
			Genre:       "Science Fiction",
			Description: "A detailed description of the book and its themes.",
			Reason:      "It matches the stated reading interest.",
		}
	}
	return &model.BookRecommendationSet{
		Recommendations: []model.BookRecommendation{
			book("The Sparrow"), book("Blindsight"), book("Contact"),
		},
	}
}

func sampleMediaSet() *model.CrossDomainMediaSet {
	return &model.CrossDomainMediaSet{
		Movie: model.MovieRecommendation{Title: "Arrival", Year: "2016", Description: "d", Reason: "r"},
		Game:  model.GameRecommendation{Title: "Outer Wilds", Platform: "PC", Description: "d", Reason: "r"},
		Song:  model.SongRecommendation{Title: "Space Oddity", Artist: "David Bowie", Description: "d", Reason: "r"},
	}
}

func TestBookSetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	set := sampleBookSet()
	path, err := w.SaveBookSet(set)
	if err != nil {
		t.Fatalf("SaveBookSet() returned error: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), "book_recommendations_") {
		t.Errorf("SaveBookSet() wrote %q, want a book_recommendations_ prefix", path)
	}

	loaded, err := LoadBookSet(path)
	if err != nil {
		t.Fatalf("LoadBookSet() returned error: %v", err)
	}
	if !reflect.DeepEqual(set, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", set, loaded)
	}
}

func TestMediaSetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	set := sampleMediaSet()
	path, err := w.SaveMediaSet(set)
	if err != nil {
		t.Fatalf("SaveMediaSet() returned error: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), "media_recommendations_") {
		t.Errorf("SaveMediaSet() wrote %q, want a media_recommendations_ prefix", path)
	}

	loaded, err := LoadMediaSet(path)
	if err != nil {
		t.Fatalf("LoadMediaSet() returned error: %v", err)
	}
	if !reflect.DeepEqual(set, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", set, loaded)
	}
}

func TestLoadBookSetRejectsCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadBookSet(path); err == nil {
		t.Error("LoadBookSet() accepted a corrupt artifact")
	}
}

func TestLoadBookSetRejectsInvalidSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.json")

	// Two books: under the cardinality bound
	data := []byte(`{
		"run_id": "test",
		"created_at": "2026-08-24T00:00:00Z",
		"recommendations": [
			{"title": "A", "author": "B", "genre": "C", "description": "D", "reason": "E"},
			{"title": "A", "author": "B", "genre": "C", "description": "D", "reason": "E"}
		]
	}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadBookSet(path)
	if err == nil || !strings.Contains(err.Error(), "validation") {
		t.Errorf("LoadBookSet() error = %v, want a validation failure", err)
	}
}

func TestDistinctRunIDs(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	set := sampleMediaSet()
	if _, err := w.SaveMediaSet(set); err != nil {
		t.Fatal(err)
	}
	// Same second means same filename stem; the artifact content still
	// carries a fresh run id each time.
	path, err := w.SaveMediaSet(set)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "run_id") {
		t.Error("artifact is missing its run_id")
	}
}
