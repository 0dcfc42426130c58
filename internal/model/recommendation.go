package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinBookRecommendations is the smallest acceptable recommendation set
	MinBookRecommendations = 3
	// MaxBookRecommendations is the largest acceptable recommendation set
	MaxBookRecommendations = 5
)

// RecommendationRequest carries the user's free-text reading thought.
type RecommendationRequest struct {
	Thought string `json:"thought"`
}

// BookRecommendation is a single recommended book with the reason it matches.
type BookRecommendation struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// Validate checks that every field of the recommendation is filled in.
func (b *BookRecommendation) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", b.Title},
		{"author", b.Author},
		{"genre", b.Genre},
		{"description", b.Description},
		{"reason", b.Reason},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("book recommendation: %s is required", f.name)
		}
	}
	return nil
}

// BookRecommendationSet is an ordered set of 3-5 book recommendations.
// A set outside that bound is invalid as a whole and must never be
// truncated or padded into shape.
type BookRecommendationSet struct {
	Recommendations []BookRecommendation `json:"recommendations"`
}

// Validate checks the cardinality bound and every contained record.
func (s *BookRecommendationSet) Validate() error {
	n := len(s.Recommendations)
	if n < MinBookRecommendations || n > MaxBookRecommendations {
		return fmt.Errorf("recommendation set: got %d books, want between %d and %d",
			n, MinBookRecommendations, MaxBookRecommendations)
	}
	for i := range s.Recommendations {
		if err := s.Recommendations[i].Validate(); err != nil {
			return fmt.Errorf("recommendation %d: %w", i+1, err)
		}
	}
	return nil
}

// MovieRecommendation is a movie thematically linked to a book.
type MovieRecommendation struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// Validate checks that every field of the movie is filled in.
func (m *MovieRecommendation) Validate() error {
	return validateMediaFields("movie", m.Title, "year", m.Year, m.Description, m.Reason)
}

// GameRecommendation is a video game thematically linked to a book.
type GameRecommendation struct {
	Title       string `json:"title"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// Validate checks that every field of the game is filled in.
func (g *GameRecommendation) Validate() error {
	return validateMediaFields("game", g.Title, "platform", g.Platform, g.Description, g.Reason)
}

// SongRecommendation is a song thematically linked to a book.
type SongRecommendation struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// Validate checks that every field of the song is filled in.
func (s *SongRecommendation) Validate() error {
	return validateMediaFields("song", s.Title, "artist", s.Artist, s.Description, s.Reason)
}

// CrossDomainMediaSet is the fixed movie/game/song triple for a chosen book.
// All three slots are mandatory; a partial set is invalid.
type CrossDomainMediaSet struct {
	Movie MovieRecommendation `json:"movie"`
	Game  GameRecommendation  `json:"game"`
	Song  SongRecommendation  `json:"song"`
}

// Validate checks that all three slots are present and complete.
func (s *CrossDomainMediaSet) Validate() error {
	if s.Movie == (MovieRecommendation{}) {
		return errors.New("media set: movie is missing")
	}
	if err := s.Movie.Validate(); err != nil {
		return fmt.Errorf("media set: %w", err)
	}
	if s.Game == (GameRecommendation{}) {
		return errors.New("media set: game is missing")
	}
	if err := s.Game.Validate(); err != nil {
		return fmt.Errorf("media set: %w", err)
	}
	if s.Song == (SongRecommendation{}) {
		return errors.New("media set: song is missing")
	}
	if err := s.Song.Validate(); err != nil {
		return fmt.Errorf("media set: %w", err)
	}
	return nil
}

func validateMediaFields(kind, title, attrName, attr, description, reason string) error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", title},
		{attrName, attr},
		{"description", description},
		{"reason", reason},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: %s is required", kind, f.name)
		}
	}
	return nil
}
