package prompt

import (
	"fmt"

	"github.com/nicholas-gates/book-recommendations/internal/model"
)

// Builder constructs prompts for the recommenders
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildBookSystemPrompt returns the instruction payload for book recommendations
func (b *Builder) BuildBookSystemPrompt() string {
	return BookSystemPrompt
}

// BuildBookUserPrompt frames the reading thought for the generation call
func (b *Builder) BuildBookUserPrompt(thought string) string {
	return fmt.Sprintf(BookUserPromptFmt, thought)
}

// BuildMediaSystemPrompt returns the instruction payload for the cross-domain flow
func (b *Builder) BuildMediaSystemPrompt() string {
	return MediaSystemPrompt
}

// BuildMediaUserPrompt describes the chosen book for the cross-domain call.
// The book's reason field is deliberately left out: it ties the book to the
// original request, not to the media search.
func (b *Builder) BuildMediaUserPrompt(book *model.BookRecommendation) string {
	return fmt.Sprintf(MediaUserPromptFmt, book.Title, book.Author, book.Genre, book.Description)
}
