package cli

import (
	"fmt"
	"strings"

	"github.com/nicholas-gates/book-recommendations/internal/model"
)

// RenderBook renders one recommendation as a bordered panel
func RenderBook(book *model.BookRecommendation) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📚 "+book.Title) + "\n")
	b.WriteString(authorStyle.Render("by "+book.Author) + "\n")
	b.WriteString(genreStyle.Render("Genre: "+book.Genre) + "\n\n")
	b.WriteString(book.Description + "\n\n")
	b.WriteString(reasonStyle.Render("Why this book: " + book.Reason))
	return panelStyle.Render(b.String())
}

// RenderBookSet renders the full recommendation set
func RenderBookSet(set *model.BookRecommendationSet) string {
	var b strings.Builder
	for i := range set.Recommendations {
		b.WriteString(RenderBook(&set.Recommendations[i]))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMediaSet renders the movie/game/song triple
func RenderMediaSet(set *model.CrossDomainMediaSet) string {
	var b strings.Builder
	b.WriteString(renderMedia("🎬 "+set.Movie.Title, "Year: "+set.Movie.Year, set.Movie.Description, set.Movie.Reason))
	b.WriteString("\n")
	b.WriteString(renderMedia("🎮 "+set.Game.Title, "Platform: "+set.Game.Platform, set.Game.Description, set.Game.Reason))
	b.WriteString("\n")
	b.WriteString(renderMedia("🎵 "+set.Song.Title, "Artist: "+set.Song.Artist, set.Song.Description, set.Song.Reason))
	b.WriteString("\n")
	return b.String()
}

func renderMedia(title, attr, description, reason string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(genreStyle.Render(attr) + "\n\n")
	b.WriteString(description + "\n\n")
	b.WriteString(reasonStyle.Render("Why it matches: " + reason))
	return panelStyle.Render(b.String())
}

// RenderSelectionList renders the numbered book list for selection
func RenderSelectionList(set *model.BookRecommendationSet) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Select a book to get related media recommendations:") + "\n")
	for i := range set.Recommendations {
		book := &set.Recommendations[i]
		b.WriteString(fmt.Sprintf("%d. %s by %s\n", i+1, book.Title, book.Author))
	}
	return b.String()
}
