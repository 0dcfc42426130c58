// Package cli drives the interactive console flow: read a reading thought,
// show 3-5 book panels, let the user pick one, then show the cross-domain
// movie/game/song triple. Every run writes a JSON artifact.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nicholas-gates/book-recommendations/internal/archive"
	"github.com/nicholas-gates/book-recommendations/internal/intent"
	"github.com/nicholas-gates/book-recommendations/internal/model"
)

// BookRecommender generates validated book recommendation sets
type BookRecommender interface {
	Recommend(ctx context.Context, req *model.RecommendationRequest) (*model.BookRecommendationSet, error)
}

// MediaSuggester generates validated cross-domain media sets
type MediaSuggester interface {
	Suggest(ctx context.Context, book *model.BookRecommendation) (*model.CrossDomainMediaSet, error)
}

// ErrQuit is returned by selection parsing when the user asks to leave
var ErrQuit = errors.New("cli: quit requested")

// App drives the interactive recommendation loop
type App struct {
	books  BookRecommender
	media  MediaSuggester
	writer *archive.Writer
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a new console app. writer may be nil to skip artifacts.
func New(books BookRecommender, media MediaSuggester, writer *archive.Writer, in io.Reader, out io.Writer) *App {
	return &App{
		books:  books,
		media:  media,
		writer: writer,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run executes the interactive loop until the user quits or input ends
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, headerStyle.Render("Welcome to the Book Recommendation System!"))
	fmt.Fprintln(a.out, "Share your thoughts on what you'd like to read, and I'll recommend some books.")
	fmt.Fprintln(a.out)

	for {
		line, ok := a.readLine(promptStyle.Render("What kind of book are you looking for? "))
		if !ok {
			return nil
		}
		if isQuit(line) {
			return nil
		}

		req, err := intent.Normalize(line)
		if err != nil {
			fmt.Fprintln(a.out, errorStyle.Render("Please tell me something about what you'd like to read."))
			continue
		}

		fmt.Fprintln(a.out, mutedStyle.Render("Thinking about your request..."))

		set, err := a.books.Recommend(ctx, req)
		if err != nil {
			fmt.Fprintln(a.out, errorStyle.Render("Error getting recommendations: "+err.Error()))
			continue
		}

		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, RenderBookSet(set))
		a.saveBookSet(set)

		selected, ok := a.selectBook(set)
		if !ok {
			continue
		}

		fmt.Fprintln(a.out, mutedStyle.Render("Finding related movies, games and songs..."))

		mediaSet, err := a.media.Suggest(ctx, selected)
		if err != nil {
			fmt.Fprintln(a.out, errorStyle.Render("Error getting media recommendations: "+err.Error()))
			continue
		}

		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, headerStyle.Render("Here are your cross-domain media recommendations:"))
		fmt.Fprint(a.out, RenderMediaSet(mediaSet))
		a.saveMediaSet(mediaSet)
	}
}

// selectBook asks for a 1-based choice until it gets one or the user quits
func (a *App) selectBook(set *model.BookRecommendationSet) (*model.BookRecommendation, bool) {
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, RenderSelectionList(set))

	for {
		line, ok := a.readLine(promptStyle.Render("Enter the number of your choice (or 'q' to skip): "))
		if !ok {
			return nil, false
		}

		index, err := ParseSelection(line, len(set.Recommendations))
		if errors.Is(err, ErrQuit) {
			return nil, false
		}
		if err != nil {
			fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
			continue
		}

		return &set.Recommendations[index], true
	}
}

func (a *App) saveBookSet(set *model.BookRecommendationSet) {
	if a.writer == nil {
		return
	}
	path, err := a.writer.SaveBookSet(set)
	if err != nil {
		fmt.Fprintln(a.out, errorStyle.Render("Warning: could not save recommendations: "+err.Error()))
		return
	}
	fmt.Fprintln(a.out, mutedStyle.Render("Recommendations saved to "+path))
}

func (a *App) saveMediaSet(set *model.CrossDomainMediaSet) {
	if a.writer == nil {
		return
	}
	path, err := a.writer.SaveMediaSet(set)
	if err != nil {
		fmt.Fprintln(a.out, errorStyle.Render("Warning: could not save media recommendations: "+err.Error()))
		return
	}
	fmt.Fprintln(a.out, mutedStyle.Render("Media recommendations saved to "+path))
}

// readLine prints the prompt and reads one line; ok is false on EOF
func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		fmt.Fprintln(a.out)
		return "", false
	}
	return a.in.Text(), true
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

// ParseSelection parses a 1-based selection against a list of n items and
// returns the 0-based index. Quit words return ErrQuit.
func ParseSelection(input string, n int) (int, error) {
	if isQuit(input) {
		return 0, ErrQuit
	}

	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.New("Please enter a valid number.")
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("Invalid choice. Please pick a number between 1 and %d.", n)
	}
	return choice - 1, nil
}
