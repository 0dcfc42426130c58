package recommender

import (
	"google.golang.org/genai"

	"github.com/nicholas-gates/book-recommendations/internal/model"
)

// bookSetSchema constrains the backend response to the recommendation-set
// shape. The cardinality bound is enforced again locally; the schema keeps
// the model honest at the source.
func bookSetSchema() *genai.Schema {
	book := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString, Description: "Book title"},
			"author":      {Type: genai.TypeString, Description: "Book author"},
			"genre":       {Type: genai.TypeString, Description: "Primary genre of the book"},
			"description": {Type: genai.TypeString, Description: "Detailed description of the book"},
			"reason":      {Type: genai.TypeString, Description: "Specific reason why this book matches the request"},
		},
		Required: []string{"title", "author", "genre", "description", "reason"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendations": {
				Type:     genai.TypeArray,
				Items:    book,
				MinItems: genai.Ptr[int64](model.MinBookRecommendations),
				MaxItems: genai.Ptr[int64](model.MaxBookRecommendations),
			},
		},
		Required: []string{"recommendations"},
	}
}

// mediaSetSchema constrains the backend response to the movie/game/song
// triple. All three slots are required.
func mediaSetSchema() *genai.Schema {
	media := func(attrName, attrDescription string) *genai.Schema {
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":       {Type: genai.TypeString, Description: "Title"},
				attrName:      {Type: genai.TypeString, Description: attrDescription},
				"description": {Type: genai.TypeString, Description: "Engaging, informative description"},
				"reason":      {Type: genai.TypeString, Description: "The thematic connection to the book"},
			},
			Required: []string{"title", attrName, "description", "reason"},
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"movie": media("year", "Release year"),
			"game":  media("platform", "Platform the game is available on"),
			"song":  media("artist", "Performing artist"),
		},
		Required: []string{"movie", "game", "song"},
	}
}
