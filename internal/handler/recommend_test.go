package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nicholas-gates/book-recommendations/internal/model"
	"github.com/nicholas-gates/book-recommendations/internal/recommender"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubBookRecommender struct {
	set *model.BookRecommendationSet
	err error
}

func (s *stubBookRecommender) Recommend(ctx context.Context, req *model.RecommendationRequest) (*model.BookRecommendationSet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.set, nil
}

type stubMediaSuggester struct {
	set *model.CrossDomainMediaSet
	err error
}

func (s *stubMediaSuggester) Suggest(ctx context.Context, book *model.BookRecommendation) (*model.CrossDomainMediaSet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.set, nil
}

func setRecommenders(t *testing.T, b BookRecommender, m MediaSuggester) {
	t.Helper()
	recommenderMu.Lock()
	bookRecommender = b
	mediaRecommender = m
	recommenderMu.Unlock()
	t.Cleanup(func() {
		recommenderMu.Lock()
		bookRecommender = nil
		mediaRecommender = nil
		recommenderMu.Unlock()
	})
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/recommendations", HandleRecommend)
	r.POST("/api/recommendations/media", HandleMedia)
	r.GET("/health", HandleHealth)
	r.GET("/ready", HandleReadiness)
	return r
}

func handlerBookSet() *model.BookRecommendationSet {
	book := model.BookRecommendation{
		Title:       "The Three-Body Problem",
		Author:      "Liu Cixin",
		Genre:       "Science Fiction",
		Description: "Earth's first contact unfolds across decades of physics and politics.",
		Reason:      "A first-contact epic with real scientific texture.",
	}
	return &model.BookRecommendationSet{
		Recommendations: []model.BookRecommendation{book, book, book},
	}
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleRecommend(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		stub       *stubBookRecommender
		wantStatus int
		wantCode   string
	}{
		{
			name:       "valid request",
			body:       `{"thought": "first contact with aliens"}`,
			stub:       &stubBookRecommender{set: handlerBookSet()},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing thought",
			body:       `{}`,
			stub:       &stubBookRecommender{set: handlerBookSet()},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "whitespace thought",
			body:       `{"thought": "   "}`,
			stub:       &stubBookRecommender{set: handlerBookSet()},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "overlong thought",
			body:       `{"thought": "` + strings.Repeat("a", 501) + `"}`,
			stub:       &stubBookRecommender{set: handlerBookSet()},
			wantStatus: http.StatusBadRequest,
			wantCode:   "THOUGHT_TOO_LONG",
		},
		{
			name:       "backend unreachable",
			body:       `{"thought": "anything"}`,
			stub:       &stubBookRecommender{err: &recommender.BackendError{Err: context.DeadlineExceeded}},
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "TIMEOUT",
		},
		{
			name:       "invalid set from backend",
			body:       `{"thought": "anything"}`,
			stub:       &stubBookRecommender{err: &recommender.InvalidSetError{Reason: errors.New("got 2 recommendations")}},
			wantStatus: http.StatusBadGateway,
			wantCode:   "INVALID_RESPONSE",
		},
		{
			name:       "gemini quota exhausted",
			body:       `{"thought": "anything"}`,
			stub:       &stubBookRecommender{err: &recommender.BackendError{Err: status.Error(codes.ResourceExhausted, "quota exceeded")}},
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "GEMINI_RATE_LIMITED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRecommenders(t, tt.stub, &stubMediaSuggester{})
			r := newRouter()

			w := postJSON(t, r, "/api/recommendations", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantCode != "" {
				var resp map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to parse response: %v", err)
				}
				if resp["code"] != tt.wantCode {
					t.Errorf("code = %v, want %q", resp["code"], tt.wantCode)
				}
				return
			}

			var set model.BookRecommendationSet
			if err := json.Unmarshal(w.Body.Bytes(), &set); err != nil {
				t.Fatalf("failed to parse set: %v", err)
			}
			if err := set.Validate(); err != nil {
				t.Errorf("response set failed validation: %v", err)
			}
		})
	}
}

func TestHandleRecommendUnavailable(t *testing.T) {
	// No recommender initialized
	r := newRouter()

	w := postJSON(t, r, "/api/recommendations", `{"thought": "anything"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestHandleMedia(t *testing.T) {
	mediaSet := &model.CrossDomainMediaSet{
		Movie: model.MovieRecommendation{Title: "Arrival", Year: "2016", Description: "d", Reason: "r"},
		Game:  model.GameRecommendation{Title: "Outer Wilds", Platform: "PC", Description: "d", Reason: "r"},
		Song:  model.SongRecommendation{Title: "Space Oddity", Artist: "David Bowie", Description: "d", Reason: "r"},
	}

	t.Run("valid book", func(t *testing.T) {
		setRecommenders(t, &stubBookRecommender{}, &stubMediaSuggester{set: mediaSet})
		r := newRouter()

		body := `{"title": "Contact", "author": "Carl Sagan", "genre": "Science Fiction", "description": "First contact via radio."}`
		w := postJSON(t, r, "/api/recommendations/media", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
		}

		var set model.CrossDomainMediaSet
		if err := json.Unmarshal(w.Body.Bytes(), &set); err != nil {
			t.Fatalf("failed to parse set: %v", err)
		}
		if err := set.Validate(); err != nil {
			t.Errorf("response set failed validation: %v", err)
		}
	})

	t.Run("incomplete book", func(t *testing.T) {
		setRecommenders(t, &stubBookRecommender{}, &stubMediaSuggester{set: mediaSet})
		r := newRouter()

		w := postJSON(t, r, "/api/recommendations/media", `{"title": "Contact"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp["code"] != "INVALID_BOOK" {
			t.Errorf("code = %v, want INVALID_BOOK", resp["code"])
		}
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("ready when initialized", func(t *testing.T) {
		setRecommenders(t, &stubBookRecommender{}, &stubMediaSuggester{})
		r := newRouter()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		if w.Code != http.StatusOK {
			t.Errorf("/ready status = %d, want 200", w.Code)
		}

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"healthy"`) {
			t.Errorf("/health = %d %s, want healthy", w.Code, w.Body.String())
		}
	})

	t.Run("degraded when uninitialized", func(t *testing.T) {
		r := newRouter()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("/ready status = %d, want 503", w.Code)
		}

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if !strings.Contains(w.Body.String(), `"degraded"`) {
			t.Errorf("/health body = %s, want degraded", w.Body.String())
		}
	})
}
