package word

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/bilumvv/bilum/pkg/cerr"
)

type Server struct {
	words        Repository
	translations TranslationRepository
}

func NewServer(words Repository, translations TranslationRepository) *Server {
	return &Server{
		words:        words,
		translations: translations,
	}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/words", s.handleListWords)
	r.Post("/words", s.handleSaveWord)
	r.Get("/word-translations", s.handleListEntries)
	r.Post("/word-translations", s.handleSaveEntry)
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	words, err := s.words.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if words == nil {
		words = []Word{}
	}
	cerr.SetJSONResponse(ctx, words)
}

func (s *Server) handleSaveWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var wd Word
	if err := json.NewDecoder(r.Body).Decode(&wd); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if wd.Text == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "text is required", nil)
		return
	}
	wd.NormalizedText = Normalize(wd.Text)
	if err := s.words.Save(ctx, &wd); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, wd)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := s.translations.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if entries == nil {
		entries = []WordTranslation{}
	}
	cerr.SetJSONResponse(ctx, entries)
}

func (s *Server) handleSaveEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var wt WordTranslation
	if err := json.NewDecoder(r.Body).Decode(&wt); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if wt.Word == "" || wt.Text == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "word and text are required", nil)
		return
	}
	wt.Word = Normalize(wt.Word)
	if wt.ID == "" {
		wt.ID = ulid.Make().String()
	}
	if err := s.translations.Save(ctx, &wt); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, wt)
}
