package ai

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bilumvv/bilum/internal/language"
	"github.com/bilumvv/bilum/pkg/cerr"
)

type Server struct {
	gateway  *Gateway
	language language.Repository
}

func NewServer(gateway *Gateway, languageRepo language.Repository) *Server {
	return &Server{
		gateway:  gateway,
		language: languageRepo,
	}
}

func (s *Server) Routes(r chi.Router) {
	r.Post("/ai/suggest", s.handleSuggest)
	r.Post("/ai/validate", s.handleValidate)
}

type suggestRequest struct {
	Sentence string `json:"sentence"`
}

type suggestResponse struct {
	Suggestion string `json:"suggestion"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Sentence == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "sentence is required", nil)
		return
	}
	lang, err := s.language.Get(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	suggestion, err := s.gateway.SuggestTranslation(ctx, req.Sentence, lang)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, suggestResponse{Suggestion: suggestion})
}

type validateRequest struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Original == "" || req.Translation == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "original and translation are required", nil)
		return
	}
	lang, err := s.language.Get(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	result, err := s.gateway.ValidateTranslation(ctx, req.Original, req.Translation, lang)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, result)
}
