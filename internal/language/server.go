package language

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bilumvv/bilum/pkg/cerr"
)

type Server struct {
	repo Repository
}

func NewServer(repo Repository) *Server {
	return &Server{repo: repo}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/target-language", s.handleGet)
	r.Put("/target-language", s.handleSet)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	current, err := s.repo.Get(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, current)
}

func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var next TargetLanguage
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if next.Code == "" || next.Name == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "code and name are required", nil)
		return
	}
	if err := s.repo.Set(ctx, next); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, next)
}
