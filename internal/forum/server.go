package forum

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/bilumvv/bilum/pkg/cerr"
)

type Server struct {
	repo Repository
}

func NewServer(repo Repository) *Server {
	return &Server{repo: repo}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/forum-topics", s.handleList)
	r.Post("/forum-topics", s.handleSave)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	topics, err := s.repo.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if topics == nil {
		topics = []Topic{}
	}
	cerr.SetJSONResponse(ctx, topics)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var t Topic
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if t.Title == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "title is required", nil)
		return
	}
	if t.ID == "" {
		t.ID = ulid.Make().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	for i := range t.Posts {
		if t.Posts[i].ID == "" {
			t.Posts[i].ID = ulid.Make().String()
		}
		if t.Posts[i].CreatedAt.IsZero() {
			t.Posts[i].CreatedAt = time.Now()
		}
	}
	if err := s.repo.Save(ctx, &t); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, t)
}
