package usergroup

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/bilumvv/bilum/internal/user"
	"github.com/bilumvv/bilum/pkg/cerr"
)

// SessionRefresher recomputes the active session's permissions after group
// definitions change. Implemented by the session holder.
type SessionRefresher interface {
	Refresh(ctx context.Context) (*user.User, error)
}

type Server struct {
	repo      Repository
	refresher SessionRefresher
}

func NewServer(repo Repository, refresher SessionRefresher) *Server {
	return &Server{
		repo:      repo,
		refresher: refresher,
	}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/user-groups", s.handleList)
	r.Post("/user-groups", s.handleSave)
	r.Delete("/user-groups/{id}", s.handleDelete)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groups, err := s.repo.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if groups == nil {
		groups = []UserGroup{}
	}
	cerr.SetJSONResponse(ctx, groups)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var g UserGroup
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if g.Name == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "name is required", nil)
		return
	}
	if g.ID == "" {
		g.ID = ulid.Make().String()
	}
	if err := s.repo.Save(ctx, &g); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if _, err := s.refresher.Refresh(ctx); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, g)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.repo.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if _, err := s.refresher.Refresh(ctx); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"deleted": true})
}
