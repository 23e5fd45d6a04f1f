package user

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/bilumvv/bilum/internal/permission"
	"github.com/bilumvv/bilum/pkg/cerr"
)

// ActiveSession exposes the session holder to the account handlers. Editing
// the logged-in user's record must re-login with the saved record so the
// cached permission set picks up the new role and groups; re-resolving from
// the old snapshot would keep the old ones.
type ActiveSession interface {
	Current(ctx context.Context) (*User, error)
	Login(ctx context.Context, u User) (*User, error)
}

type Server struct {
	repo    Repository
	session ActiveSession
}

func NewServer(repo Repository, session ActiveSession) *Server {
	return &Server{
		repo:    repo,
		session: session,
	}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/users", s.handleList)
	r.Get("/users/{id}", s.handleGet)
	r.Post("/users", s.handleSave)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	users, err := s.repo.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if users == nil {
		users = []User{}
	}
	cerr.SetJSONResponse(ctx, users)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	u, err := s.repo.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, u)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var su StoredUser
	if err := json.NewDecoder(r.Body).Decode(&su); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if su.Email == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "email is required", nil)
		return
	}
	if su.Role == "" {
		su.Role = permission.RoleTranslator
	}
	if su.ID == "" {
		su.ID = ulid.Make().String()
	}
	if err := s.repo.Save(ctx, &su); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	// When the edited record is the logged-in user, re-login with the saved
	// record so the session's cached permissions reflect the new role and
	// groups rather than the old snapshot's.
	current, err := s.session.Current(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if current != nil && current.ID == su.ID {
		if _, err := s.session.Login(ctx, su.Public()); err != nil {
			cerr.SetJSONError(ctx, err)
			return
		}
	}
	cerr.SetJSONResponse(ctx, su.Public())
}
