package session

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bilumvv/bilum/internal/user"
	"github.com/bilumvv/bilum/pkg/cerr"
)

type Server struct {
	holder *Holder
}

func NewServer(holder *Holder) *Server {
	return &Server{holder: holder}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/session", s.handleCurrent)
	r.Post("/session/login", s.handleLogin)
	r.Post("/session/logout", s.handleLogout)
}

func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	u, err := s.holder.Current(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if u == nil {
		cerr.SetNewJSONError(ctx, cerr.Unauthenticated, "no active session", nil)
		return
	}
	cerr.SetJSONResponse(ctx, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var u user.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if u.ID == "" || u.Role == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "id and role are required", nil)
		return
	}
	logged, err := s.holder.Login(ctx, u)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, logged)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.holder.Logout(ctx); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"logged_out": true})
}
