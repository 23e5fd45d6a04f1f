package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bilumvv/bilum/pkg/cerr"
)

type Server struct {
	resetter *Resetter
}

func NewServer(resetter *Resetter) *Server {
	return &Server{resetter: resetter}
}

func (s *Server) Routes(r chi.Router) {
	r.Post("/admin/clear-all", s.handleClearAll)
}

func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.resetter.ClearAll(ctx); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"cleared": true})
}
