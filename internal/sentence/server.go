package sentence

import (
	"encoding/json"
	"net/http"

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
	r.Get("/sentences", s.handleList)
	r.Post("/sentences", s.handleSave)
	r.Post("/sentences/import", s.handleImport)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sentences, err := s.repo.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if sentences == nil {
		sentences = []Sentence{}
	}
	cerr.SetJSONResponse(ctx, sentences)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var sen Sentence
	if err := json.NewDecoder(r.Body).Decode(&sen); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if sen.English == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "english text is required", nil)
		return
	}
	if sen.ID == "" {
		sen.ID = ulid.Make().String()
	}
	if err := s.repo.Save(ctx, &sen); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, sen)
}

// importRecord tolerates the field names seen in exported datasets.
type importRecord struct {
	ID       string `json:"id"`
	English  string `json:"english"`
	Sentence string `json:"sentence"`
	Text     string `json:"text"`
}

func (rec *importRecord) english() string {
	switch {
	case rec.English != "":
		return rec.English
	case rec.Sentence != "":
		return rec.Sentence
	default:
		return rec.Text
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var records []importRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid import file", err)
		return
	}
	sentences := make([]Sentence, 0, len(records))
	for _, rec := range records {
		english := rec.english()
		if english == "" {
			continue
		}
		id := rec.ID
		if id == "" {
			id = ulid.Make().String()
		}
		sentences = append(sentences, Sentence{ID: id, English: english})
	}
	if err := s.repo.ReplaceAll(ctx, sentences); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]int{"imported": len(sentences)})
}
