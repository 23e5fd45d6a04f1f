package internal

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/bilumvv/bilum/internal/admin"
	"github.com/bilumvv/bilum/internal/ai"
	"github.com/bilumvv/bilum/internal/announcement"
	"github.com/bilumvv/bilum/internal/config"
	"github.com/bilumvv/bilum/internal/forum"
	"github.com/bilumvv/bilum/internal/language"
	"github.com/bilumvv/bilum/internal/sentence"
	"github.com/bilumvv/bilum/internal/session"
	"github.com/bilumvv/bilum/internal/settings"
	"github.com/bilumvv/bilum/internal/translation"
	"github.com/bilumvv/bilum/internal/user"
	"github.com/bilumvv/bilum/internal/usergroup"
	"github.com/bilumvv/bilum/internal/word"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/clog"
)

type Server struct {
	server             *http.Server
	env                *config.Env
	sentenceServer     *sentence.Server
	translationServer  *translation.Server
	wordServer         *word.Server
	announcementServer *announcement.Server
	forumServer        *forum.Server
	userServer         *user.Server
	userGroupServer    *usergroup.Server
	settingsServer     *settings.Server
	languageServer     *language.Server
	sessionServer      *session.Server
	aiServer           *ai.Server
	adminServer        *admin.Server
}

func NewServer(
	env *config.Env,
	sentenceServer *sentence.Server,
	translationServer *translation.Server,
	wordServer *word.Server,
	announcementServer *announcement.Server,
	forumServer *forum.Server,
	userServer *user.Server,
	userGroupServer *usergroup.Server,
	settingsServer *settings.Server,
	languageServer *language.Server,
	sessionServer *session.Server,
	aiServer *ai.Server,
	adminServer *admin.Server,
) *Server {
	return &Server{
		env:                env,
		sentenceServer:     sentenceServer,
		translationServer:  translationServer,
		wordServer:         wordServer,
		announcementServer: announcementServer,
		forumServer:        forumServer,
		userServer:         userServer,
		userGroupServer:    userGroupServer,
		settingsServer:     settingsServer,
		languageServer:     languageServer,
		sessionServer:      sessionServer,
		aiServer:           aiServer,
		adminServer:        adminServer,
	}
}

// ListenAndServe starts the HTTP server. The provided context is used as the
// base context for all incoming requests via http.Server.BaseContext so a
// shutdown signal reaches in-flight handlers.
func (s *Server) ListenAndServe(ctx context.Context) error {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(
			clog.SlogChiMiddleware(),
			cerr.NewJSONResponseChiMiddleware(),
		)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			cerr.SetNewJSONError(r.Context(), cerr.NotFound, "not found", nil)
		})

		s.sentenceServer.Routes(r)
		s.translationServer.Routes(r)
		s.wordServer.Routes(r)
		s.announcementServer.Routes(r)
		s.forumServer.Routes(r)
		s.userServer.Routes(r)
		s.userGroupServer.Routes(r)
		s.settingsServer.Routes(r)
		s.languageServer.Routes(r)
		s.sessionServer.Routes(r)
		s.aiServer.Routes(r)
		s.adminServer.Routes(r)
	})

	mux := http.NewServeMux()
	mux.Handle("/health", &HealthChecker{})
	mux.Handle("/api/", r)

	addr := net.JoinHostPort(s.env.HTTPHost, s.env.HTTPPort)
	slog.Info("starting server", "addr", addr)

	s.server = &http.Server{
		Addr: addr,
		Handler: cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}).Handler(s.apiKeyMiddleware(mux)),
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type HealthChecker struct{}

func (hc *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			apiKey = r.Header.Get("Authorization")
			if len(apiKey) > 7 && apiKey[:7] == "Bearer " {
				apiKey = apiKey[7:]
			}
		}
		if apiKey != s.env.APIKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
