package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"

	server "github.com/bilumvv/bilum/internal"
	"github.com/bilumvv/bilum/internal/admin"
	"github.com/bilumvv/bilum/internal/ai"
	"github.com/bilumvv/bilum/internal/announcement"
	announcementrepo "github.com/bilumvv/bilum/internal/announcement/repositoryimpl"
	"github.com/bilumvv/bilum/internal/config"
	"github.com/bilumvv/bilum/internal/forum"
	forumrepo "github.com/bilumvv/bilum/internal/forum/repositoryimpl"
	"github.com/bilumvv/bilum/internal/language"
	languagerepo "github.com/bilumvv/bilum/internal/language/repositoryimpl"
	"github.com/bilumvv/bilum/internal/permission"
	"github.com/bilumvv/bilum/internal/sentence"
	sentencerepo "github.com/bilumvv/bilum/internal/sentence/repositoryimpl"
	"github.com/bilumvv/bilum/internal/session"
	sessionrepo "github.com/bilumvv/bilum/internal/session/repositoryimpl"
	"github.com/bilumvv/bilum/internal/settings"
	settingsrepo "github.com/bilumvv/bilum/internal/settings/repositoryimpl"
	"github.com/bilumvv/bilum/internal/translation"
	translationrepo "github.com/bilumvv/bilum/internal/translation/repositoryimpl"
	"github.com/bilumvv/bilum/internal/user"
	userrepo "github.com/bilumvv/bilum/internal/user/repositoryimpl"
	"github.com/bilumvv/bilum/internal/usergroup"
	usergrouprepo "github.com/bilumvv/bilum/internal/usergroup/repositoryimpl"
	"github.com/bilumvv/bilum/internal/word"
	wordrepo "github.com/bilumvv/bilum/internal/word/repositoryimpl"
	"github.com/bilumvv/bilum/pkg/clog"
	"github.com/bilumvv/bilum/pkg/storage"
)

var (
	app     = kingpin.New("bilum-server", "Storage and permission backend for the Bilum translation platform.")
	dataDir = app.Flag("data-dir", "Override the storage directory.").String()
	port    = app.Flag("port", "Override the HTTP port.").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		env.StorageEnv.BaseDir = *dataDir
	}
	if *port != "" {
		env.BaseEnv.HTTPPort = *port
	}

	// Setup logger
	level := env.SlogLevel()
	var handler slog.Handler
	if env.Env == "local" {
		handler = clog.NewTextHandler(os.Stderr, clog.WithLevel(level))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(clog.NewAttributesHandler(handler)))

	// Setup storage
	var store storage.Storage
	switch env.StorageEnv.Type {
	case "s3":
		store, err = storage.NewS3Storage(context.Background(), env.StorageEnv.S3Bucket, env.StorageEnv.S3Prefix, env.StorageEnv.S3Region)
		if err != nil {
			slog.Error("failed to create S3 storage", "error", err)
			os.Exit(1)
		}
	case "memory":
		store = storage.NewMemoryStorage()
	default:
		store, err = storage.NewLocalStorage(env.StorageEnv.BaseDir)
		if err != nil {
			slog.Error("failed to create local storage", "error", err)
			os.Exit(1)
		}
	}

	// Setup repositories
	sentenceRepo := sentencerepo.NewJSONRepository(store)
	translationRepo := translationrepo.NewJSONRepository(store)
	wordRepo := wordrepo.NewJSONRepository(store)
	wordTranslationRepo := wordrepo.NewTranslationJSONRepository(store)
	announcementRepo := announcementrepo.NewJSONRepository(store)
	forumRepo := forumrepo.NewJSONRepository(store)
	userRepo := userrepo.NewJSONRepository(store)
	userGroupRepo := usergrouprepo.NewJSONRepository(store)
	settingsRepo := settingsrepo.NewJSONRepository(store)
	languageRepo := languagerepo.NewJSONRepository(store)
	sessionRepo := sessionrepo.NewJSONRepository(store)

	// Setup permission resolution and session tracking
	roleTable, err := permission.LoadRoleTable()
	if err != nil {
		slog.Error("failed to load role table", "error", err)
		os.Exit(1)
	}
	resolver := permission.NewResolver(roleTable, userGroupRepo)
	holder := session.NewHolder(sessionRepo, resolver)

	// Setup AI gateway
	gateway := ai.NewGateway(settingsRepo, env.AIEnv.AIAPIKey, env.AIEnv.AIModel)

	// Setup servers
	srv := server.NewServer(
		env,
		sentence.NewServer(sentenceRepo),
		translation.NewServer(translationRepo),
		word.NewServer(wordRepo, wordTranslationRepo),
		announcement.NewServer(announcementRepo),
		forum.NewServer(forumRepo),
		user.NewServer(userRepo, holder),
		usergroup.NewServer(userGroupRepo, holder),
		settings.NewServer(settingsRepo),
		language.NewServer(languageRepo),
		session.NewServer(holder),
		ai.NewServer(gateway, languageRepo),
		admin.NewServer(admin.NewResetter(store)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(ctx)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
