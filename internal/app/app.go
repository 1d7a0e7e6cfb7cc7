package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SiphoChris/afrilex/internal/adapter/postgres"
	audiorepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/audio"
	auditrepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/audit"
	dictionaryrepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/dictionary"
	userrepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/user"
	wordrepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/word"
	"github.com/SiphoChris/afrilex/internal/auth"
	"github.com/SiphoChris/afrilex/internal/config"
	"github.com/SiphoChris/afrilex/internal/draft"
	"github.com/SiphoChris/afrilex/internal/editor"
	"github.com/SiphoChris/afrilex/internal/service/dashboard"
	"github.com/SiphoChris/afrilex/internal/service/dictionary"
	"github.com/SiphoChris/afrilex/internal/service/user"
	"github.com/SiphoChris/afrilex/internal/service/word"
	"github.com/SiphoChris/afrilex/internal/transport/dataloader"
	"github.com/SiphoChris/afrilex/internal/transport/graphql"
	"github.com/SiphoChris/afrilex/internal/transport/graphql/resolver"
	"github.com/SiphoChris/afrilex/internal/transport/middleware"
	"github.com/SiphoChris/afrilex/internal/transport/rest"
	"github.com/SiphoChris/afrilex/internal/wordform"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	srv := newServer(cfg, pool, logger)
	defer srv.close()

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      srv.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serverErr:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// server holds the wired handler and the background workers that must be
// stopped on shutdown.
type server struct {
	handler http.Handler
	closers []func()
}

func (s *server) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func newServer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *server {
	srv := &server{}

	// Repositories
	dictionaries := dictionaryrepo.New(pool)
	words := wordrepo.New(pool)
	users := userrepo.New(pool)
	audio := audiorepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Draft sessions
	dictionaryDrafts := draft.New[*editor.Editor](cfg.Drafts.TTL, cfg.Drafts.MaxPerUser)
	wordDrafts := draft.New[*wordform.Form](cfg.Drafts.TTL, cfg.Drafts.MaxPerUser)
	dictionaryDrafts.StartJanitor(cfg.Drafts.CleanupInterval)
	wordDrafts.StartJanitor(cfg.Drafts.CleanupInterval)
	srv.closers = append(srv.closers, dictionaryDrafts.Stop, wordDrafts.Stop)

	// Services
	dictionarySvc := dictionary.NewService(logger, dictionaries, words, audit, tx, dictionaryDrafts)
	wordSvc := word.NewService(logger, words, dictionaries, audio, audit, tx, wordDrafts, cfg.Media, cfg.Browse)
	userSvc := user.NewService(logger, users, audit, tx, cfg.Auth.TouchInterval)
	dashboardSvc := dashboard.NewService(logger, dictionaries, words, users, audit)

	// Transport
	res := resolver.NewResolver(logger, dictionarySvc, wordSvc, dashboardSvc)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	srv.closers = append(srv.closers, limiter.Stop)

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion(), map[string]rest.SessionCounter{
			"dictionary_drafts": dictionaryDrafts,
			"word_drafts":       wordDrafts,
		}),
		Dictionary: rest.NewDictionaryHandler(dictionarySvc, logger),
		Word:       rest.NewWordHandler(wordSvc, cfg.Media.MaxAudioBytes, logger),
		Browse:     rest.NewBrowseHandler(wordSvc, cfg.Browse, cfg.Preferences, logger),
		Admin:      rest.NewAdminHandler(dashboardSvc, userSvc, logger),
		GraphQL:    graphql.NewHandler(res.Objects(), logger),
	}, rest.RouterOptions{
		PublicLimit: limiter.Limit("public", cfg.RateLimit.PublicPerMinute),
		UploadLimit: limiter.Limit("upload", cfg.RateLimit.UploadPerMinute),
		Loaders:     dataloader.Middleware(&dataloader.Repos{User: users, Dictionary: dictionaries}),
		MediaPrefix: cfg.Media.PublicPrefix,
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	srv.handler = middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Skip(middleware.IsProbe, middleware.Logger(logger)),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Identity(userSvc, logger),
	)(router)

	return srv
}
