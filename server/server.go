// Package server exposes cached feeds, interactions and RSS over HTTP
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/hnreader/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed_service.go -pkg mocks -skip-ensure -fmt goimports . FeedService
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/interactions.go -pkg mocks -skip-ensure -fmt goimports . Interactions
//go:generate moq -out mocks/user_provider.go -pkg mocks -skip-ensure -fmt goimports . UserProvider

const (
	defaultListLimit = 100
	defaultRSSLimit  = 30
	// statusClientClosed is written when the client went away before the response was ready
	statusClientClosed = 499
)

// Server represents HTTP server instance
type Server struct {
	Services
	config  ConfigProvider
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Services defines what the handlers are backed by
type Services struct {
	Feeds    FeedService
	Store    Store
	Actions  Interactions
	Users    UserProvider             // optional, user lookups return 404 without it
	Remotes  map[string]RemoteChecker // optional, reported by status with ?remote=true
	RSSLimit int                      // articles per RSS feed, defaultRSSLimit if zero
	BaseURL  string                   // public address used in RSS links, derived from the request if empty
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// FeedService syncs feeds and serves pages
type FeedService interface {
	FetchFeedPage(ctx context.Context, category domain.FeedCategory, page int) (domain.FeedPage, error)
	RefreshFeed(ctx context.Context, category domain.FeedCategory) (domain.FeedPage, error)
	SyncSearchFeed(ctx context.Context, limit int) ([]domain.SearchArticle, error)
}

// Store provides read access to the local cache
type Store interface {
	GetFeedPage(ctx context.Context, category domain.FeedCategory, limit, offset int) ([]domain.FeedArticle, error)
	GetFeedArticle(ctx context.Context, id int64) (*domain.FeedArticle, error)
	GetSavedArticles(ctx context.Context, limit int) ([]domain.FeedArticle, error)
	GetFavoriteArticles(ctx context.Context, limit int) ([]domain.FeedArticle, error)
	GetUnreadArticles(ctx context.Context, limit int) ([]domain.FeedArticle, error)
	SearchFeedArticles(ctx context.Context, query string, limit int) ([]domain.FeedArticle, error)
	Stats(ctx context.Context) (domain.Stats, error)
	GetSearchFavorites(ctx context.Context) ([]domain.SearchArticle, error)
	GetSearchDeleted(ctx context.Context) ([]domain.SearchArticle, error)
	Ping(ctx context.Context) error
}

// Interactions applies user actions to cached articles
type Interactions interface {
	MarkRead(ctx context.Context, id int64) error
	MarkUnread(ctx context.Context, id int64) error
	Save(ctx context.Context, id int64) error
	Unsave(ctx context.Context, id int64) error
	Favorite(ctx context.Context, id int64) error
	Unfavorite(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	DeleteSearch(ctx context.Context, id string) error
	RestoreSearch(ctx context.Context, id string) error
	ToggleSearchFavorite(ctx context.Context, id string) error
}

// UserProvider looks up upstream user profiles
type UserProvider interface {
	FetchUser(ctx context.Context, name string) (*domain.User, error)
}

// RemoteChecker reports reachability of a remote API
type RemoteChecker interface {
	Ping(ctx context.Context) bool
}

// New initializes a new server instance
func New(cfg ConfigProvider, services Services, version string, debug bool) *Server {
	if services.RSSLimit <= 0 {
		services.RSSLimit = defaultRSSLimit
	}
	s := &Server{
		Services: services,
		config:   cfg,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("hnreader", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /stats", s.statsHandler)

		r.HandleFunc("GET /feeds/{category}", s.feedPageHandler)
		r.HandleFunc("POST /feeds/{category}/refresh", s.refreshFeedHandler)

		r.HandleFunc("GET /articles/saved", s.articleListHandler(listSaved))
		r.HandleFunc("GET /articles/favorites", s.articleListHandler(listFavorites))
		r.HandleFunc("GET /articles/unread", s.articleListHandler(listUnread))
		r.HandleFunc("GET /articles/search", s.articleSearchHandler)
		r.HandleFunc("GET /articles/{id}", s.articleHandler)
		r.HandleFunc("POST /articles/{id}/{action}", s.articleActionHandler)
		r.HandleFunc("DELETE /articles/{id}", s.articleDeleteHandler)

		r.HandleFunc("GET /search", s.searchFeedHandler)
		r.HandleFunc("GET /search/favorites", s.searchListHandler(true))
		r.HandleFunc("GET /search/deleted", s.searchListHandler(false))
		r.HandleFunc("POST /search/{id}/{action}", s.searchActionHandler)

		r.HandleFunc("GET /users/{name}", s.userHandler)
	})

	s.router.HandleFunc("GET /rss/{category}", s.rssHandler)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}

// handleError maps service errors to responses. Cancelled requests get no body,
// the client is gone and nothing is logged above debug.
func handleError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, context.Canceled):
		lgr.Printf("[DEBUG] %s cancelled by client", op)
		w.WriteHeader(statusClientClosed)
	case errors.Is(err, domain.ErrUnknownCategory):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	default:
		lgr.Printf("[ERROR] failed to %s: %v", op, err)
		renderError(w, r, fmt.Errorf("failed to %s", op), http.StatusInternalServerError)
	}
}
