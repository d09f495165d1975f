package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/hnreader/pkg/domain"
	"github.com/umputun/hnreader/pkg/remote"
)

type listKind int

const (
	listSaved listKind = iota
	listFavorites
	listUnread
)

// statusHandler returns server status, with ?remote=true it also pings remote APIs
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := rest.JSON{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}

	dbStatus := "ok"
	if err := s.Store.Ping(ctx); err != nil {
		lgr.Printf("[WARN] database ping failed: %v", err)
		dbStatus = "unavailable"
		status["status"] = "degraded"
	}
	status["database"] = dbStatus

	if r.URL.Query().Get("remote") == "true" && len(s.Remotes) > 0 {
		remotes := make(map[string]bool, len(s.Remotes))
		for name, checker := range s.Remotes {
			remotes[name] = checker.Ping(ctx)
		}
		status["remotes"] = remotes
	}

	renderJSON(w, r, http.StatusOK, status)
}

// statsHandler returns article counters of the feed cache
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Store.Stats(r.Context())
	if err != nil {
		handleError(w, r, err, "get stats")
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// feedPageHandler serves a page of a feed, page 0 syncs with the remote list first
func (s *Server) feedPageHandler(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	page, err := intParam(r, "page", 0)
	if err != nil || page < 0 {
		renderError(w, r, errors.New("invalid page"), http.StatusBadRequest)
		return
	}

	res, err := s.Feeds.FetchFeedPage(r.Context(), category, page)
	if err != nil {
		handleError(w, r, err, fmt.Sprintf("fetch %s page %d", category, page))
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// refreshFeedHandler drops the cached membership of a feed and returns a fresh first page
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	res, err := s.Feeds.RefreshFeed(r.Context(), category)
	if err != nil {
		handleError(w, r, err, fmt.Sprintf("refresh %s", category))
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// articleListHandler makes a handler for one of the filtered article lists
func (s *Server) articleListHandler(kind listKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := intParam(r, "limit", defaultListLimit)
		if err != nil || limit <= 0 {
			renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
			return
		}

		var articles []domain.FeedArticle
		switch kind {
		case listSaved:
			articles, err = s.Store.GetSavedArticles(r.Context(), limit)
		case listFavorites:
			articles, err = s.Store.GetFavoriteArticles(r.Context(), limit)
		default:
			articles, err = s.Store.GetUnreadArticles(r.Context(), limit)
		}
		if err != nil {
			handleError(w, r, err, "list articles")
			return
		}
		renderJSON(w, r, http.StatusOK, nonNil(articles))
	}
}

// articleSearchHandler searches cached feed articles by title
func (s *Server) articleSearchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		renderError(w, r, errors.New("search query is required"), http.StatusBadRequest)
		return
	}
	limit, err := intParam(r, "limit", defaultListLimit)
	if err != nil || limit <= 0 {
		renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
		return
	}
	articles, err := s.Store.SearchFeedArticles(r.Context(), query, limit)
	if err != nil {
		handleError(w, r, err, "search articles")
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(articles))
}

// articleHandler returns one cached feed article
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, errors.New("invalid article ID"), http.StatusBadRequest)
		return
	}
	article, err := s.Store.GetFeedArticle(r.Context(), id)
	if err != nil {
		handleError(w, r, err, "get article")
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// articleActionHandler applies read/save/favorite actions to a feed article
func (s *Server) articleActionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, errors.New("invalid article ID"), http.StatusBadRequest)
		return
	}

	var fn func(context.Context, int64) error
	switch action := r.PathValue("action"); action {
	case "read":
		fn = s.Actions.MarkRead
	case "unread":
		fn = s.Actions.MarkUnread
	case "save":
		fn = s.Actions.Save
	case "unsave":
		fn = s.Actions.Unsave
	case "favorite":
		fn = s.Actions.Favorite
	case "unfavorite":
		fn = s.Actions.Unfavorite
	default:
		renderError(w, r, fmt.Errorf("invalid action %q", action), http.StatusBadRequest)
		return
	}

	if err := fn(r.Context(), id); err != nil {
		handleError(w, r, err, "update article")
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"id": id, "action": r.PathValue("action")})
}

// articleDeleteHandler removes a feed article from the cache
func (s *Server) articleDeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, errors.New("invalid article ID"), http.StatusBadRequest)
		return
	}
	if err := s.Actions.Delete(r.Context(), id); err != nil {
		handleError(w, r, err, "delete article")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// searchFeedHandler syncs the search stream and returns non-deleted articles
func (s *Server) searchFeedHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", 0)
	if err != nil || limit < 0 {
		renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
		return
	}
	articles, err := s.Feeds.SyncSearchFeed(r.Context(), limit)
	if err != nil {
		handleError(w, r, err, "sync search feed")
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(articles))
}

// searchListHandler lists favorite or soft-deleted search articles
func (s *Server) searchListHandler(favorites bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var articles []domain.SearchArticle
		var err error
		if favorites {
			articles, err = s.Store.GetSearchFavorites(r.Context())
		} else {
			articles, err = s.Store.GetSearchDeleted(r.Context())
		}
		if err != nil {
			handleError(w, r, err, "list search articles")
			return
		}
		renderJSON(w, r, http.StatusOK, nonNil(articles))
	}
}

// searchActionHandler applies delete/restore/favorite actions to a search article
func (s *Server) searchActionHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if strings.TrimSpace(id) == "" {
		renderError(w, r, errors.New("invalid article ID"), http.StatusBadRequest)
		return
	}

	var err error
	switch action := r.PathValue("action"); action {
	case "delete":
		err = s.Actions.DeleteSearch(r.Context(), id)
	case "restore":
		err = s.Actions.RestoreSearch(r.Context(), id)
	case "favorite":
		err = s.Actions.ToggleSearchFavorite(r.Context(), id)
	default:
		renderError(w, r, fmt.Errorf("invalid action %q", action), http.StatusBadRequest)
		return
	}
	if err != nil {
		handleError(w, r, err, "update search article")
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"id": id, "action": r.PathValue("action")})
}

// userHandler returns an upstream user profile, remote failures are reported as bad gateway
func (s *Server) userHandler(w http.ResponseWriter, r *http.Request) {
	if s.Users == nil {
		renderError(w, r, domain.ErrNotFound, http.StatusNotFound)
		return
	}
	user, err := s.Users.FetchUser(r.Context(), r.PathValue("name"))
	switch {
	case err == nil:
		renderJSON(w, r, http.StatusOK, user)
	case errors.Is(err, context.Canceled), errors.Is(err, domain.ErrNotFound):
		handleError(w, r, err, "fetch user")
	default:
		lgr.Printf("[WARN] failed to fetch user %s: %v", r.PathValue("name"), err)
		renderError(w, r, errors.New(remote.ErrorMessage(err)), http.StatusBadGateway)
	}
}

// intParam parses an optional integer query parameter
func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	res, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return res, nil
}

// nonNil makes empty lists render as [] rather than null
func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
