package server

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cinedex/pkg/catalog"
	apierr "github.com/matzehuels/cinedex/pkg/errors"
)

// pagedList is the shape shared by every paginated list operation.
type pagedList func(*catalog.Client, context.Context, catalog.Optional[int]) ([]catalog.Item, error)

func (s *Server) apiRoutes(r chi.Router) {
	r.Get("/movies", s.list((*catalog.Client).ListMovies))
	r.Get("/popular/movies", s.list((*catalog.Client).ListPopularMovies))
	r.Get("/recent-release/movies", s.list((*catalog.Client).ListRecentMovies))
	r.Get("/top-rated/movies", s.list((*catalog.Client).ListTopRatedMovies))
	r.Get("/movies/{id}", s.movieDetail)
	r.Get("/movies/{id}/streams", s.movieStreams)
	r.Get("/movies/{id}/download", s.movieDownloads)

	r.Get("/series", s.list((*catalog.Client).ListSeries))
	r.Get("/popular/series", s.list((*catalog.Client).ListPopularSeries))
	r.Get("/recent-release/series", s.list((*catalog.Client).ListRecentSeries))
	r.Get("/top-rated/series", s.list((*catalog.Client).ListTopRatedSeries))
	r.Get("/series/{id}", s.seriesDetail)
	r.Get("/series/{id}/streams", s.seriesStreams)
	r.Get("/series/{id}/downloads", s.seriesDownloads)

	for _, t := range catalog.Taxonomies {
		r.Get("/"+string(t), s.entries(t))
		r.Get("/"+string(t)+"/{slug}", s.listBy(t))
	}

	r.Get("/search/{title}", s.search)
}

func (s *Server) list(fn pagedList) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := intParam(r, "page")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		items, err := fn(s.client, r.Context(), page)
		s.respond(w, r, items, err)
	}
}

func (s *Server) movieDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := s.client.MovieDetail(r.Context(), id)
	s.respond(w, r, m, err)
}

func (s *Server) movieStreams(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	streams, err := s.client.MovieStreams(r.Context(), id)
	s.respond(w, r, streams, err)
}

func (s *Server) movieDownloads(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	links, err := s.client.MovieDownloads(r.Context(), id)
	s.respond(w, r, links, err)
}

func (s *Server) seriesDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := s.client.SeriesDetail(r.Context(), id)
	s.respond(w, r, d, err)
}

func (s *Server) seriesStreams(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	season, err := intParam(r, "season")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	episode, err := intParam(r, "episode")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	streams, err := s.client.SeriesStreams(r.Context(), id, season, episode)
	s.respond(w, r, streams, err)
}

func (s *Server) seriesDownloads(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	links, err := s.client.SeriesDownloads(r.Context(), id)
	s.respond(w, r, links, err)
}

func (s *Server) entries(t catalog.Taxonomy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.client.Entries(r.Context(), t)
		s.respond(w, r, entries, err)
	}
}

func (s *Server) listBy(t catalog.Taxonomy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug, err := pathParam(r, "slug")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		page, err := intParam(r, "page")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		series := r.URL.Query().Has("series")
		items, err := s.client.ListBy(r.Context(), t, slug, series, page)
		s.respond(w, r, items, err)
	}
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	title, err := pathParam(r, "title")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	results, err := s.client.Search(r.Context(), title)
	s.respond(w, r, results, err)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// pathParam returns the decoded route parameter name. chi routes on
// RawPath when the request carries one (an escaped "/" for instance), and
// only then is the parameter still escaped.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath != "" {
		u, err := url.PathUnescape(v)
		if err != nil {
			return "", apierr.Wrap(apierr.ErrCodeInvalidInput, err, "invalid %s", name)
		}
		v = u
	}
	if err := apierr.ValidateIdentifier(name, v); err != nil {
		return "", err
	}
	return v, nil
}

// intParam parses an optional integer query parameter. A missing or empty
// parameter is absent.
func intParam(r *http.Request, name string) (catalog.Optional[int], error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return catalog.None[int](), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return catalog.None[int](), apierr.New(apierr.ErrCodeInvalidInput, "%s must be a number, got %q", name, raw)
	}
	if n < 0 {
		return catalog.None[int](), apierr.New(apierr.ErrCodeInvalidInput, "%s must not be negative, got %d", name, n)
	}
	return catalog.Some(n), nil
}
