package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// query accumulates URL query parameters in insertion order.
// It renders "series=&page=3" rather than url.Values' sorted encoding so
// the cache key matches the upstream's own link format.
type query struct {
	parts []string
}

// flag appends a presence-only parameter ("name=").
func (q *query) flag(name string) {
	q.parts = append(q.parts, name+"=")
}

// setInt appends name=<v>.
func (q *query) setInt(name string, v int) {
	q.parts = append(q.parts, name+"="+strconv.Itoa(v))
}

// page appends page=<n> when n is present and non-zero.
func (q *query) page(n Optional[int]) {
	if v, _ := n.Get(); n.Present() {
		q.setInt("page", v)
	}
}

// encode joins path and parameters, omitting "?" when there are none.
func (q *query) encode(path string) string {
	if len(q.parts) == 0 {
		return path
	}
	return path + "?" + strings.Join(q.parts, "&")
}

// pagedPath builds "<path>[?page=n]".
func pagedPath(path string, page Optional[int]) string {
	var q query
	q.page(page)
	return q.encode(path)
}

// filterPath builds "<path>[?series=][&page=n]" for the genre, country
// and year listings.
func filterPath(path string, series bool, page Optional[int]) string {
	var q query
	if series {
		q.flag("series")
	}
	q.page(page)
	return q.encode(path)
}

// episodePath builds "<path>[?season=s&episode=e]". Both values must be
// present; either one alone is ignored.
func episodePath(path string, season, episode Optional[int]) string {
	var q query
	if season.Present() && episode.Present() {
		s, _ := season.Get()
		e, _ := episode.Get()
		q.setInt("season", s)
		q.setInt("episode", e)
	}
	return q.encode(path)
}

// segment escapes an id, slug or title for use as one path segment.
func segment(s string) string {
	return url.PathEscape(s)
}
