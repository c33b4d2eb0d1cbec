package catalog

import "context"

// Taxonomy names a filter dimension of the catalog.
type Taxonomy string

const (
	TaxonomyGenres    Taxonomy = "genres"
	TaxonomyCountries Taxonomy = "countries"
	TaxonomyYears     Taxonomy = "years"
)

// Taxonomies lists every filter dimension in display order.
var Taxonomies = []Taxonomy{TaxonomyGenres, TaxonomyCountries, TaxonomyYears}

// Genres lists all genres (GET /genres). Cached.
func (c *Client) Genres(ctx context.Context) ([]TaxonomyEntry, error) {
	return c.Entries(ctx, TaxonomyGenres)
}

// Countries lists all production countries (GET /countries). Cached.
func (c *Client) Countries(ctx context.Context) ([]TaxonomyEntry, error) {
	return c.Entries(ctx, TaxonomyCountries)
}

// Years lists all release years (GET /years). Cached.
func (c *Client) Years(ctx context.Context) ([]TaxonomyEntry, error) {
	return c.Entries(ctx, TaxonomyYears)
}

// Entries lists the entries of any taxonomy. Cached.
func (c *Client) Entries(ctx context.Context, t Taxonomy) ([]TaxonomyEntry, error) {
	return getList[TaxonomyEntry](ctx, c, "/"+string(t), true)
}

// ListByGenre lists movies, or series when series is true, in a genre.
// Cached.
func (c *Client) ListByGenre(ctx context.Context, slug string, series bool, page Optional[int]) ([]Item, error) {
	return c.ListBy(ctx, TaxonomyGenres, slug, series, page)
}

// ListByCountry lists movies or series from a country. Cached.
func (c *Client) ListByCountry(ctx context.Context, slug string, series bool, page Optional[int]) ([]Item, error) {
	return c.ListBy(ctx, TaxonomyCountries, slug, series, page)
}

// ListByYear lists movies or series released in a year. Cached.
func (c *Client) ListByYear(ctx context.Context, slug string, series bool, page Optional[int]) ([]Item, error) {
	return c.ListBy(ctx, TaxonomyYears, slug, series, page)
}

// ListBy lists the content of one taxonomy entry, e.g.
// /genres/action?series=&page=3. Cached.
func (c *Client) ListBy(ctx context.Context, t Taxonomy, slug string, series bool, page Optional[int]) ([]Item, error) {
	return getList[Item](ctx, c, filterPath("/"+string(t)+"/"+segment(slug), series, page), true)
}

// Search finds movies and series whose title contains title. A query
// with no matches returns an empty slice, not an error. Not cached.
func (c *Client) Search(ctx context.Context, title string) ([]SearchResult, error) {
	return getList[SearchResult](ctx, c, "/search/"+segment(title), false)
}
