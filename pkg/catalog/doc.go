// Package catalog is a typed client for the movies and series streaming
// catalog API.
//
// # Overview
//
// A [Client] wraps one upstream base URL and exposes every catalog
// endpoint as a method:
//
//   - Lists: [Client.ListMovies], [Client.ListPopularSeries], ...
//   - Details: [Client.MovieDetail], [Client.SeriesDetail]
//   - Playback: [Client.MovieStreams], [Client.SeriesStreams], [Client.MovieDownloads]
//   - Filters: [Client.Genres], [Client.ListByGenre], [Client.ListByYear], ...
//   - Search: [Client.Search]
//
// # Caching
//
// List and taxonomy endpoints read through a [cache.Cache] keyed by the
// full request URL, so /movies and /movies?page=2 are cached separately.
// Entries are reused for [DefaultCacheTTL] (30 minutes). Detail, stream,
// download and search calls always go to the network. Only successful,
// decodable responses are stored.
//
// # Optional Parameters
//
// Page, season and episode arguments are [Optional] values. A parameter
// is emitted only when present and non-zero:
//
//	client.ListMovies(ctx, catalog.NoPage())   // GET /movies
//	client.ListMovies(ctx, catalog.Page(2))    // GET /movies?page=2
//	client.ListByGenre(ctx, "action", true, catalog.Page(3))
//	                                           // GET /genres/action?series=&page=3
//
// # Errors
//
// Failures wrap the sentinels in [cache]: [cache.ErrNetwork] for transport
// failures, [cache.ErrDecode] for malformed bodies, and [*StatusError] for
// non-2xx responses (a 404 also matches [cache.ErrNotFound]). Use
// errors.Classify from pkg/errors to turn them into coded errors.
//
// [cache.Cache]: github.com/matzehuels/cinedex/pkg/cache.Cache
// [cache]: github.com/matzehuels/cinedex/pkg/cache
package catalog
