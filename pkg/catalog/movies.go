package catalog

import "context"

// ListMovies returns the latest movies (GET /movies[?page=n]). Cached.
func (c *Client) ListMovies(ctx context.Context, page Optional[int]) ([]Item, error) {
	return getList[Item](ctx, c, pagedPath("/movies", page), true)
}

// ListPopularMovies returns popular movies (GET /popular/movies). Cached.
func (c *Client) ListPopularMovies(ctx context.Context, page Optional[int]) ([]Item, error) {
	return getList[Item](ctx, c, pagedPath("/popular/movies", page), true)
}

// ListRecentMovies returns recently released movies (GET /recent-release/movies). Cached.
func (c *Client) ListRecentMovies(ctx context.Context, page Optional[int]) ([]Item, error) {
	return getList[Item](ctx, c, pagedPath("/recent-release/movies", page), true)
}

// ListTopRatedMovies returns the highest rated movies (GET /top-rated/movies). Cached.
func (c *Client) ListTopRatedMovies(ctx context.Context, page Optional[int]) ([]Item, error) {
	return getList[Item](ctx, c, pagedPath("/top-rated/movies", page), true)
}

// MovieDetail returns the full detail payload for a movie id taken from a
// prior list or search result.
func (c *Client) MovieDetail(ctx context.Context, id string) (*MovieDetail, error) {
	var m MovieDetail
	if err := c.Get(ctx, "/movies/"+segment(id), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MovieStreams returns the stream sources for a movie.
func (c *Client) MovieStreams(ctx context.Context, id string) ([]StreamSource, error) {
	return getList[StreamSource](ctx, c, "/movies/"+segment(id)+"/streams", false)
}

// MovieDownloads returns the download mirrors for a movie.
func (c *Client) MovieDownloads(ctx context.Context, id string) ([]DownloadLink, error) {
	return getList[DownloadLink](ctx, c, "/movies/"+segment(id)+"/download", false)
}
