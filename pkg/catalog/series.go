package catalog

import "context"

// ListSeries returns the latest series (GET /series[?page=n]). Cached.
func (c *Client) ListSeries(ctx context.Context, page Optional[int]) ([]Item, error) {
	return getList[Item](ctx, c, pagedPath("/series", page), true)
}

// ListPopularSeries returns popular series. Cached.
func (c *Client) ListPopularSeries(ctx context.Context, page Optional[int]) ([]Item, error) {
	return getList[Item](ctx, c, pagedPath("/popular/series", page), true)
}

// ListRecentSeries returns recently released series. Cached.
func (c *Client) ListRecentSeries(ctx context.Context, page Optional[int]) ([]Item, error) {
	return getList[Item](ctx, c, pagedPath("/recent-release/series", page), true)
}

// ListTopRatedSeries returns the highest rated series. Cached.
func (c *Client) ListTopRatedSeries(ctx context.Context, page Optional[int]) ([]Item, error) {
	return getList[Item](ctx, c, pagedPath("/top-rated/series", page), true)
}

// SeriesDetail returns the full detail payload, including seasons.
func (c *Client) SeriesDetail(ctx context.Context, id string) (*SeriesDetail, error) {
	var s SeriesDetail
	if err := c.Get(ctx, "/series/"+segment(id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SeriesStreams returns stream sources for a series. Season and episode
// narrow the result only when both are given; passing one of them alone
// requests the unfiltered endpoint.
func (c *Client) SeriesStreams(ctx context.Context, id string, season, episode Optional[int]) ([]StreamSource, error) {
	return getList[StreamSource](ctx, c, episodePath("/series/"+segment(id)+"/streams", season, episode), false)
}

// SeriesDownloads returns the download mirrors for a series.
func (c *Client) SeriesDownloads(ctx context.Context, id string) ([]DownloadLink, error) {
	return getList[DownloadLink](ctx, c, "/series/"+segment(id)+"/downloads", false)
}
