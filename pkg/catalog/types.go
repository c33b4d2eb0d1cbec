package catalog

// Kind is the content type tag the catalog API attaches to every record.
type Kind string

const (
	KindMovie  Kind = "movie"  // list and detail payloads
	KindSeries Kind = "series" // list, detail and search payloads
	KindMovies Kind = "movies" // search payloads use the plural for movies
)

// IsSeries reports whether k tags a series record.
func (k Kind) IsSeries() bool { return k == KindSeries }

// Item is a movie or series summary as shown in list views.
//
// Movie lists fill QualityResolution; series lists fill Episode (the
// latest episode count) and leave QualityResolution empty. Filter
// endpoints (genre/country/year) return either shape depending on the
// series flag, so both live on one type.
type Item struct {
	ID                string   `json:"_id"`                         // Opaque id for detail lookups
	Title             string   `json:"title"`                       // Display title
	Kind              Kind     `json:"type"`                        // "movie" or "series"
	PosterImg         string   `json:"posterImg"`                   // Poster image URL
	Rating            string   `json:"rating"`                      // Free-form, usually "8.5/10"
	URL               string   `json:"url"`                         // Source page URL
	QualityResolution string   `json:"qualityResolution,omitempty"` // e.g. "HD", "BLURAY" (movies)
	Genres            []string `json:"genres"`                      // Genre display names
	Episode           int      `json:"episode,omitempty"`           // Episode count (series)
}

// MovieDetail is the full movie detail page payload.
type MovieDetail struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Kind        Kind     `json:"type"`
	PosterImg   string   `json:"posterImg"`
	Rating      string   `json:"rating"`
	Genres      []string `json:"genres"`
	Quality     string   `json:"quality"`
	ReleaseDate string   `json:"releaseDate"`
	Synopsis    string   `json:"synopsis"`
	Duration    string   `json:"duration"`
	TrailerURL  string   `json:"trailerUrl"`
	Directors   []string `json:"directors"`
	Countries   []string `json:"countries"`
	Casts       []string `json:"casts"`
}

// Season is one entry of a series' season list.
type Season struct {
	Season        int `json:"season"`
	TotalEpisodes int `json:"totalEpisodes"`
}

// SeriesDetail is the full series detail page payload.
type SeriesDetail struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Kind        Kind     `json:"type"`
	PosterImg   string   `json:"posterImg"`
	Rating      string   `json:"rating"`
	Genres      []string `json:"genres"`
	Episode     int      `json:"episode"`
	Status      string   `json:"status"` // e.g. "Ongoing", "Completed"
	ReleaseDate string   `json:"releaseDate"`
	Synopsis    string   `json:"synopsis"`
	Duration    string   `json:"duration"`
	TrailerURL  string   `json:"trailerUrl"`
	Directors   []string `json:"directors"`
	Countries   []string `json:"countries"`
	Casts       []string `json:"casts"`
	Seasons     []Season `json:"seasons"`
}

// TotalEpisodes sums the episode counts of all seasons.
func (s *SeriesDetail) TotalEpisodes() int {
	n := 0
	for _, season := range s.Seasons {
		n += season.TotalEpisodes
	}
	return n
}

// SearchResult is a single hit from the search endpoint.
type SearchResult struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Kind      Kind     `json:"type"` // "movies" or "series"
	PosterImg string   `json:"posterImg"`
	URL       string   `json:"url"`
	Genres    []string `json:"genres"`
	Directors []string `json:"directors"`
	Casts     []string `json:"casts"`
}

// StreamSource is a playable stream offered by one provider.
// Stream links are short-lived and never cached.
type StreamSource struct {
	Provider    string   `json:"provider"`    // e.g. "Server F"
	URL         string   `json:"url"`         // Embed or stream URL
	Resolutions []string `json:"resolutions"` // e.g. ["1080p", "720p"]
}

// DownloadLink is a download mirror. Never cached.
type DownloadLink struct {
	Server  string `json:"server"`
	Link    string `json:"link"`
	Quality string `json:"quality"`
}

// TaxonomyEntry is a genre, country or year used to build filter UIs.
// Name is empty for years, whose Parameter doubles as the label.
type TaxonomyEntry struct {
	Parameter        string `json:"parameter"`      // Slug for /genres/{slug} etc.
	Name             string `json:"name,omitempty"` // Display name
	NumberOfContents int    `json:"numberOfContents"`
	URL              string `json:"url"`
}

// Label returns Name, falling back to Parameter when Name is empty.
func (t TaxonomyEntry) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Parameter
}
