package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/cinedex/pkg/catalog"
	"github.com/matzehuels/cinedex/pkg/observability"
	"github.com/matzehuels/cinedex/pkg/toast"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings, ratings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleRating for ratings.
	StyleRating = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labeled value, skipping empty values.
func printKeyValue(w io.Writer, key, value string) {
	if value == "" {
		return
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printLink prints an arrow followed by a URL.
func printLink(w io.Writer, label, url string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(label)+" "+StyleLink.Render(url))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// =============================================================================
// Tables
// =============================================================================

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// printItems prints a movie or series list.
func printItems(w io.Writer, items []catalog.Item) {
	if len(items) == 0 {
		printInfo(w, "No results")
		return
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Title, string(it.Kind), it.Rating, itemQuality(it), it.ID})
	}
	fmt.Fprintln(w, newTable("Title", "Type", "Rating", "Quality", "ID").Rows(rows...).Render())
}

// itemQuality shows the resolution for movies and the episode count for series.
func itemQuality(it catalog.Item) string {
	if it.Kind.IsSeries() || it.Episode > 0 {
		return "Ep " + strconv.Itoa(it.Episode)
	}
	return it.QualityResolution
}

func printSearchResults(w io.Writer, results []catalog.SearchResult) {
	if len(results) == 0 {
		printInfo(w, "No results")
		return
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Title, string(r.Kind), strings.Join(r.Genres, ", "), r.ID})
	}
	fmt.Fprintln(w, newTable("Title", "Type", "Genres", "ID").Rows(rows...).Render())
}

func printEntries(w io.Writer, entries []catalog.TaxonomyEntry) {
	if len(entries) == 0 {
		printInfo(w, "No results")
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Label(), e.Parameter, strconv.Itoa(e.NumberOfContents)})
	}
	fmt.Fprintln(w, newTable("Name", "Slug", "Titles").Rows(rows...).Render())
}

func printStreams(w io.Writer, streams []catalog.StreamSource) {
	if len(streams) == 0 {
		printInfo(w, "No streams available")
		return
	}
	for _, s := range streams {
		label := s.Provider
		if len(s.Resolutions) > 0 {
			label += " (" + strings.Join(s.Resolutions, ", ") + ")"
		}
		printLink(w, label, s.URL)
	}
}

func printDownloads(w io.Writer, links []catalog.DownloadLink) {
	if len(links) == 0 {
		printInfo(w, "No downloads available")
		return
	}
	for _, l := range links {
		label := l.Server
		if l.Quality != "" {
			label += " [" + l.Quality + "]"
		}
		printLink(w, label, l.Link)
	}
}

// =============================================================================
// Detail Views
// =============================================================================

func printMovie(w io.Writer, m *catalog.MovieDetail) {
	fmt.Fprintln(w, StyleTitle.Render(m.Title))
	printKeyValue(w, "Rating", StyleRating.Render(m.Rating))
	printKeyValue(w, "Quality", m.Quality)
	printKeyValue(w, "Released", m.ReleaseDate)
	printKeyValue(w, "Duration", m.Duration)
	printKeyValue(w, "Genres", strings.Join(m.Genres, ", "))
	printKeyValue(w, "Directors", strings.Join(m.Directors, ", "))
	printKeyValue(w, "Countries", strings.Join(m.Countries, ", "))
	printKeyValue(w, "Cast", strings.Join(m.Casts, ", "))
	printKeyValue(w, "Trailer", m.TrailerURL)
	if m.Synopsis != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, lipgloss.NewStyle().Width(72).Render(m.Synopsis))
	}
}

func printSeries(w io.Writer, s *catalog.SeriesDetail) {
	fmt.Fprintln(w, StyleTitle.Render(s.Title))
	printKeyValue(w, "Rating", StyleRating.Render(s.Rating))
	printKeyValue(w, "Status", s.Status)
	printKeyValue(w, "Released", s.ReleaseDate)
	printKeyValue(w, "Duration", s.Duration)
	printKeyValue(w, "Genres", strings.Join(s.Genres, ", "))
	printKeyValue(w, "Directors", strings.Join(s.Directors, ", "))
	printKeyValue(w, "Countries", strings.Join(s.Countries, ", "))
	printKeyValue(w, "Cast", strings.Join(s.Casts, ", "))
	if len(s.Seasons) > 0 {
		parts := make([]string, len(s.Seasons))
		for i, season := range s.Seasons {
			parts[i] = fmt.Sprintf("S%d: %d eps", season.Season, season.TotalEpisodes)
		}
		printKeyValue(w, "Seasons", strings.Join(parts, " · "))
		printKeyValue(w, "Episodes", strconv.Itoa(s.TotalEpisodes()))
	}
	if s.Synopsis != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, lipgloss.NewStyle().Width(72).Render(s.Synopsis))
	}
}

// =============================================================================
// Stats & Toasts
// =============================================================================

// printStats prints the request counters on a single line.
func printStats(w io.Writer, s observability.Snapshot) {
	parts := []string{
		fmt.Sprintf("%d requests", s.Requests),
		fmt.Sprintf("%d cache hits", s.CacheHits),
		fmt.Sprintf("%d misses", s.CacheMisses),
	}
	if s.RequestFails > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", s.RequestFails))
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

// toastPrinter writes each toast once, as it first appears in the store.
type toastPrinter struct {
	w    io.Writer
	seen map[string]bool
}

func newToastPrinter(w io.Writer) *toastPrinter {
	return &toastPrinter{w: w, seen: make(map[string]bool)}
}

func (p *toastPrinter) print(ts []toast.Toast) {
	for _, t := range ts {
		if p.seen[t.ID] {
			continue
		}
		p.seen[t.ID] = true
		fmt.Fprintln(p.w, renderToast(t))
	}
}

// renderToast formats a toast as a single status line.
func renderToast(t toast.Toast) string {
	var line string
	switch t.Type {
	case toast.TypeSuccess:
		line = styleIconSuccess.Render(iconSuccess) + " " + t.Title
	case toast.TypeError:
		line = styleIconError.Render(iconError) + " " + t.Title
	case toast.TypeWarning:
		line = styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(t.Title)
	default:
		line = styleIconInfo.Render(iconInfo) + " " + t.Title
	}
	if t.Message != "" {
		line += StyleDim.Render(": " + t.Message)
	}
	return line
}
