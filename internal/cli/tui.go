package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cinedex/pkg/catalog"
	apierr "github.com/matzehuels/cinedex/pkg/errors"
	"github.com/matzehuels/cinedex/pkg/toast"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// toastTick is how often the browser expires toasts.
const toastTick = 250 * time.Millisecond

// =============================================================================
// BrowseModel - Interactive paginated list
// =============================================================================

type (
	pageMsg struct {
		source int
		page   int
		items  []catalog.Item
		err    error
	}
	tickMsg time.Time
)

// browseSource is one list the browser can page through.
type browseSource struct {
	title string
	list  listFunc
}

var browseSources = map[string][]browseSource{
	"movies": {
		{"Movies", (*catalog.Client).ListMovies},
		{"Popular movies", (*catalog.Client).ListPopularMovies},
		{"Recent movies", (*catalog.Client).ListRecentMovies},
		{"Top rated movies", (*catalog.Client).ListTopRatedMovies},
	},
	"series": {
		{"Series", (*catalog.Client).ListSeries},
		{"Popular series", (*catalog.Client).ListPopularSeries},
		{"Recent series", (*catalog.Client).ListRecentSeries},
		{"Top rated series", (*catalog.Client).ListTopRatedSeries},
	},
}

// BrowseModel is the bubbletea model for browsing catalog lists.
type BrowseModel struct {
	ctx     context.Context
	client  *catalog.Client
	toasts  *toast.Store
	sources []browseSource
	source  int

	Page     int
	Items    []catalog.Item
	Cursor   int
	Offset   int
	Height   int
	Loading  bool
	Selected *catalog.Item

	shown []toast.Toast
}

// NewBrowseModel creates a browser over the lists of kind ("movies" or "series").
func NewBrowseModel(ctx context.Context, client *catalog.Client, kind string, toasts *toast.Store) BrowseModel {
	sources, ok := browseSources[kind]
	if !ok {
		sources = browseSources["movies"]
	}
	return BrowseModel{
		ctx:     ctx,
		client:  client,
		toasts:  toasts,
		sources: sources,
		Page:    1,
		Height:  15,
		Loading: true,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.load(m.source, m.Page), tick())
}

// load fetches page of the given source. The first page is requested
// without a page parameter so it shares a cache slot with the bare list.
func (m BrowseModel) load(source, page int) tea.Cmd {
	list := m.sources[source].list
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		p := catalog.Page(page)
		if page <= 1 {
			p = catalog.NoPage()
		}
		items, err := list(client, ctx, p)
		return pageMsg{source: source, page: page, items: items, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(toastTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageMsg:
		m.Loading = false
		switch {
		case msg.err != nil:
			m.toasts.Error(fmt.Sprintf("Failed to load page %d", msg.page), apierr.Classify(msg.err).Message)
		case len(msg.items) == 0 && msg.page > 1:
			m.toasts.Info("No more results", "")
		default:
			m.source = msg.source
			m.Page = msg.page
			m.Items = msg.items
			m.Cursor, m.Offset = 0, 0
		}
		m.shown = m.toasts.List()

	case tickMsg:
		m.toasts.Sweep(time.Time(msg))
		m.shown = m.toasts.List()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "n", "right":
			if !m.Loading {
				m.Loading = true
				return m, m.load(m.source, m.Page+1)
			}
		case "p", "left":
			if !m.Loading && m.Page > 1 {
				m.Loading = true
				return m, m.load(m.source, m.Page-1)
			}
		case "tab":
			if !m.Loading {
				m.Loading = true
				return m, m.load((m.source+1)%len(m.sources), 1)
			}
		case "r":
			if !m.Loading {
				m.Loading = true
				return m, m.load(m.source, m.Page)
			}
		case "enter":
			if len(m.Items) == 0 {
				return m, nil
			}
			item := m.Items[m.Cursor]
			m.Selected = &item
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s · page %d", m.sources[m.source].title, m.Page)
	b.WriteString(StyleTitle.Render(title))
	if m.Loading {
		b.WriteString(listDimStyle.Render("  loading..."))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ←/→ page  tab list  r reload  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Items))
	for i := m.Offset; i < end; i++ {
		it := m.Items[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-40s %-8s %s", cursor, truncate(it.Title, 40), itemQuality(it), it.Rating)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.Items) > 0 {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))
		b.WriteString("\n")
	}

	for _, t := range m.shown {
		b.WriteString(renderToast(t))
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
