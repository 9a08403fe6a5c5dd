package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/tmdb"
)

// CatalogView renders the trending/search result list with an inline search
// input. Rows are one line each: favorite marker, title, year, rating.
type CatalogView struct {
	Movies    []tmdb.MovieSummary
	Cursor    int
	Spinner   spinner.Model
	Search    textinput.Model
	Searching bool   // search input has focus
	Loading   bool   // a list fetch is in flight
	ErrMsg    string // last fetch failure; cleared by the next success
	Query     string // the query the current rows answer ("" = trending)
	Width     int
	Height    int
}

// NewCatalogView creates an empty catalog view.
func NewCatalogView() CatalogView {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(colorBlue)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search movies"
	ti.CharLimit = 128

	return CatalogView{Spinner: s, Search: ti}
}

// SelectedMovie returns the movie at the cursor.
func (cv CatalogView) SelectedMovie() *tmdb.MovieSummary {
	if cv.Cursor < 0 || cv.Cursor >= len(cv.Movies) {
		return nil
	}
	return &cv.Movies[cv.Cursor]
}

// MoveUp moves the cursor up.
func (cv *CatalogView) MoveUp() {
	if cv.Cursor > 0 {
		cv.Cursor--
	}
}

// MoveDown moves the cursor down.
func (cv *CatalogView) MoveDown() {
	max := len(cv.Movies) - 1
	if max < 0 {
		max = 0
	}
	if cv.Cursor < max {
		cv.Cursor++
	}
}

// StartLoading marks a list fetch as in flight.
func (cv *CatalogView) StartLoading(query string) {
	cv.Loading = true
	cv.Query = query
}

// SetResults installs a result page. The error from any previous fetch is
// cleared; the cursor is clamped into the new list.
func (cv *CatalogView) SetResults(query string, movies []tmdb.MovieSummary) {
	cv.Movies = movies
	cv.Query = query
	cv.Loading = false
	cv.ErrMsg = ""
	if cv.Cursor >= len(movies) {
		cv.Cursor = len(movies) - 1
	}
	if cv.Cursor < 0 {
		cv.Cursor = 0
	}
}

// SetError installs a fetch failure message. Existing rows stay on screen.
func (cv *CatalogView) SetError(msg string) {
	cv.Loading = false
	cv.ErrMsg = msg
}

// View renders the search line, status line, and result rows. isFav marks
// favorited rows; it may be nil.
func (cv CatalogView) View(isFav func(int) bool) string {
	var b strings.Builder

	b.WriteString(cv.renderSearchLine())
	b.WriteString("\n")

	switch {
	case cv.ErrMsg != "":
		b.WriteString("  " + styleError.Render(cv.ErrMsg))
		b.WriteString("\n")
	case cv.Loading:
		b.WriteString("  " + cv.Spinner.View() + styleLoading.Render(" loading..."))
		b.WriteString("\n")
	case len(cv.Movies) == 0:
		b.WriteString("  " + styleEmpty.Render(cv.emptyHint()))
		b.WriteString("\n")
	}

	for i, m := range cv.Movies {
		b.WriteString(renderMovieRow(i == cv.Cursor, m, isFav, cv.Width))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSearchLine renders the search input when focused, or the current
// query context when not.
func (cv CatalogView) renderSearchLine() string {
	if cv.Searching {
		return "  " + cv.Search.View()
	}
	if cv.Query != "" {
		return "  " + styleSearchPrompt.Render("results: ") +
			styleRowNormal.Render(cv.Query) +
			styleSearchHint.Render("  (/ to search, empty query for trending)")
	}
	return "  " + styleSearchPrompt.Render("trending this week") +
		styleSearchHint.Render("  (/ to search)")
}

// emptyHint picks the empty-state line for the current query context.
func (cv CatalogView) emptyHint() string {
	if cv.Query != "" {
		return fmt.Sprintf("no results for %q", cv.Query)
	}
	return "nothing trending right now"
}

// renderMovieRow renders a single one-line movie row with aligned columns.
// Shared between the catalog and favorites views.
func renderMovieRow(selected bool, m tmdb.MovieSummary, isFav func(int) bool, width int) string {
	indicator := "  "
	if selected {
		indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
	}

	marker := iconNotFavorite
	if isFav != nil && isFav(m.ID) {
		marker = styleRowFavorite.Render(iconFavorite)
	}

	titleWidth := 40
	if width > 0 && width < CompactWidth {
		titleWidth = width / 2
		if titleWidth < 12 {
			titleWidth = 12
		}
	}
	title := TruncateWithEllipsis(m.Title, titleWidth)
	padded := fmt.Sprintf("%-*s", titleWidth, title)

	var styledTitle string
	if selected {
		styledTitle = styleRowSelected.Render(padded)
	} else {
		styledTitle = styleRowNormal.Render(padded)
	}

	meta := movieMeta(m)
	var styledMeta string
	if meta != "" {
		styledMeta = "  " + styleRowMeta.Render(meta)
	}

	return fmt.Sprintf("%s%s %s%s", indicator, marker, styledTitle, styledMeta)
}

// movieMeta builds the muted year/rating column for a row.
func movieMeta(m tmdb.MovieSummary) string {
	var parts []string
	if y := m.Year(); y != "" {
		parts = append(parts, y)
	}
	if m.VoteAverage > 0 {
		parts = append(parts, fmt.Sprintf("★ %.1f", m.VoteAverage))
	}
	return strings.Join(parts, "  ")
}
