package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/tmdb"
)

// DetailPanel wraps a viewport for the scrollable single-title view. The
// panel itself is navigation-agnostic: it shows whatever the model last put
// in it (loading, error, or a formatted record).
type DetailPanel struct {
	viewport   viewport.Model
	title      string
	totalLines int // total lines of content (before viewport clipping)
	emptyHint  string
}

// NewDetailPanel creates a detail panel with the given dimensions.
func NewDetailPanel(width, height int) DetailPanel {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return DetailPanel{viewport: vp}
}

// SetSize updates the viewport dimensions.
func (d *DetailPanel) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// SetContent updates the displayed text and title.
func (d *DetailPanel) SetContent(title, content string) {
	d.title = title
	d.emptyHint = ""
	d.totalLines = strings.Count(content, "\n") + 1
	d.viewport.SetContent(content)
	d.viewport.GotoTop()
}

// SetEmpty sets the detail panel to show an empty-state hint.
func (d *DetailPanel) SetEmpty(hint string) {
	d.title = ""
	d.emptyHint = hint
	d.totalLines = 0
	d.viewport.SetContent("")
	d.viewport.GotoTop()
}

// Update handles viewport scroll messages.
// Home/g and End/G are handled explicitly because the viewport's built-in
// KeyMap does not bind those keys — only GotoTop()/GotoBottom() methods exist.
func (d *DetailPanel) Update(msg tea.Msg) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "home", "g":
			d.viewport.GotoTop()
			return
		case "end", "G":
			d.viewport.GotoBottom()
			return
		}
	}
	d.viewport, _ = d.viewport.Update(msg)
}

// View renders the detail panel with a rounded border and scroll indicators.
func (d DetailPanel) View() string {
	if d.emptyHint != "" {
		content := styleDetailDim.Render(d.emptyHint)
		return styleDetailBorder.Render(content)
	}

	var b strings.Builder

	if d.title != "" {
		b.WriteString(styleDetailTitle.Render(d.title))
		b.WriteString("\n")
	}

	if upMore := d.viewport.YOffset; upMore > 0 {
		b.WriteString(styleDetailDim.Render(fmt.Sprintf("↑ %d more", upMore)))
		b.WriteString("\n")
	}

	b.WriteString(d.viewport.View())

	if downMore := d.linesBelow(); downMore > 0 {
		b.WriteString("\n")
		b.WriteString(styleDetailDim.Render(fmt.Sprintf("↓ %d more", downMore)))
	}

	return styleDetailBorder.Render(b.String())
}

// linesBelow returns the number of content lines below the viewport.
func (d DetailPanel) linesBelow() int {
	below := d.totalLines - d.viewport.YOffset - d.viewport.Height
	if below < 0 {
		return 0
	}
	return below
}

// FormatMovieDetail renders a full movie record as the detail panel body.
// Absent optional fields are simply omitted.
func FormatMovieDetail(d *tmdb.MovieDetail, favorite bool) string {
	var b strings.Builder

	label := styleDetailLabel.Render
	value := styleDetailValue.Render

	if d.Tagline != "" {
		b.WriteString(styleDetailTagline.Render(d.Tagline))
		b.WriteString("\n\n")
	}

	var facts []string
	if y := d.Year(); y != "" {
		facts = append(facts, label("released ")+value(d.ReleaseDate))
	}
	if d.Runtime > 0 {
		facts = append(facts, label("runtime ")+value(fmt.Sprintf("%dm", d.Runtime)))
	}
	if d.VoteAverage > 0 {
		facts = append(facts, label("rating ")+value(fmt.Sprintf("★ %.1f (%d votes)", d.VoteAverage, d.VoteCount)))
	}
	if favorite {
		facts = append(facts, styleRowFavorite.Render(iconFavorite+" favorite"))
	}
	if len(facts) > 0 {
		b.WriteString(strings.Join(facts, label("  ·  ")))
		b.WriteString("\n")
	}

	if len(d.Genres) > 0 {
		names := make([]string, len(d.Genres))
		for i, g := range d.Genres {
			names[i] = g.Name
		}
		b.WriteString(label("genres ") + value(strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	if d.Overview != "" {
		b.WriteString("\n")
		b.WriteString(d.Overview)
		b.WriteString("\n")
	}

	var money []string
	if d.Budget > 0 {
		money = append(money, label("budget ")+value(formatCurrency(d.Budget)))
	}
	if d.Revenue > 0 {
		money = append(money, label("revenue ")+value(formatCurrency(d.Revenue)))
	}
	if len(money) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(money, label("  ·  ")))
		b.WriteString("\n")
	}

	var links []string
	if d.Homepage != "" {
		links = append(links, label("homepage ")+value(d.Homepage))
	}
	if d.IMDbID != "" {
		links = append(links, label("imdb ")+value(d.IMDbID))
	}
	if len(links) > 0 {
		b.WriteString(strings.Join(links, label("  ·  ")))
		b.WriteString("\n")
	}

	return b.String()
}

// formatCurrency renders a dollar amount with thousands separators.
func formatCurrency(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}
	return "$" + b.String()
}
