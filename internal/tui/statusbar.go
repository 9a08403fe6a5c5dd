package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the persistent top bar: current view, result/favorite
// counts, elapsed session time, and the persistent missing-key warning.
type StatusBar struct {
	View          View
	Query         string
	ResultCount   int
	FavoriteCount int
	MissingKey    bool // capability key absent — persistent warning
	StartTime     time.Time
	Width         int
}

// Render renders the status bar as a single line. Narrow terminals drop the
// count and elapsed segments.
func (s StatusBar) Render() string {
	compact := s.Width < CompactWidth

	barBg := lipgloss.NewStyle().Background(colorSurface)

	left := styleStatusMode.Render("marquee") + barBg.Render("  ") +
		styleStatusValue.Render(s.viewLabel())

	if s.MissingKey {
		left += barBg.Render("  ") + styleStatusWarn.Render("no API key — set MARQUEE_API_KEY")
	}

	var right string
	if !compact {
		var segs []string
		segs = append(segs, styleStatusValue.Render(fmt.Sprintf("%d %s", s.FavoriteCount, plural("favorite", s.FavoriteCount))))
		if !s.StartTime.IsZero() {
			elapsed := time.Since(s.StartTime).Truncate(time.Second)
			segs = append(segs, styleStatusValue.Render(elapsed.String()))
		}
		right = strings.Join(segs, barBg.Render("  "))
	}

	const barPadding = 2
	innerWidth := s.Width - barPadding
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	line := left + barBg.Render(strings.Repeat(" ", gap)) + right
	return styleStatusBar.Width(s.Width).Render(line)
}

// viewLabel returns the label for the active view, with result context for
// the catalog.
func (s StatusBar) viewLabel() string {
	switch s.View {
	case ViewDetail:
		return "detail"
	case ViewFavorites:
		return "favorites"
	default:
		if s.Query != "" {
			return fmt.Sprintf("search · %d %s", s.ResultCount, plural("result", s.ResultCount))
		}
		return "trending"
	}
}

// plural appends "s" for counts other than one.
func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
