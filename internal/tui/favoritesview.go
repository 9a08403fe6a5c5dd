package tui

import (
	"strings"

	"marquee/internal/tmdb"
)

// FavoritesView renders the persisted favorite list. Rows share the catalog
// row renderer so the two lists read identically.
type FavoritesView struct {
	Movies []tmdb.MovieSummary
	Cursor int
	Width  int
}

// SetMovies installs the current favorite set, clamping the cursor. Called
// before every render pass so a toggle is reflected immediately.
func (fv *FavoritesView) SetMovies(movies []tmdb.MovieSummary) {
	fv.Movies = movies
	if fv.Cursor >= len(movies) {
		fv.Cursor = len(movies) - 1
	}
	if fv.Cursor < 0 {
		fv.Cursor = 0
	}
}

// SelectedMovie returns the movie at the cursor.
func (fv FavoritesView) SelectedMovie() *tmdb.MovieSummary {
	if fv.Cursor < 0 || fv.Cursor >= len(fv.Movies) {
		return nil
	}
	return &fv.Movies[fv.Cursor]
}

// MoveUp moves the cursor up.
func (fv *FavoritesView) MoveUp() {
	if fv.Cursor > 0 {
		fv.Cursor--
	}
}

// MoveDown moves the cursor down.
func (fv *FavoritesView) MoveDown() {
	max := len(fv.Movies) - 1
	if max < 0 {
		max = 0
	}
	if fv.Cursor < max {
		fv.Cursor++
	}
}

// View renders the favorites list.
func (fv FavoritesView) View() string {
	var b strings.Builder

	b.WriteString("  " + styleSearchPrompt.Render("favorites"))
	b.WriteString("\n")

	if len(fv.Movies) == 0 {
		b.WriteString("  " + styleEmpty.Render("no favorites yet — press f on any movie"))
		b.WriteString("\n")
		return b.String()
	}

	all := func(int) bool { return true }
	for i, m := range fv.Movies {
		b.WriteString(renderMovieRow(i == fv.Cursor, m, all, fv.Width))
		b.WriteString("\n")
	}

	return b.String()
}
