package tui

import (
	"strings"
	"testing"

	"marquee/internal/tmdb"
)

func TestFormatMovieDetail(t *testing.T) {
	t.Parallel()
	d := &tmdb.MovieDetail{
		MovieSummary: tmdb.MovieSummary{
			ID:          550,
			Title:       "Fight Club",
			ReleaseDate: "1999-10-15",
			VoteAverage: 8.4,
			VoteCount:   26280,
			Overview:    "An insomniac office worker crosses paths with a soap maker.",
		},
		Tagline: "Mischief. Mayhem. Soap.",
		Runtime: 139,
		Genres:  []tmdb.Genre{{ID: 18, Name: "Drama"}},
		Budget:  63000000,
		Revenue: 100853753,
		IMDbID:  "tt0137523",
	}

	out := FormatMovieDetail(d, false)
	for _, want := range []string{
		"Mischief. Mayhem. Soap.",
		"1999-10-15",
		"139m",
		"★ 8.4",
		"Drama",
		"insomniac office worker",
		"$63,000,000",
		"$100,853,753",
		"tt0137523",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, iconFavorite) {
		t.Error("favorite marker rendered for a non-favorite")
	}

	if out := FormatMovieDetail(d, true); !strings.Contains(out, iconFavorite) {
		t.Error("favorite marker missing")
	}
}

func TestFormatMovieDetailOmitsAbsentFields(t *testing.T) {
	t.Parallel()
	d := &tmdb.MovieDetail{
		MovieSummary: tmdb.MovieSummary{ID: 1, Title: "Bare"},
	}

	out := FormatMovieDetail(d, false)
	for _, absent := range []string{"runtime", "genres", "budget", "revenue", "imdb", "homepage"} {
		if strings.Contains(out, absent) {
			t.Errorf("output contains %q for a record without it", absent)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   int64
		want string
	}{
		{1, "$1"},
		{999, "$999"},
		{1000, "$1,000"},
		{63000000, "$63,000,000"},
		{100853753, "$100,853,753"},
	}
	for _, tt := range tests {
		if got := formatCurrency(tt.in); got != tt.want {
			t.Errorf("formatCurrency(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetailPanelStates(t *testing.T) {
	t.Parallel()

	t.Run("empty hint", func(t *testing.T) {
		t.Parallel()
		p := NewDetailPanel(60, 10)
		p.SetEmpty("loading...")
		if out := p.View(); !strings.Contains(out, "loading...") {
			t.Errorf("View = %q, want hint", out)
		}
	})

	t.Run("content with title", func(t *testing.T) {
		t.Parallel()
		p := NewDetailPanel(60, 10)
		p.SetContent("Fight Club (1999)", "body line")
		out := p.View()
		if !strings.Contains(out, "Fight Club (1999)") {
			t.Error("title missing")
		}
		if !strings.Contains(out, "body line") {
			t.Error("body missing")
		}
	})

	t.Run("scroll indicator for long content", func(t *testing.T) {
		t.Parallel()
		p := NewDetailPanel(60, 3)
		p.SetContent("t", strings.Repeat("line\n", 20))
		if out := p.View(); !strings.Contains(out, "more") {
			t.Error("overflow indicator missing")
		}
	})
}
