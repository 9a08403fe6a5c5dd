package tui

import (
	"strings"
	"testing"
	"time"
)

func TestStatusBarLabels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		bar  StatusBar
		want string
	}{
		{"trending", StatusBar{View: ViewCatalog, Width: 100}, "trending"},
		{"search results", StatusBar{View: ViewCatalog, Query: "blade", ResultCount: 2, Width: 100}, "search · 2 results"},
		{"single result", StatusBar{View: ViewCatalog, Query: "x", ResultCount: 1, Width: 100}, "search · 1 result"},
		{"detail", StatusBar{View: ViewDetail, Width: 100}, "detail"},
		{"favorites", StatusBar{View: ViewFavorites, Width: 100}, "favorites"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if out := tt.bar.Render(); !strings.Contains(out, tt.want) {
				t.Errorf("Render missing %q", tt.want)
			}
		})
	}
}

func TestStatusBarMissingKeyWarning(t *testing.T) {
	t.Parallel()
	bar := StatusBar{View: ViewCatalog, MissingKey: true, Width: 120}
	if out := bar.Render(); !strings.Contains(out, "MARQUEE_API_KEY") {
		t.Error("missing-key warning not rendered")
	}

	bar.MissingKey = false
	if out := bar.Render(); strings.Contains(out, "MARQUEE_API_KEY") {
		t.Error("warning rendered with a key present")
	}
}

func TestStatusBarCompactDropsCounts(t *testing.T) {
	t.Parallel()
	bar := StatusBar{
		View:          ViewCatalog,
		FavoriteCount: 3,
		StartTime:     time.Now().Add(-time.Minute),
		Width:         40, // below CompactWidth
	}
	if out := bar.Render(); strings.Contains(out, "favorite") {
		t.Error("compact bar still renders the favorite count")
	}
}
