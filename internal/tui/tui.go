// Package tui implements the terminal interface: a catalog of trending or
// searched movies, a scrollable single-title detail view, and the persisted
// favorites list. Navigation is a flat state machine (view + selected id)
// with no back-stack.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/favorites"
	"marquee/internal/telemetry"
	"marquee/internal/tmdb"
)

// NewProgram builds the BubbleTea program for the app in its initial state.
// The caller owns Run and the lifetime of the passed collaborators.
func NewProgram(client *tmdb.Client, favs *favorites.Store, log *telemetry.Emitter) *tea.Program {
	model := NewAppModel(client, favs, log)
	return tea.NewProgram(model, tea.WithAltScreen())
}
