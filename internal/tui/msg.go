package tui

import (
	"time"

	"marquee/internal/config"
	"marquee/internal/tmdb"
)

// Fetch result messages — sent by the commands issued from navigation
// transitions. List and detail results both carry enough context for the
// model to discard stale arrivals.

// MsgResults carries a trending or search result page.
type MsgResults struct {
	Query  string
	Movies []tmdb.MovieSummary
}

// MsgResultsError is sent when a list fetch fails. Msg is the human-readable
// failure message shown in the catalog view.
type MsgResultsError struct {
	Query string
	Msg   string
}

// MsgDetail carries the full record for one title. ID duplicates the record
// id so stale guards don't need to inspect the payload.
type MsgDetail struct {
	ID     int
	Detail *tmdb.MovieDetail
}

// MsgDetailError is sent when a detail fetch fails.
type MsgDetailError struct {
	ID  int
	Msg string
}

// MsgConfigReloaded is sent by the config watcher bridge when the config file
// changes on disk.
type MsgConfigReloaded struct {
	Cfg config.Config
}

// Internal TUI messages.

// MsgTick drives the elapsed-time timer in the status bar.
type MsgTick struct {
	Time time.Time
}
