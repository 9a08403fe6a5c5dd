package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/favorites"
	"marquee/internal/telemetry"
	"marquee/internal/tmdb"
)

// View is the discriminated current screen.
type View int

// The three screens. ViewCatalog doubles as trending and search results.
const (
	ViewCatalog View = iota
	ViewDetail
	ViewFavorites
)

// AppModel is the root BubbleTea model. It owns the navigation state (current
// view plus selected movie id) and routes user actions to view transitions
// and favorite toggles. All mutation happens inside Update; fetch commands
// run on goroutines but only deliver messages.
type AppModel struct {
	Catalog   CatalogView
	FavList   FavoritesView
	Detail    DetailPanel
	StatusBar StatusBar
	Keys      KeyMap
	Width     int
	Height    int
	StartTime time.Time

	// Navigation state. SelectedID is defined only while Active is ViewDetail;
	// it is never persisted and resets to the catalog on every start.
	Active     View
	SelectedID int

	// Detail view state. A result arriving for an id other than SelectedID
	// is stale and discarded (last-write-wins, no cancellation).
	DetailLoading bool
	DetailErr     string
	CurrentDetail *tmdb.MovieDetail

	client *tmdb.Client
	favs   *favorites.Store
	log    *telemetry.Emitter
}

// NewAppModel creates the root model in its initial state: catalog view, no
// selection.
func NewAppModel(client *tmdb.Client, favs *favorites.Store, log *telemetry.Emitter) AppModel {
	m := AppModel{
		Catalog:   NewCatalogView(),
		Detail:    NewDetailPanel(80, 10),
		Keys:      DefaultKeyMap(),
		StartTime: time.Now(),
		client:    client,
		favs:      favs,
		log:       log,
	}
	m.StatusBar.StartTime = m.StartTime
	return m
}

// Init starts the spinner, the tick timer, and the initial trending fetch.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.Catalog.Spinner.Tick,
		tickCmd(),
	}
	if m.client.HasAPIKey() {
		cmds = append(cmds, m.fetchList(""))
	}
	return tea.Batch(cmds...)
}

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return MsgTick{Time: t}
	})
}

// fetchList issues a trending (empty query) or search request.
func (m *AppModel) fetchList(query string) tea.Cmd {
	client := m.client
	log := m.log
	return func() tea.Msg {
		movies, err := client.Search(context.Background(), query)
		if err != nil {
			log.Emit(telemetry.Event{Kind: telemetry.KindFetchError, Query: query, Data: err.Error()})
			return MsgResultsError{Query: query, Msg: friendlyError(err)}
		}
		kind := telemetry.KindTrending
		if query != "" {
			kind = telemetry.KindSearch
		}
		log.Emit(telemetry.Event{Kind: kind, Query: query, Data: len(movies)})
		return MsgResults{Query: query, Movies: movies}
	}
}

// fetchDetail issues a detail request for one title.
func (m *AppModel) fetchDetail(id int) tea.Cmd {
	client := m.client
	log := m.log
	return func() tea.Msg {
		detail, err := client.Detail(context.Background(), id)
		if err != nil {
			log.Emit(telemetry.Event{Kind: telemetry.KindFetchError, MovieID: id, Data: err.Error()})
			return MsgDetailError{ID: id, Msg: friendlyError(err)}
		}
		log.Emit(telemetry.Event{Kind: telemetry.KindDetailFetch, MovieID: id})
		return MsgDetail{ID: id, Detail: detail}
	}
}

// SelectMovie transitions to the detail view for id from any state and
// issues the detail fetch. Calling it again before the previous fetch
// resolves makes the latest request authoritative.
func (m *AppModel) SelectMovie(id int) tea.Cmd {
	m.Active = ViewDetail
	m.SelectedID = id
	m.DetailLoading = true
	m.DetailErr = ""
	m.CurrentDetail = nil
	m.Detail.SetEmpty("loading...")
	return m.fetchDetail(id)
}

// GoHome transitions to the catalog from any state. Absolute, not "pop":
// the selected movie id is cleared unconditionally.
func (m *AppModel) GoHome() {
	m.Active = ViewCatalog
	m.SelectedID = 0
	m.DetailLoading = false
	m.DetailErr = ""
	m.CurrentDetail = nil
}

// GoToFavorites transitions to the favorites view from any state. The
// selected movie id is discarded, not retained for back-navigation.
func (m *AppModel) GoToFavorites() {
	m.Active = ViewFavorites
	m.SelectedID = 0
	m.DetailLoading = false
	m.DetailErr = ""
	m.CurrentDetail = nil
	m.FavList.SetMovies(m.favs.All())
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.StatusBar.Width = msg.Width
		m.Catalog.Width = msg.Width
		m.FavList.Width = msg.Width
		m.Detail.SetSize(msg.Width-4, m.detailHeight())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Catalog.Spinner, cmd = m.Catalog.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case MsgTick:
		cmds = append(cmds, tickCmd())

	case MsgResults:
		m.Catalog.SetResults(msg.Query, msg.Movies)

	case MsgResultsError:
		m.Catalog.SetError(msg.Msg)

	case MsgDetail:
		// Stale guard: only the fetch for the currently selected id may
		// update the view.
		if m.Active != ViewDetail || msg.ID != m.SelectedID {
			break
		}
		m.CurrentDetail = msg.Detail
		m.DetailLoading = false
		m.DetailErr = ""
		m.setDetailContent()

	case MsgDetailError:
		if m.Active != ViewDetail || msg.ID != m.SelectedID {
			break
		}
		m.DetailLoading = false
		m.DetailErr = msg.Msg
		m.Detail.SetContent("fetch failed", styleError.Render(msg.Msg))

	case MsgConfigReloaded:
		hadKey := m.client.HasAPIKey()
		m.client.SetAPIKey(msg.Cfg.APIKey)
		m.log.Emit(telemetry.Event{Kind: telemetry.KindConfigReload})
		// A key appearing for the first time unblocks the initial fetch.
		if !hadKey && m.client.HasAPIKey() {
			m.Catalog.StartLoading("")
			cmds = append(cmds, m.fetchList(""))
		}
	}

	return m, tea.Batch(cmds...)
}

// setDetailContent renders the loaded record into the detail panel.
func (m *AppModel) setDetailContent() {
	d := m.CurrentDetail
	if d == nil {
		return
	}
	title := d.Title
	if y := d.Year(); y != "" {
		title = fmt.Sprintf("%s (%s)", d.Title, y)
	}
	m.Detail.SetContent(title, FormatMovieDetail(d, m.favs.IsFavorite(d.ID)))
}

// handleKey processes keyboard input.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input focus overrides normal keys.
	if m.Active == ViewCatalog && m.Catalog.Searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Search):
		if m.Active == ViewCatalog {
			m.Catalog.Searching = true
			m.Catalog.Search.SetValue(m.Catalog.Query)
			return m, m.Catalog.Search.Focus()
		}

	case key.Matches(msg, m.Keys.Favorite):
		m.toggleFavorite()

	case key.Matches(msg, m.Keys.Favorites):
		m.GoToFavorites()

	case key.Matches(msg, m.Keys.Back):
		if m.Active != ViewCatalog {
			m.GoHome()
		}

	case key.Matches(msg, m.Keys.Enter):
		if cmd := m.handleEnter(); cmd != nil {
			return m, cmd
		}

	case key.Matches(msg, m.Keys.Up):
		m.moveUp(msg)

	case key.Matches(msg, m.Keys.Down):
		m.moveDown(msg)

	default:
		if m.Active == ViewDetail {
			m.Detail.Update(msg)
		}
	}

	return m, nil
}

// handleSearchKey processes keys while the search input has focus.
func (m AppModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.Catalog.Search.Value())
		m.Catalog.Searching = false
		m.Catalog.Search.Blur()
		m.Catalog.StartLoading(query)
		return m, m.fetchList(query)

	case "esc":
		m.Catalog.Searching = false
		m.Catalog.Search.Blur()
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Catalog.Search, cmd = m.Catalog.Search.Update(msg)
	return m, cmd
}

// handleEnter opens the detail view for the selected row.
func (m *AppModel) handleEnter() tea.Cmd {
	switch m.Active {
	case ViewCatalog:
		if sm := m.Catalog.SelectedMovie(); sm != nil {
			return m.SelectMovie(sm.ID)
		}
	case ViewFavorites:
		if sm := m.FavList.SelectedMovie(); sm != nil {
			return m.SelectMovie(sm.ID)
		}
	}
	return nil
}

// toggleFavorite toggles membership for the movie the current view points at.
func (m *AppModel) toggleFavorite() {
	switch m.Active {
	case ViewCatalog:
		if sm := m.Catalog.SelectedMovie(); sm != nil {
			m.favs.Toggle(*sm)
		}
	case ViewFavorites:
		if sm := m.FavList.SelectedMovie(); sm != nil {
			m.favs.Toggle(*sm)
		}
		m.FavList.SetMovies(m.favs.All())
	case ViewDetail:
		if m.CurrentDetail != nil {
			m.favs.Toggle(m.CurrentDetail.MovieSummary)
			m.setDetailContent()
		}
	}
}

// moveUp delegates to the active view.
func (m *AppModel) moveUp(msg tea.KeyMsg) {
	switch m.Active {
	case ViewCatalog:
		m.Catalog.MoveUp()
	case ViewFavorites:
		m.FavList.MoveUp()
	case ViewDetail:
		m.Detail.Update(msg)
	}
}

// moveDown delegates to the active view.
func (m *AppModel) moveDown(msg tea.KeyMsg) {
	switch m.Active {
	case ViewCatalog:
		m.Catalog.MoveDown()
	case ViewFavorites:
		m.FavList.MoveDown()
	case ViewDetail:
		m.Detail.Update(msg)
	}
}

// detailHeight computes available height for the detail panel.
func (m AppModel) detailHeight() int {
	used := 5 // status bar, footer, panel chrome
	h := m.Height - used
	if h < 4 {
		return 4
	}
	return h
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}

	var sections []string

	// Status bar — sync display state.
	m.StatusBar.View = m.Active
	m.StatusBar.Query = m.Catalog.Query
	m.StatusBar.ResultCount = len(m.Catalog.Movies)
	m.StatusBar.FavoriteCount = m.favs.Len()
	m.StatusBar.MissingKey = !m.client.HasAPIKey()
	sections = append(sections, m.StatusBar.Render())

	sections = append(sections, m.renderMainView())

	footer := Footer{Width: m.Width, Bindings: m.footerBindings()}
	sections = append(sections, footer.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMainView renders the view the navigation state points at.
func (m AppModel) renderMainView() string {
	switch m.Active {
	case ViewDetail:
		return m.Detail.View()
	case ViewFavorites:
		fl := m.FavList
		fl.SetMovies(m.favs.All())
		fl.Width = m.Width
		return fl.View()
	default:
		return m.Catalog.View(m.favs.IsFavorite)
	}
}

// footerBindings picks the binding set for the active view.
func (m AppModel) footerBindings() []key.Binding {
	if m.Active == ViewCatalog && m.Catalog.Searching {
		return SearchFooterBindings(m.Keys)
	}
	switch m.Active {
	case ViewDetail:
		return DetailFooterBindings(m.Keys)
	case ViewFavorites:
		return FavoritesFooterBindings(m.Keys)
	default:
		return CatalogFooterBindings(m.Keys)
	}
}

// friendlyError converts a client error into the message shown in a view.
func friendlyError(err error) string {
	var apiErr *tmdb.APIError
	switch {
	case errors.Is(err, tmdb.ErrMissingAPIKey):
		return "no API key configured — set MARQUEE_API_KEY"
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return err.Error()
	}
}
