package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary       = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent        = lipgloss.Color("#FFD700") // Gold — ratings/favorites
	colorSuccess       = lipgloss.Color("#00E676") // Green — success states
	colorDanger        = lipgloss.Color("#FF5252") // Red — errors
	colorMuted         = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight    = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite         = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite   = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface       = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim    = lipgloss.Color("#181825") // Darkest surface — footer bg
	colorBlue          = lipgloss.Color("#5B8DEF") // Blue — loading/active
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Row markers.
const (
	iconFavorite    = "♥"
	iconNotFavorite = " "
)

// Status bar styles — visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusMode = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorPrimary).
			Bold(true)

	styleStatusValue = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite)

	styleStatusWarn = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorDanger).
			Bold(true)
)

// List row styles.
var (
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleRowMeta = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleRowFavorite = lipgloss.NewStyle().
				Foreground(colorAccent)

	// styleSelectionIndicator styles the left-edge indicator for the selected row.
	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Search input styles.
var (
	styleSearchPrompt = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleSearchHint = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Detail panel styles — rounded border, styled title.
var (
	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailLabel = lipgloss.NewStyle().
				Foreground(colorMuted)

	styleDetailValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleDetailTagline = lipgloss.NewStyle().
				Foreground(colorMutedLight).
				Italic(true)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Message styles for per-view loading/error/empty lines.
var (
	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleLoading = lipgloss.NewStyle().
			Foreground(colorBlue)

	styleEmpty = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Footer styles — top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
