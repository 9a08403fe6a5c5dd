package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)
	return styleFooter.Width(f.Width).Render(line)
}

// CatalogFooterBindings returns footer bindings for the catalog view.
func CatalogFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Enter, km.Search, km.Favorite, km.Favorites, km.Quit}
}

// DetailFooterBindings returns footer bindings for the detail view.
func DetailFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Favorite, km.Back, km.Quit}
}

// FavoritesFooterBindings returns footer bindings for the favorites view.
func FavoritesFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Enter, km.Favorite, km.Back, km.Quit}
}

// SearchFooterBindings returns footer bindings while the search input has focus.
func SearchFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Enter, km.Back}
}
