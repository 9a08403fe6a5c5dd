package favorites

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"marquee/internal/tmdb"
)

// exportFile is the TOML document shape written by Export and read by Import.
type exportFile struct {
	Movies []tmdb.MovieSummary `toml:"movies"`
}

// Export writes the favorite set to a TOML file at path, creating parent
// directories as needed.
func (s *Store) Export(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(exportFile{Movies: s.All()})
	if err != nil {
		return fmt.Errorf("marshaling favorites: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Import replaces the favorite set with the contents of a TOML file
// previously written by Export. The new set is persisted immediately.
func (s *Store) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var f exportFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	s.Replace(f.Movies)
	return nil
}
