package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/tmdb"
)

// searchCmd runs a one-shot catalog query and prints the results.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog and print results",
	Long: `Search the catalog for titles matching the query and print one line
per result. With no query, prints the current trending set.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", 20, "maximum results to print")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	query := strings.TrimSpace(strings.Join(args, " "))
	movies, err := sess.Client.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(movies) > limit {
		movies = movies[:limit]
	}

	out := cmd.OutOrStdout()
	if len(movies) == 0 {
		fmt.Fprintln(out, "no results")
		return nil
	}
	for _, m := range movies {
		printMovieLine(out, m, sess.Favs.IsFavorite(m.ID))
	}
	return nil
}

// printMovieLine prints one result row: id, title, year, rating, and a
// favorite marker when the title is in the persisted set.
func printMovieLine(out io.Writer, m tmdb.MovieSummary, favorite bool) {
	marker := " "
	if favorite {
		marker = "♥"
	}
	year := m.Year()
	if year == "" {
		year = "????"
	}
	fmt.Fprintf(out, "%s %8d  %-50s %s  ★ %.1f\n", marker, m.ID, m.Title, year, m.VoteAverage)
}
