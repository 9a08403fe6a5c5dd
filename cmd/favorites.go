package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// favoritesCmd is the command group for the persisted favorite set.
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage the persisted favorite set",
	Long: `The favorites command group inspects and moves the favorite set
stored in the local database. Favorites are normally toggled inside the
TUI; these subcommands exist for scripting and for moving the set between
machines.`,
}

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the favorite set",
		Args:  cobra.NoArgs,
		RunE:  runFavoritesList,
	}

	exportCmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the favorite set to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runFavoritesExport,
	}

	importCmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the favorite set from a TOML file",
		Long: `Replaces the whole stored favorite set with the contents of a TOML
export file. Duplicate ids in the file collapse to the last occurrence.`,
		Args: cobra.ExactArgs(1),
		RunE: runFavoritesImport,
	}

	favoritesCmd.AddCommand(listCmd)
	favoritesCmd.AddCommand(exportCmd)
	favoritesCmd.AddCommand(importCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func runFavoritesList(cmd *cobra.Command, _ []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	movies := sess.Favs.All()
	out := cmd.OutOrStdout()
	if len(movies) == 0 {
		fmt.Fprintln(out, "no favorites")
		return nil
	}
	for _, m := range movies {
		printMovieLine(out, m, true)
	}
	return nil
}

func runFavoritesExport(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	path := args[0]
	if err := sess.Favs.Export(path); err != nil {
		return fmt.Errorf("export favorites: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d favorites to %s\n", sess.Favs.Len(), path)
	return nil
}

func runFavoritesImport(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	path := args[0]
	if err := sess.Favs.Import(path); err != nil {
		return fmt.Errorf("import favorites: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d favorites from %s\n", sess.Favs.Len(), path)
	return nil
}
