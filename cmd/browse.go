package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"marquee/internal/config"
	"marquee/internal/tui"
)

// browseCmd launches the interactive TUI.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive movie browser",
	Long: `Launch the full-screen TUI. Starts on the trending catalog; press /
to search, enter to open a title, f to toggle a favorite, v for the
favorites list.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	program := tui.NewProgram(sess.Client, sess.Favs, sess.Log)

	// Watch the config file so a key added mid-session takes effect without
	// a restart. No config file, no watcher.
	if cfgPath := viper.ConfigFileUsed(); cfgPath != "" {
		watcher, watchErr := config.NewWatcher(cfgPath)
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "warning: config watcher unavailable: %v\n", watchErr)
		} else if startErr := watcher.Start(); startErr != nil {
			fmt.Fprintf(os.Stderr, "warning: config watcher start failed: %v\n", startErr)
		} else {
			defer watcher.Stop()
			go func() {
				for cfg := range watcher.Changes {
					program.Send(tui.MsgConfigReloaded{Cfg: cfg})
				}
			}()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
