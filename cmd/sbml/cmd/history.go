package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	"github.com/msto63/sbml/foundation/utils/filex"
	"github.com/msto63/sbml/foundation/utils/stringx"
	"github.com/msto63/sbml/internal/journal"
	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyStatus string
	historyStats  bool
	historyPrune  time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled runs",
	Long: `Lists the runs recorded in the journal, newest first. Runs are only
recorded when journal.enabled is set in the configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := app.settings.JournalPath
		if !filex.Exists(path) {
			fmt.Fprintln(out, mutedStyle().Render("no journal at "+path))
			return nil
		}

		store, err := journal.NewSQLiteStore(journal.SQLiteConfig{Path: path})
		if err != nil {
			return err
		}
		defer store.Close()
		ctx := cmd.Context()

		if historyPrune > 0 {
			n, err := store.Prune(ctx, historyPrune)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "removed %d runs older than %s\n", n, historyPrune)
			return nil
		}

		if historyStats {
			stats, err := store.Stats(ctx)
			if err != nil {
				return err
			}
			statuses := make([]string, 0, len(stats))
			for status := range stats {
				statuses = append(statuses, string(status))
			}
			sort.Strings(statuses)
			for _, status := range statuses {
				fmt.Fprintf(out, "%-16s %d\n", status, stats[journal.Status(status)])
			}
			return nil
		}

		if historyLimit < 0 {
			return sbmlerror.New("--limit must not be negative").WithCode(sbmlerror.CodeInvalidInput)
		}
		entries, err := store.List(ctx, journal.Filter{
			Status: journal.Status(historyStatus),
			Limit:  historyLimit,
		})
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s  %s  %-14s %8s  %s  %s\n",
				e.StartedAt.Local().Format("2006-01-02 15:04:05"),
				stringx.Truncate(e.ID, 8, ""),
				statusStyle(e.Status).Render(string(e.Status)),
				e.Duration.Round(time.Millisecond),
				e.SourcePath,
				stringx.Truncate(e.Message, 60, "..."),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list (0: all)")
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "only list runs with this status")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "print the number of runs per status")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "delete runs older than this duration")
}

func statusStyle(status journal.Status) lipgloss.Style {
	if !app.settings.Color {
		return lipgloss.NewStyle()
	}
	switch status {
	case journal.StatusOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	case journal.StatusInterrupted:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
}
