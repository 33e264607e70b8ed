package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tikgrab/internal/history"
	"tikgrab/internal/ui"
)

var flagClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past extractions",
	RunE:  historyRun,
}

func init() {
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the extraction history")
}

func historyRun(cmd *cobra.Command, args []string) error {
	if flagClear {
		ok, err := ui.Confirm("Delete extraction history?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		return history.Clear()
	}

	entries, err := history.Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No history entries found.")
		return nil
	}

	items := history.FormatForDisplay(entries)
	idx, err := ui.Select("History", items)
	if err != nil {
		return err
	}

	selected := entries[idx]
	debugf("selected: %s (%s)", selected.Title, selected.PageURL)

	// Saved video URLs expire, so re-extract from the page instead of
	// reprinting the stored one.
	return getRun(cmd, []string{selected.PageURL})
}
