// ABOUTME: List command for displaying notes.
// ABOUTME: Shows id, title, and last update, newest first.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/tapnote/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List all notes, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		notes := ctrl.Notes()
		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return nil
		}

		if limit > 0 && len(notes) > limit {
			notes = notes[:limit]
		}
		for _, note := range notes {
			fmt.Print(ui.FormatNoteListItem(note))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntP("limit", "n", 20, "number of results")
	rootCmd.AddCommand(listCmd)
}
