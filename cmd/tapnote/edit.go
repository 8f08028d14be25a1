// ABOUTME: Edit command for opening a note in the interactive editor.
// ABOUTME: Offers crash recovery when an unsaved draft is journaled.

package main

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/tapnote/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long:  `Open a note in the interactive editor. Without an id, resumes the journaled draft from a previous session if one exists.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid note id %q", args[0])
			}
			if !ctrl.Select(id) {
				return fmt.Errorf("note %d not found", id)
			}
		} else if !ctrl.Recover() {
			return fmt.Errorf("no draft to resume; pass a note id or run 'tapnote new'")
		}

		model := tui.New(ctrl, engine)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
