// ABOUTME: New command for creating notes.
// ABOUTME: Creates a timestamp-titled note and opens the editor.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/tapnote/internal/tui"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new note",
	Long:  `Create a note titled with the creation timestamp and open it in the editor. Use --title to set a title, or --no-edit to skip the editor.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		titleFlag, _ := cmd.Flags().GetString("title")
		noEdit, _ := cmd.Flags().GetBool("no-edit")

		note, err := ctrl.Create()
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		if titleFlag != "" {
			ctrl.SetTitle(titleFlag)
			if err := ctrl.Save(); err != nil {
				return fmt.Errorf("failed to save title: %w", err)
			}
		}

		if noEdit {
			fmt.Printf("Created note #%d\n", note.ID)
			return nil
		}

		model := tui.New(ctrl, engine)
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	newCmd.Flags().String("title", "", "note title (defaults to the creation timestamp)")
	newCmd.Flags().Bool("no-edit", false, "create the note without opening the editor")
	rootCmd.AddCommand(newCmd)
}
