// ABOUTME: Show command for displaying a single note.
// ABOUTME: Renders the note's content as markdown with glamour.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harper/tapnote/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note",
	Long:  `Display a note's full content with rendered markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		if !ctrl.Select(id) {
			return fmt.Errorf("note %d not found", id)
		}

		note, err := noteStore.GetByID(id)
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		fmt.Print(ui.FormatNoteHeader(*note))

		md, err := engine.Markdown()
		if err != nil {
			return fmt.Errorf("failed to render note: %w", err)
		}
		fmt.Print(ui.RenderMarkdown(md))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
