// ABOUTME: Import command for bringing external files in as notes.
// ABOUTME: Supports html, json, txt, md, and docx input.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/tapnote/internal/importer"
	"github.com/harper/tapnote/internal/tui"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a file as a new note",
	Long:  `Create a note from an html, json, txt, md, or docx file and open it. The media type is inferred from the file extension unless --type is given.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		typeFlag, _ := cmd.Flags().GetString("type")
		noEdit, _ := cmd.Flags().GetBool("no-edit")

		data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		mediaType := typeFlag
		if mediaType == "" {
			mediaType = importer.MediaTypeFor(path)
		}

		note, err := ctrl.Import(data, mediaType, path)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
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
	importCmd.Flags().String("type", "", "media type of the input (overrides extension detection)")
	importCmd.Flags().Bool("no-edit", false, "import without opening the editor")
	rootCmd.AddCommand(importCmd)
}
