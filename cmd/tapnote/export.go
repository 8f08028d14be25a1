// ABOUTME: Export command for writing a note out to disk.
// ABOUTME: Supports html, json, txt, and md output formats.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harper/tapnote/internal/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a note",
	Long:  `Write a note to a file in html, json, txt, or md format.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		format, err := exporter.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		if !ctrl.Select(id) {
			return fmt.Errorf("note %d not found", id)
		}

		doc, err := ctrl.Export(format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if outputPath == "" {
			outputPath = doc.Filename
		}
		if err := os.WriteFile(outputPath, doc.Data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}

		fmt.Printf("Exported note #%d to %s\n", id, outputPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "F", "md", "output format: html, json, txt, md")
	exportCmd.Flags().StringP("output", "o", "", "output file (defaults to a name derived from the title)")
	rootCmd.AddCommand(exportCmd)
}
