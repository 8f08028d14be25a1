// ABOUTME: Root command wiring for the tapnote CLI.
// ABOUTME: Opens the store, journal, and controller before subcommands run.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/tapnote/internal/config"
	"github.com/harper/tapnote/internal/controller"
	"github.com/harper/tapnote/internal/editor"
	"github.com/harper/tapnote/internal/journal"
	"github.com/harper/tapnote/internal/store"
	"github.com/harper/tapnote/internal/ui"
)

var (
	cfg         config.Config
	noteStore   *store.Store
	noteJournal *journal.Journal
	engine      *editor.Buffer
	ctrl        *controller.Controller
)

// cliNotifier prints controller outcomes to the terminal.
type cliNotifier struct{}

func (cliNotifier) Success(msg string) { fmt.Println(ui.Success(msg)) }
func (cliNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, ui.Error(msg)) }

var rootCmd = &cobra.Command{
	Use:     "tapnote",
	Short:   "A local-first rich text note taker",
	Long:    `Tapnote keeps rich text notes in a local SQLite database, with markdown editing, crash recovery, and import/export in html, json, txt, md, and docx.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),

	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()

		if _, err := config.LoadDevice(cfg.DevicePath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load device identity: %v\n", err)
		}

		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		noteStore = st

		j, err := journal.Open(cfg.JournalDir)
		if err != nil {
			// The journal only backs crash recovery; run without it.
			fmt.Fprintf(os.Stderr, "Warning: draft recovery unavailable: %v\n", err)
		} else {
			noteJournal = j
		}

		engine = editor.NewBuffer()

		opts := []controller.Option{controller.WithNotifier(cliNotifier{})}
		if noteJournal != nil {
			opts = append(opts, controller.WithJournal(noteJournal))
		}
		ctrl = controller.New(noteStore, engine, opts...)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if ctrl != nil {
			ctrl.Close()
		}
		if noteJournal != nil {
			_ = noteJournal.Close()
		}
		if noteStore != nil {
			_ = noteStore.Close()
		}
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}
