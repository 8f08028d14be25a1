// ABOUTME: Configuration from environment with XDG defaults.
// ABOUTME: Locates the note database, journal, and device identity.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir    string
	DBPath     string
	JournalDir string
	DevicePath string
}

func Load() Config {
	dataDir := getenv("TAPNOTE_DATA_DIR", defaultDataDir())
	return Config{
		DataDir:    dataDir,
		DBPath:     getenv("TAPNOTE_DB_PATH", filepath.Join(dataDir, "notes.db")),
		JournalDir: filepath.Join(dataDir, "journal"),
		DevicePath: filepath.Join(dataDir, "device.yaml"),
	}
}

func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tapnote")
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// Device identifies this installation; the store is strictly
// per-device, so the id only labels exports and diagnostics.
type Device struct {
	ID        string    `yaml:"device_id"`
	CreatedAt time.Time `yaml:"created_at"`
}

// LoadDevice reads the device identity, minting one on first run.
func LoadDevice(path string) (Device, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from our own config
	if err == nil {
		var d Device
		if err := yaml.Unmarshal(data, &d); err != nil {
			return Device{}, fmt.Errorf("parse device file: %w", err)
		}
		if d.ID != "" {
			return d, nil
		}
	}

	d := Device{ID: uuid.NewString(), CreatedAt: time.Now()}
	encoded, err := yaml.Marshal(d)
	if err != nil {
		return Device{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Device{}, fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0600); err != nil {
		return Device{}, fmt.Errorf("write device file: %w", err)
	}
	return d, nil
}
