package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tummo/internal/core/history"

	"gopkg.in/yaml.v3"
)

const historyFileName = "history.yaml"

// HistoryFile persists the session history aggregate as a YAML file under
// the user config directory. It satisfies the engine's Store contract.
type HistoryFile struct {
	appName string
}

// NewHistoryFile returns a history store keyed by the application name.
func NewHistoryFile(appName string) *HistoryFile {
	return &HistoryFile{appName: appName}
}

// Load reads the persisted history. A missing file yields an empty
// aggregate, not an error.
func (store *HistoryFile) Load() (history.AppData, error) {
	var data history.AppData
	historyPath, err := resolveConfigPath(store.appName, historyFileName)
	if err != nil {
		return data, err
	}

	rawData, err := os.ReadFile(historyPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return data, nil
		}
		return data, fmt.Errorf("read history file: %w", err)
	}

	if err := yaml.Unmarshal(rawData, &data); err != nil {
		return data, fmt.Errorf("parse history yaml: %w", err)
	}
	return data, nil
}

// Save writes the full aggregate back. The write goes through a temp file
// and rename so a failure never corrupts the previously stored history.
func (store *HistoryFile) Save(data history.AppData) error {
	historyPath, err := resolveConfigPath(store.appName, historyFileName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(historyPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal history yaml: %w", err)
	}

	tempPath := historyPath + ".tmp"
	if err := os.WriteFile(tempPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	if err := os.Rename(tempPath, historyPath); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}

	return nil
}
