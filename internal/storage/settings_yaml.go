package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tummo/internal/core/model"
	"tummo/internal/ui/home"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Rounds          int `yaml:"rounds"`
	BreathsPerRound int `yaml:"breaths_per_round"`
	// Pointer so a stored volume of 0 (mute) is distinct from a
	// missing key.
	Volume    *float64 `yaml:"volume"`
	KeepAwake bool     `yaml:"keep_awake"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (home.Settings, error) {
	settings := home.DefaultSettings()
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings home.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	normalized := settings.Normalized()
	fileData := yamlSettings{
		Rounds:          normalized.Rounds,
		BreathsPerRound: normalized.BreathsPerRound,
		Volume:          &normalized.Volume,
		KeepAwake:       normalized.KeepAwake,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

func applyYamlSettings(settings *home.Settings, fileData yamlSettings) {
	if fileData.Rounds > 0 {
		settings.Rounds = model.ClampRounds(fileData.Rounds)
	}
	if fileData.BreathsPerRound > 0 {
		settings.BreathsPerRound = model.ClampBreathsPerRound(fileData.BreathsPerRound)
	}
	if fileData.Volume != nil {
		settings.Volume = model.ClampVolume(*fileData.Volume)
	}
	settings.KeepAwake = fileData.KeepAwake
}
