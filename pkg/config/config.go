// Package config owns the on-disk state of the console: the yaml settings
// file and the session token, both under the tagdeck config directory.
// The session token is the console's stand-in for the browser-storage
// placeholder of the web console: an explicit file with an init/clear
// lifecycle, injected into the API client as a bearer header.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

const (
	settingsFile = "config.yaml"
	tokenFile    = "session"
	logFile      = "tagdeck.log"

	// EnvConfigDir overrides the config directory (used by tests and CI).
	EnvConfigDir = "TAGDECK_CONFIG_DIR"
	// EnvBaseURL overrides api.base_url without touching the settings file.
	EnvBaseURL = "TAGDECK_API_URL"
	// EnvToken overrides the stored session token.
	EnvToken = "TAGDECK_TOKEN"
)

// Dir returns the tagdeck config directory, creating it if needed.
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create config dir: %w", err)
		}
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	dir := filepath.Join(base, "tagdeck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

// LogPath returns the log file path inside the config directory.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFile), nil
}

// ReadSettings loads the settings file, falling back to defaults when the
// file does not exist yet. The TAGDECK_API_URL environment variable, when
// set, overrides api.base_url.
func ReadSettings() (*models.Settings, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	settings := models.DefaultSettings()
	data, err := os.ReadFile(filepath.Join(dir, settingsFile))
	if err == nil {
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse settings: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if url := os.Getenv(EnvBaseURL); url != "" {
		settings.API.BaseURL = url
	}
	if settings.API.TimeoutSeconds <= 0 {
		settings.API.TimeoutSeconds = models.DefaultSettings().API.TimeoutSeconds
	}
	return settings, nil
}

// WriteSettings persists the settings file.
func WriteSettings(settings *models.Settings) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, settingsFile), data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// SaveToken stores the session token. Mode 0600: the token grants admin
// access to the catalog.
func SaveToken(token string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, tokenFile), []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}
	return nil
}

// LoadToken returns the current session token, preferring TAGDECK_TOKEN
// over the stored file. An absent token is returned as an empty string,
// not an error: unauthenticated requests are the backend's to reject.
func LoadToken() (string, error) {
	if token := os.Getenv(EnvToken); token != "" {
		return token, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ClearToken removes the stored session token. Clearing an absent token is
// not an error.
func ClearToken() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(dir, tokenFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}
