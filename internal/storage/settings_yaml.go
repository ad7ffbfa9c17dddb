package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"allure/internal/ui/preferences"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	HapticsEnabled *bool   `yaml:"haptics_enabled"`
	Fullscreen     bool    `yaml:"fullscreen"`
	FrameRate      int     `yaml:"frame_rate"`
	WindowWidth    float32 `yaml:"window_width"`
	WindowHeight   float32 `yaml:"window_height"`
}

// envSettings holds operator overrides. Unset variables leave the file
// values alone.
type envSettings struct {
	ConfigDir  string `env:"ALLURE_CONFIG_DIR"`
	Haptics    *bool  `env:"ALLURE_HAPTICS"`
	Fullscreen *bool  `env:"ALLURE_FULLSCREEN"`
	FrameRate  *int   `env:"ALLURE_FRAME_RATE"`
}

// LoadSettings reads user preferences from YAML and applies environment
// overrides. If the config file does not exist, defaults are used.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	var overrides envSettings
	if err := env.Parse(&overrides); err != nil {
		return settings, fmt.Errorf("parse settings env: %w", err)
	}

	configPath, err := resolveConfigPath(appName, overrides.ConfigDir)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return settings, fmt.Errorf("read settings file: %w", err)
	default:
		var fileData yamlSettings
		if err := yaml.Unmarshal(rawData, &fileData); err != nil {
			return settings, fmt.Errorf("parse settings yaml: %w", err)
		}
		applyYamlSettings(&settings, fileData)
	}

	applyEnvSettings(&settings, overrides)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	var overrides envSettings
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse settings env: %w", err)
	}

	configPath, err := resolveConfigPath(appName, overrides.ConfigDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	haptics := settings.HapticsEnabled
	fileData := yamlSettings{
		HapticsEnabled: &haptics,
		Fullscreen:     settings.Fullscreen,
		FrameRate:      settings.FrameRate,
		WindowWidth:    settings.WindowWidth,
		WindowHeight:   settings.WindowHeight,
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

func resolveConfigPath(appName, configDir string) (string, error) {
	if configDir != "" {
		return filepath.Join(configDir, settingsFileName), nil
	}
	userDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(userDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.HapticsEnabled != nil {
		settings.HapticsEnabled = *fileData.HapticsEnabled
	}
	if fileData.FrameRate >= 10 && fileData.FrameRate <= 240 {
		settings.FrameRate = fileData.FrameRate
	}
	if fileData.WindowWidth >= 320 {
		settings.WindowWidth = fileData.WindowWidth
	}
	if fileData.WindowHeight >= 480 {
		settings.WindowHeight = fileData.WindowHeight
	}
	settings.Fullscreen = fileData.Fullscreen
}

func applyEnvSettings(settings *preferences.Settings, overrides envSettings) {
	if overrides.Haptics != nil {
		settings.HapticsEnabled = *overrides.Haptics
	}
	if overrides.Fullscreen != nil {
		settings.Fullscreen = *overrides.Fullscreen
	}
	if overrides.FrameRate != nil && *overrides.FrameRate > 0 {
		settings.FrameRate = *overrides.FrameRate
	}
}
