package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound);
// the config file is optional, so the CLI treats this as "use defaults".
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds optional pipeline settings from msgprep.yaml.
// Flag and environment values take precedence over these.
type ProjectConfig struct {
	Table       string `yaml:"table,omitempty"`
	Delimiter   string `yaml:"delimiter,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Strict      *bool  `yaml:"strict,omitempty"`
}

const ConfigFileName = "msgprep.yaml"

// Load reads msgprep.yaml from the given directory.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
