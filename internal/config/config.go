package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ralt/patchstarter/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileConfig holds defaults read from a YAML file
type FileConfig struct {
	Publisher           string   `yaml:"publisher"`
	Name                string   `yaml:"name"`
	AppVersion          string   `yaml:"appVersion"`
	MinSysVersion       string   `yaml:"minSysVersion"`
	ExtensionAttributes []string `yaml:"extensionAttributes"`
	Output              string   `yaml:"output"`
	ApplicationsDir     string   `yaml:"applicationsDir"`
}

// Load reads the YAML defaults file at path
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply copies file values into cfg for every setting whose flag was not
// explicitly set on the command line.
func (f *FileConfig) Apply(cfg *models.GenerateConfig, flagChanged func(name string) bool) {
	set := func(flag string, dst *string, v string) {
		if v != "" && !flagChanged(flag) {
			*dst = v
		}
	}

	set("publisher", &cfg.Publisher, f.Publisher)
	set("name", &cfg.DisplayName, f.Name)
	set("app-version", &cfg.AppVersion, f.AppVersion)
	set("min-sys-version", &cfg.MinSysVer, f.MinSysVersion)
	set("output", &cfg.OutputDir, f.Output)
	set("applications-dir", &cfg.ApplicationsDir, f.ApplicationsDir)

	if len(f.ExtensionAttributes) > 0 && !flagChanged("extension-attribute") {
		cfg.ExtensionAttributes = append([]string(nil), f.ExtensionAttributes...)
	}
}
