// Package config provides the configuration loader for jw.
package config

import (
	"os"
	"path/filepath"

	"github.com/agragregra/jw/internal/core/domain"
	"github.com/agragregra/jw/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project override file.
const ConfigFileName = "jw.yml"

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the compiled-in defaults, overridden field by field when a
// jw.yml is present in the working directory.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(cwd, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config"), "path", path)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config"), "path", path)
	}

	apply(cfg, &f)
	l.Logger.Info("loaded configuration from " + ConfigFileName)
	return cfg, nil
}

func apply(cfg *domain.Config, f *file) {
	if f.OutputDir != "" {
		cfg.OutputDir = f.OutputDir
	}
	if f.Deploy.User != "" {
		cfg.DeployUser = f.Deploy.User
	}
	if f.Deploy.Host != "" {
		cfg.DeployHost = f.Deploy.Host
	}
	if f.Deploy.Path != "" {
		cfg.DeployPath = f.Deploy.Path
	}
	if len(f.RsyncFlags) > 0 {
		cfg.RsyncFlags = f.RsyncFlags
	}
	if len(f.Jekyll.Configs) > 0 {
		cfg.JekyllConfigs = f.Jekyll.Configs
	}
	if len(f.Jekyll.DevConfigs) > 0 {
		cfg.JekyllDevConfigs = f.Jekyll.DevConfigs
	}
	if f.JS.Entry != "" {
		cfg.JSEntry = f.JS.Entry
	}
	if f.JS.OutDir != "" {
		cfg.JSOutDir = f.JS.OutDir
	}
	if f.Preview.Host != "" {
		cfg.PreviewHost = f.Preview.Host
	}
	if f.Preview.Port != nil {
		cfg.PreviewPort = *f.Preview.Port
	}
	if f.Backup.Prefix != "" {
		cfg.BackupPrefix = f.Backup.Prefix
	}
	if f.Backup.DateLayout != "" {
		cfg.BackupDateLayout = f.Backup.DateLayout
	}
	if f.Backup.Level != nil {
		cfg.BackupLevel = *f.Backup.Level
	}
	if len(f.Backup.Excludes) > 0 {
		cfg.BackupExcludes = f.Backup.Excludes
	}
	if f.ComposeService != "" {
		cfg.ComposeService = f.ComposeService
	}
}
