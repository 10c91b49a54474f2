package domain

// Config holds every value the task actions interpolate into external tool
// invocations. It is constructed once at startup and never mutated.
type Config struct {
	// OutputDir is the generated-site directory. Build writes it, deploy
	// syncs it, backup excludes it, clean removes it.
	OutputDir string

	// Deploy target, assembled as User@Host:Path for rsync.
	DeployUser string
	DeployHost string
	DeployPath string

	// RsyncFlags are passed verbatim before source and destination.
	RsyncFlags []string

	// JekyllConfigs is the config file list for production builds;
	// JekyllDevConfigs is the list the dev server uses.
	JekyllConfigs    []string
	JekyllDevConfigs []string

	// JSEntry is the esbuild entry glob, JSOutDir its output directory.
	JSEntry  string
	JSOutDir string

	PreviewHost string
	PreviewPort int

	// Backup settings: archive name prefix, date layout appended to it,
	// zip compression level and the subpaths excluded from the archive.
	BackupPrefix     string
	BackupDateLayout string
	BackupLevel      int
	BackupExcludes   []string

	// ComposeService is the service name used by the bash task.
	ComposeService string
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:        "_site",
		DeployUser:       "deploy",
		DeployHost:       "example.com",
		DeployPath:       "/var/www/site/",
		RsyncFlags:       []string{"-avz", "--delete", "--exclude", ".well-known"},
		JekyllConfigs:    []string{"_config.yml"},
		JekyllDevConfigs: []string{"_config.yml", "_config_dev.yml"},
		JSEntry:          "_js/*.js",
		JSOutDir:         "assets/js",
		PreviewHost:      "0.0.0.0",
		PreviewPort:      4000,
		BackupPrefix:     "backup",
		BackupDateLayout: "2006-01-02",
		BackupLevel:      9,
		BackupExcludes:   []string{"_site/*", "node_modules/*", ".git/*"},
		ComposeService:   "app",
	}
}

// DeployTarget renders the rsync destination in user@host:path form.
func (c *Config) DeployTarget() string {
	return c.DeployUser + "@" + c.DeployHost + ":" + c.DeployPath
}
