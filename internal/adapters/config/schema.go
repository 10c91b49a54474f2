package config

// file is the YAML representation of jw.yml. Every field is optional;
// omitted values keep their compiled-in defaults.
type file struct {
	OutputDir string `yaml:"output_dir"`

	Deploy struct {
		User string `yaml:"user"`
		Host string `yaml:"host"`
		Path string `yaml:"path"`
	} `yaml:"deploy"`

	RsyncFlags []string `yaml:"rsync_flags"`

	Jekyll struct {
		Configs    []string `yaml:"configs"`
		DevConfigs []string `yaml:"dev_configs"`
	} `yaml:"jekyll"`

	JS struct {
		Entry  string `yaml:"entry"`
		OutDir string `yaml:"outdir"`
	} `yaml:"js"`

	Preview struct {
		Host string `yaml:"host"`
		// Pointer so an explicit 0 is distinguishable from an omitted field.
		Port *int `yaml:"port"`
	} `yaml:"preview"`

	Backup struct {
		Prefix     string `yaml:"prefix"`
		DateLayout string `yaml:"date_layout"`
		// Pointer: level 0 is zip's store-only mode, a valid setting.
		Level    *int     `yaml:"level"`
		Excludes []string `yaml:"excludes"`
	} `yaml:"backup"`

	ComposeService string `yaml:"compose_service"`
}
