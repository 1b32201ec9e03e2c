package models

// AppConfig holds the process-wide window toggles.
// This corresponds to config.json. Every field has an effective value once
// resolved; consumers never see an unset toggle.
type AppConfig struct {
	TodoVisible     bool `json:"todo_visible"`
	MarkdownVisible bool `json:"markdown_visible"`
}

// AppConfigFile is the on-disk shape of config.json.
// Nil means the key was absent or null.
type AppConfigFile struct {
	TodoVisible     *bool `json:"todo_visible"`
	MarkdownVisible *bool `json:"markdown_visible"`
}

// NewAppConfig creates a config with default values.
func NewAppConfig() AppConfig {
	return AppConfig{
		TodoVisible:     true,
		MarkdownVisible: true,
	}
}

// Effective fills every unset field from the defaults.
func (f AppConfigFile) Effective() AppConfig {
	cfg := NewAppConfig()
	if f.TodoVisible != nil {
		cfg.TodoVisible = *f.TodoVisible
	}
	if f.MarkdownVisible != nil {
		cfg.MarkdownVisible = *f.MarkdownVisible
	}
	return cfg
}
