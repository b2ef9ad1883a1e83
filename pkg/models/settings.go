package models

// Settings represents the console configuration
type Settings struct {
	API APISettings `yaml:"api"`
	Log LogSettings `yaml:"log"`
	UI  UISettings  `yaml:"ui"`
}

// APISettings controls how the catalog backend is reached
type APISettings struct {
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds every single request; there are no retries.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// LegacyPaths switches to the deprecated /tags/... prefix instead of
	// /admin/tags/... for backends that have not migrated yet.
	LegacyPaths bool `yaml:"legacy_paths"`
}

// LogSettings controls the file logger
type LogSettings struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// UISettings controls console preferences
type UISettings struct {
	ShowVendorPanel bool   `yaml:"show_vendor_panel"`
	DefaultType     string `yaml:"default_type"` // tab opened on launch: "car", "bike", "pet", "kid"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 15,
			LegacyPaths:    false,
		},
		Log: LogSettings{
			Level: "info",
		},
		UI: UISettings{
			ShowVendorPanel: true,
			DefaultType:     "car",
		},
	}
}
