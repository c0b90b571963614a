// Package config loads CLI configuration from file, environment and
// flags, and owns the process logger.
package config

// Config holds the resolved configuration for the datacleaner CLI.
type Config struct {
	// Port is the web UI listen port.
	Port int `koanf:"port"`

	// DataDir is where uploaded and sample CSV files live.
	DataDir string `koanf:"data_dir"`

	// HistoryPath is the SQLite operation-history database path.
	HistoryPath string `koanf:"history_path"`

	// SessionSecret signs the session cookie.
	SessionSecret string `koanf:"session_secret"`

	// MaxUploadMB caps the accepted upload size in mebibytes.
	MaxUploadMB int `koanf:"max_upload_mb"`

	// UniqueLimit caps the values returned by the unique-value picker.
	UniqueLimit int `koanf:"unique_limit"`

	// Watch enables watching DataDir for dropped CSV files.
	Watch bool `koanf:"watch"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// MaxUploadBytes returns the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
