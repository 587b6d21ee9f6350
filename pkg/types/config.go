package types

// LogConfig holds settings for the stderr logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format selects the handler: text (tint, coloured on a terminal) or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// HistoryConfig holds settings for the run history database.
type HistoryConfig struct {
	// Path is the SQLite database file. Empty disables history.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// BatchConfig holds settings for the batch command.
type BatchConfig struct {
	// OutDir is the directory converted files are written to (default "converted").
	OutDir string `json:"out_dir" yaml:"out_dir" mapstructure:"out_dir"`

	// Force overwrites outputs that already exist instead of skipping them.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`
}

// Config groups every setting the CLI reads from flags, environment and
// the config file. None of it changes how comments are converted.
type Config struct {
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
	Batch   BatchConfig   `json:"batch" yaml:"batch" mapstructure:"batch"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Batch: BatchConfig{
			OutDir: "converted",
		},
	}
}
