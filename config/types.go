package config

// DatasetConfig points at an alternative station dataset. When Path is empty
// the embedded catalogue is used.
type DatasetConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"maxAgeDays" validate:"gte=0"`
}

// QuizConfig contains defaults for the quiz game
type QuizConfig struct {
	Questions int `yaml:"questions" validate:"gte=0"`
	Options   int `yaml:"options" validate:"gte=0,lte=10"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
	Quiz    QuizConfig    `yaml:"quiz"`
}
