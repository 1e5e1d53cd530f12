// Package config holds the application configuration.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Chapters Chapters `yaml:"chapters"`
	Sound    Sound    `yaml:"sound"`
	Logging  Logging  `yaml:"logging"`
	UI       UI       `yaml:"ui"`
}

// Chapters configures where chapter documents come from.
type Chapters struct {
	// Source is "" or "embedded", an http(s) URL, "sqlite:<path>", or a
	// directory.
	Source        string        `yaml:"source" env:"VERSE_ORDER_CHAPTERS"`
	Default       string        `yaml:"default" env:"VERSE_ORDER_CHAPTER"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout" env:"VERSE_ORDER_FETCH_TIMEOUT"`
	CacheMaxBytes int64         `yaml:"cache_max_bytes" env:"VERSE_ORDER_CACHE_MAX_BYTES"`
	CacheTTL      time.Duration `yaml:"cache_ttl" env:"VERSE_ORDER_CACHE_TTL"`
}

// Sound configures the audio cues.
type Sound struct {
	Enabled    bool   `yaml:"enabled" env:"VERSE_ORDER_SOUND"`
	Dir        string `yaml:"dir" env:"VERSE_ORDER_SOUNDS_DIR"`
	SampleRate int    `yaml:"sample_rate" env:"VERSE_ORDER_SAMPLE_RATE"`
}

// Logging configures the diagnostic log.
type Logging struct {
	Level string `yaml:"level" env:"VERSE_ORDER_LOG_LEVEL"`
	File  string `yaml:"file" env:"VERSE_ORDER_LOG_FILE"`
}

// UI configures the initial presentation.
type UI struct {
	Mode         string `yaml:"mode" env:"VERSE_ORDER_MODE"`
	Theme        string `yaml:"theme" env:"VERSE_ORDER_THEME"`
	SettingsFile string `yaml:"settings_file" env:"VERSE_ORDER_SETTINGS"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Chapters: Chapters{
			Default:       "psalm23",
			FetchTimeout:  10 * time.Second,
			CacheMaxBytes: 8 << 20,
			CacheTTL:      10 * time.Minute,
		},
		Sound: Sound{
			Enabled:    true,
			Dir:        "sounds",
			SampleRate: 44100,
		},
		Logging: Logging{
			Level: "info",
			File:  "verse-order.log",
		},
		UI: UI{
			Mode:  "game",
			Theme: "catppuccin-mocha",
		},
	}
}
