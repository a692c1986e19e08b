// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz QuizConfig `toml:"quiz"`
}

// QuizConfig maps quiz-related settings. Nil fields were not set in the file.
type QuizConfig struct {
	Type             *string   `toml:"type"`
	KanaMode         *string   `toml:"kana-mode"`
	Rows             *[]string `toml:"rows"`
	KanjiMode        *string   `toml:"kanji-mode"`
	KanjiCount       *int      `toml:"kanji-count"`
	Behavior         *string   `toml:"behavior"`
	Advance          *string   `toml:"advance"`
	CorrectDelayMS   *int      `toml:"correct-delay-ms"`
	IncorrectDelayMS *int      `toml:"incorrect-delay-ms"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
