// Package config loads Quill's CLI settings from quill.yml and QUILL_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/simonhull/firebird-suite/quill/logger"
	"github.com/simonhull/firebird-suite/quill/textbuf"
	"github.com/spf13/viper"
)

// Config holds CLI-wide defaults.
type Config struct {
	CommentPattern string
	FileMode       os.FileMode
	MkdirAll       bool
	LogLevel       logger.Level
}

// BufferDefaults returns the buffer configuration for layouts that do not
// declare their own.
func (c *Config) BufferDefaults() textbuf.Config {
	return textbuf.Config{CommentPattern: c.CommentPattern}
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		CommentPattern: textbuf.DefaultCommentPattern,
		FileMode:       0644,
		LogLevel:       logger.LevelInfo,
	}
}

// Load reads configuration. When path is empty, quill.yml is looked up in
// the working directory; a missing file is not an error. An explicit path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("QUILL")
	v.AutomaticEnv()

	v.SetDefault("comment_pattern", textbuf.DefaultCommentPattern)
	v.SetDefault("file_mode", "0644")
	v.SetDefault("mkdir", false)
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("quill")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read quill config: %w", err)
		}
	}

	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("loaded quill config", logger.F("path", used))
	} else {
		logger.Debug("no quill.yml found, using defaults")
	}

	mode, err := fileMode(v.Get("file_mode"))
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}

	return &Config{
		CommentPattern: v.GetString("comment_pattern"),
		FileMode:       mode,
		MkdirAll:       v.GetBool("mkdir"),
		LogLevel:       level,
	}, nil
}

// fileMode accepts an integer already decoded by YAML (0644 is octal there)
// or an octal string such as "0644" from the environment.
func fileMode(raw any) (os.FileMode, error) {
	var n uint64
	switch v := raw.(type) {
	case int:
		n = uint64(v)
	case int64:
		n = uint64(v)
	case uint64:
		n = v
	case string:
		parsed, err := strconv.ParseUint(v, 8, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid file_mode %q: must be octal (e.g. 0644)", v)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("invalid file_mode %v: must be octal (e.g. 0644)", raw)
	}
	if n == 0 || n > 0777 {
		return 0, fmt.Errorf("invalid file_mode %o: must be between 0001 and 0777", n)
	}
	return os.FileMode(n), nil
}
