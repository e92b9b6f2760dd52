// Package config loads the TOML configuration shared by the commands.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/simonhull/id3meta"
)

// Config is the merged command configuration. Zero values in the file do
// not override defaults unless the key is present.
type Config struct {
	AllowOrigins []string
	LogLevel     string
	Listen       string
	MaxUpload    int64
	Concurrency  int
	MaxTagSize   uint32
	Strict       bool
	Resync       bool
	JSON         bool
}

type fileConfig struct {
	AllowOrigins []string `toml:"allow_origins"`
	LogLevel     string   `toml:"log_level"`
	Listen       string   `toml:"listen"`
	MaxUpload    int64    `toml:"max_upload"`
	Concurrency  int      `toml:"concurrency"`
	MaxTagSize   uint32   `toml:"max_tag_size"`
	Strict       bool     `toml:"strict"`
	Resync       bool     `toml:"resync"`
	JSON         bool     `toml:"json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Listen:    ":8080",
		MaxUpload: 32 << 20,
		Resync:    true,
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		level := strings.TrimSpace(raw.LogLevel)
		if _, err := zerolog.ParseLevel(level); err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	if meta.IsDefined("listen") {
		cfg.Listen = strings.TrimSpace(raw.Listen)
	}

	if meta.IsDefined("allow_origins") {
		cfg.AllowOrigins = normalizeOrigins(raw.AllowOrigins)
	}

	if meta.IsDefined("max_upload") {
		if raw.MaxUpload <= 0 {
			return Config{}, fmt.Errorf("max_upload must be positive, got %d", raw.MaxUpload)
		}
		cfg.MaxUpload = raw.MaxUpload
	}

	if meta.IsDefined("concurrency") {
		if raw.Concurrency < 0 {
			return Config{}, fmt.Errorf("concurrency must not be negative, got %d", raw.Concurrency)
		}
		cfg.Concurrency = raw.Concurrency
	}

	if meta.IsDefined("max_tag_size") {
		cfg.MaxTagSize = raw.MaxTagSize
	}

	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}

	if meta.IsDefined("resync") {
		cfg.Resync = raw.Resync
	}

	if meta.IsDefined("json") {
		cfg.JSON = raw.JSON
	}

	return cfg, nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		if v := strings.TrimSpace(origin); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Options converts the parse keys into decoder options.
func (c Config) Options() []id3meta.Option {
	opts := []id3meta.Option{id3meta.WithResync(c.Resync)}
	if c.Strict {
		opts = append(opts, id3meta.WithStrictParsing())
	}
	if c.MaxTagSize > 0 {
		opts = append(opts, id3meta.WithMaxTagSize(c.MaxTagSize))
	}
	return opts
}
