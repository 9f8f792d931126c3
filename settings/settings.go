// Package settings loads the process-wide card defaults: the language code
// used for rendering, JSON indentation, and the cache backends used by
// cardgen. Values come from the environment (optionally seeded from a .env
// file) and are overlaid by an optional YAML file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/utsurius/actionable-messages/card"
)

// ErrInvalidLanguage is returned when the language code does not parse as a
// BCP 47 tag.
var ErrInvalidLanguage = errors.New("settings: invalid language code")

// Settings are the card defaults. Defaults can be loaded via envdecode.
type Settings struct {
	// LanguageCode is passed to the encoder on every render.
	// ENV: ACTIONABLE_MESSAGES_LANGUAGE_CODE
	LanguageCode string `env:"ACTIONABLE_MESSAGES_LANGUAGE_CODE,default=en-us" yaml:"language_code"`
	// Indent enables indented JSON output when non-empty.
	// ENV: ACTIONABLE_MESSAGES_INDENT
	Indent string `env:"ACTIONABLE_MESSAGES_INDENT" yaml:"indent"`
	// RedisAddr like "localhost:6379" selects the redis cache.
	// ENV: ACTIONABLE_MESSAGES_REDIS_ADDR
	RedisAddr string `env:"ACTIONABLE_MESSAGES_REDIS_ADDR" yaml:"redis_addr"`
	// BoltPath selects the bolt cache when RedisAddr is empty.
	// ENV: ACTIONABLE_MESSAGES_BOLT_PATH
	BoltPath string `env:"ACTIONABLE_MESSAGES_BOLT_PATH" yaml:"bolt_path"`
	// CacheTTL bounds how long rendered payloads are cached.
	// ENV: ACTIONABLE_MESSAGES_CACHE_TTL
	CacheTTL time.Duration `env:"ACTIONABLE_MESSAGES_CACHE_TTL,default=10m" yaml:"cache_ttl"`

	// Encoder overrides card.DefaultEncoder. It is never loaded.
	Encoder card.Encoder `yaml:"-"`
}

// Load builds Settings from the environment and, when path is non-empty, the
// YAML file at path. dotenv lists .env files to seed the environment from;
// with none, ./.env is tried. Missing .env files are ignored and variables
// already set in the environment win.
func Load(path string, dotenv ...string) (Settings, error) {
	_ = godotenv.Load(dotenv...)

	var s Settings
	if err := envdecode.Decode(&s); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Settings{}, fmt.Errorf("settings: decode env: %w", err)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &s); err != nil {
			return Settings{}, fmt.Errorf("settings: parse %s: %w", path, err)
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the language code.
func (s Settings) Validate() error {
	if _, err := language.Parse(s.LanguageCode); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, s.LanguageCode)
	}
	return nil
}

// Language returns the parsed language code, or English when it does not
// parse.
func (s Settings) Language() language.Tag {
	tag, err := language.Parse(s.LanguageCode)
	if err != nil {
		return language.English
	}
	return tag
}

// CardOptions returns the card options carrying these settings.
func (s Settings) CardOptions() []card.Option {
	opts := []card.Option{card.WithLanguageCode(s.LanguageCode)}
	if s.Encoder != nil {
		opts = append(opts, card.WithEncoder(s.Encoder))
	}
	if s.Indent != "" {
		opts = append(opts, card.WithIndent("", s.Indent))
	}
	return opts
}
