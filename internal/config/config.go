package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/skelly-dev/skelly/internal/branding"
	"github.com/skelly-dev/skelly/internal/logging"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyVerbose     = "verbose"
	KeyLogEncoding = "log_encoding"
	KeyLogFile     = "log_file"
)

// keys maps every known setting to a parser that checks and normalizes a
// value given on the command line.
var keys = map[string]func(string) (interface{}, error){
	KeyVerbose: func(s string) (interface{}, error) {
		return cast.ToBoolE(s)
	},
	KeyLogEncoding: func(s string) (interface{}, error) {
		if s != string(logging.Console) && s != string(logging.JSON) {
			return nil, fmt.Errorf("must be %q or %q", logging.Console, logging.JSON)
		}
		return s, nil
	},
	KeyLogFile: func(s string) (interface{}, error) { return s, nil },
}

// Settings are the typed values the CLI consumes.
type Settings struct {
	Verbose     bool
	LogEncoding logging.Encoding
	LogFile     string
}

// Store reads and writes one config file.
type Store struct {
	v    *viper.Viper
	path string
}

// Dir returns the path to the skelly config directory (~/.skelly/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// Load opens the config file in Dir.
func Load() (*Store, error) {
	return Open(Dir())
}

// Open reads dir/config.yaml if it exists and layers environment variables
// on top. A missing file is not an error.
func Open(dir string) (*Store, error) {
	s := &Store{
		v:    viper.New(),
		path: filepath.Join(dir, fileName+"."+fileType),
	}
	s.v.SetConfigFile(s.path)
	s.v.SetConfigType(fileType)
	s.v.SetEnvPrefix(branding.EnvPrefix())
	s.v.AutomaticEnv()
	s.v.SetDefault(KeyVerbose, false)
	s.v.SetDefault(KeyLogEncoding, string(logging.Console))

	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", s.path, err)
	}
	if err := s.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", s.path, err)
	}
	return s, nil
}

// Path returns the config file location.
func (s *Store) Path() string { return s.path }

// Keys returns the known setting keys, sorted.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Get returns a config value by key. Returns empty string if not set.
func (s *Store) Get(key string) string {
	return s.v.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func (s *Store) Set(key, value string) error {
	parse, ok := keys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	parsed, err := parse(value)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	s.v.Set(key, parsed)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Settings returns the typed settings. Unknown encodings fall back to the
// console encoder.
func (s *Store) Settings() Settings {
	enc := logging.Encoding(s.v.GetString(KeyLogEncoding))
	if !slices.Contains([]logging.Encoding{logging.Console, logging.JSON}, enc) {
		enc = logging.Console
	}
	return Settings{
		Verbose:     s.v.GetBool(KeyVerbose),
		LogEncoding: enc,
		LogFile:     s.v.GetString(KeyLogFile),
	}
}
