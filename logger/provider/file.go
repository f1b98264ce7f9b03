package provider

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/go-labellog/logger"
)

// FileConfig is the on-disk logger configuration.
type FileConfig struct {
	// Level is a level name such as "warn". Empty keeps the default.
	Level string `toml:"level" yaml:"level"`
	// Prefix is a fixed string emitted before the label.
	Prefix string `toml:"prefix" yaml:"prefix"`
	// Timestamp is a time layout; when set, every line starts with the
	// current time in that layout.
	Timestamp string `toml:"timestamp" yaml:"timestamp"`
}

// ReadFileConfig reads a TOML (.toml) or YAML (.yaml, .yml) file. A missing
// file yields an empty configuration.
func ReadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &FileConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	return &cfg, nil
}

// Validate reports every problem in c. Invalid values are still usable:
// an unknown level permits everything.
func (c *FileConfig) Validate() error {
	var result *multierror.Error
	if _, err := logger.ParseLevel(c.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("level: %w", err))
	}
	if strings.ContainsAny(c.Prefix, "\r\n") {
		result = multierror.Append(result, errors.New("prefix: must be a single line"))
	}
	if c.Timestamp != "" {
		ref := time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC)
		if ref.Format(c.Timestamp) == c.Timestamp {
			result = multierror.Append(result, fmt.Errorf("timestamp: layout %q has no time fields", c.Timestamp))
		}
	}
	return result.ErrorOrNil()
}

// Config converts c to a logger.Config. now supplies the timestamp.
func (c *FileConfig) Config(now func() time.Time) logger.Config {
	level, _ := logger.ParseLevel(c.Level)
	cfg := logger.Config{LogLevel: level}

	prefix, layout := c.Prefix, c.Timestamp
	switch {
	case layout != "":
		cfg.Prefix = func() string {
			if prefix == "" {
				return now().Format(layout)
			}
			return now().Format(layout) + " " + prefix
		}
	case prefix != "":
		cfg.Prefix = func() string { return prefix }
	}
	return cfg
}

// File is a provider backed by a configuration file. The last successfully
// loaded configuration is served until Load succeeds again.
type File struct {
	path string
	now  func() time.Time

	mu  sync.RWMutex
	cfg logger.Config
}

// NewFile loads path and returns the provider. Read and parse errors
// return a nil File. Validation problems are returned alongside a usable
// File.
func NewFile(path string) (*File, error) {
	f := &File{path: path, now: time.Now}
	fc, err := f.read()
	if err != nil {
		return nil, err
	}
	return f, f.apply(fc)
}

// Path returns the watched file path.
func (f *File) Path() string {
	return f.path
}

// Load re-reads the file. On read or parse errors the previous
// configuration is kept; validation errors are returned but the new
// configuration is applied.
func (f *File) Load() error {
	fc, err := f.read()
	if err != nil {
		return err
	}
	return f.apply(fc)
}

func (f *File) read() (*FileConfig, error) {
	fc, err := ReadFileConfig(f.path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", f.path, err)
	}
	return fc, nil
}

func (f *File) apply(fc *FileConfig) error {
	cfg := fc.Config(f.now)

	f.mu.Lock()
	f.cfg = cfg
	f.mu.Unlock()

	if err := fc.Validate(); err != nil {
		return fmt.Errorf("validating %s: %w", f.path, err)
	}
	return nil
}

// Provider returns a logger.Provider serving the current configuration.
func (f *File) Provider() logger.Provider {
	return func() logger.Config {
		f.mu.RLock()
		defer f.mu.RUnlock()
		return f.cfg
	}
}
