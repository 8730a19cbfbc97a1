package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fcafm/fm"
	"github.com/katalvlaran/fcafm/groups"
	"github.com/katalvlaran/fcafm/hierarchy"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FMSYNTH_"

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidSettings indicates a setting outside its domain.
var ErrInvalidSettings = errors.New("settings: invalid settings")

// LogSettings configures the process logger.
type LogSettings struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" json:"level"`

	// Format is text or json.
	Format string `yaml:"format" json:"format"`
}

// Settings is the merged configuration of one synthesis run.
type Settings struct {
	// Root is the name of the root feature. Required.
	Root string `yaml:"root" json:"root"`

	// Input is a configuration file or a directory of them.
	Input string `yaml:"input" json:"input"`

	// Output is the model file; empty writes to stdout.
	Output string `yaml:"output" json:"output"`

	// ACPoset, when set, receives the reduced AC-poset in DOT.
	ACPoset string `yaml:"ac_poset" json:"ac_poset"`

	// Selector names the tree selector (max-depth, dfs, random).
	Selector string `yaml:"selector" json:"selector"`

	// Seed drives the random selector.
	Seed int64 `yaml:"seed" json:"seed"`

	// MaxExactChildren caps the exact group partition search.
	MaxExactChildren int `yaml:"max_exact_children" json:"max_exact_children"`

	// EmptyAssignment is the zero-assignment policy (attributed, cross-tree).
	EmptyAssignment string `yaml:"empty_assignment" json:"empty_assignment"`

	// Estimates appends configuration-count estimates to the model.
	Estimates bool `yaml:"estimates" json:"estimates"`

	// Force allows overwriting existing output files.
	Force bool `yaml:"force" json:"force"`

	// Workers bounds concurrent file decoding; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`

	// MetricsFile, when set, receives run metrics in Prometheus text format.
	MetricsFile string `yaml:"metrics_file" json:"metrics_file"`

	Log LogSettings `yaml:"log" json:"log"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Input:            ".",
		Selector:         hierarchy.NameMaxDepth,
		MaxExactChildren: groups.MaxExactChildren,
		EmptyAssignment:  "attributed",
		Log: LogSettings{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Load merges defaults, the optional file at path and the environment.
// A missing file leaves the defaults in place.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		if err := loadFile(path, &s); err != nil {
			return s, fmt.Errorf("Load: %w", err)
		}
	}

	loadEnv(&s, os.Getenv)

	return s, nil
}

func loadFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// YAML first, then JSON
	if err := yaml.Unmarshal(data, s); err != nil {
		if jsonErr := json.Unmarshal(data, s); jsonErr != nil {
			return fmt.Errorf("parse %s (tried YAML and JSON): YAML error: %v, JSON error: %w", path, err, jsonErr)
		}
	}

	return nil
}

func loadEnv(s *Settings, getenv func(string) string) {
	str := func(key string, dst *string) {
		if v := getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}
	flag := func(key string, dst *bool) {
		if v := getenv(EnvPrefix + key); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}
	num := func(key string, dst *int) {
		if v := getenv(EnvPrefix + key); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				*dst = i
			}
		}
	}

	str("ROOT", &s.Root)
	str("INPUT", &s.Input)
	str("OUTPUT", &s.Output)
	str("AC_POSET", &s.ACPoset)
	str("SELECTOR", &s.Selector)
	if v := getenv(EnvPrefix + "SEED"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = i
		}
	}
	num("MAX_EXACT_CHILDREN", &s.MaxExactChildren)
	str("EMPTY_ASSIGNMENT", &s.EmptyAssignment)
	flag("ESTIMATES", &s.Estimates)
	flag("FORCE", &s.Force)
	num("WORKERS", &s.Workers)
	str("METRICS_FILE", &s.MetricsFile)
	str("LOG_LEVEL", &s.Log.Level)
	str("LOG_FORMAT", &s.Log.Format)
}

// Validate checks every setting against its domain.
func (s Settings) Validate() error {
	if s.Root == "" {
		return fmt.Errorf("root is required: %w", ErrInvalidSettings)
	}
	if s.Input == "" {
		return fmt.Errorf("input is required: %w", ErrInvalidSettings)
	}
	if _, err := hierarchy.ByName(s.Selector, s.Seed); err != nil {
		return fmt.Errorf("selector: %w: %w", ErrInvalidSettings, err)
	}
	if s.MaxExactChildren < 1 || s.MaxExactChildren > groups.MaxExactChildren {
		return fmt.Errorf("max_exact_children must be in [1,%d]: %w", groups.MaxExactChildren, ErrInvalidSettings)
	}
	if _, err := fm.ParseEmptyAssignment(s.EmptyAssignment); err != nil {
		return fmt.Errorf("empty_assignment: %w: %w", ErrInvalidSettings, err)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be >= 0: %w", ErrInvalidSettings)
	}
	if _, err := s.Log.level(); err != nil {
		return err
	}
	if f := strings.ToLower(s.Log.Format); f != FormatText && f != FormatJSON {
		return fmt.Errorf("log.format must be text or json: %w", ErrInvalidSettings)
	}

	return nil
}

func (l LogSettings) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return lvl, fmt.Errorf("log.level: %w: %w", ErrInvalidSettings, err)
	}

	return lvl, nil
}

// NewLogger builds a text or JSON slog.Logger writing to w.
func (l LogSettings) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(l.Format) == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
