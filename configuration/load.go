package configuration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// ExtCSVConf is the one-configuration-per-file extension.
	ExtCSVConf = ".csvconf"
	// ExtJSON holds a JSON array of configurations.
	ExtJSON = ".json"
	// ExtYAML and ExtYML hold a YAML sequence of configurations.
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// Supported reports whether path has an extension with a decoder.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtCSVConf, ExtJSON, ExtYAML, ExtYML:
		return true
	default:
		return false
	}
}

// LoadFile decodes the configurations stored in path, choosing the decoder
// by extension. A .csvconf file yields one configuration named by the file
// stem.
func LoadFile(path string) ([]Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtCSVConf:
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		cfg, err := DecodeCSVConf(stem, f)
		if err != nil {
			return nil, err
		}
		return []Configuration{cfg}, nil
	case ExtJSON:
		return DecodeJSON(f)
	case ExtYAML, ExtYML:
		return DecodeYAML(f)
	default:
		return nil, fmt.Errorf("LoadFile %q: %w", path, ErrUnsupportedFormat)
	}
}

// LoadDir decodes every supported file directly inside dir. Files are parsed
// concurrently with at most limit goroutines (GOMAXPROCS when limit ≤ 0);
// the merged result is sorted by ID so the output never depends on
// scheduling. Unsupported files are ignored; the first decode error
// cancels the rest.
func LoadDir(ctx context.Context, dir string, limit int) ([]Configuration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	parts := make([][]Configuration, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			cfgs, err := LoadFile(p)
			if err != nil {
				return err
			}
			parts[i] = cfgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("LoadDir %q: %w", dir, err)
	}

	var out []Configuration
	for _, part := range parts {
		out = append(out, part...)
	}
	SortByID(out)

	return out, nil
}

// Load reads path as a directory (LoadDir) or a single file (LoadFile).
// A single file keeps its own configuration order.
func Load(ctx context.Context, path string) ([]Configuration, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if info.IsDir() {
		return LoadDir(ctx, path, 0)
	}

	return LoadFile(path)
}
