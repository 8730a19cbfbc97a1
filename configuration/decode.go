package configuration

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeJSON reads a JSON array of {"id": ..., "features": {...}} objects.
func DecodeJSON(r io.Reader) ([]Configuration, error) {
	var configs []Configuration
	dec := json.NewDecoder(r)
	if err := dec.Decode(&configs); err != nil {
		return nil, fmt.Errorf("DecodeJSON: %w", err)
	}

	return configs, nil
}

// DecodeYAML reads a YAML sequence of {id, features} mappings.
func DecodeYAML(r io.Reader) ([]Configuration, error) {
	var configs []Configuration
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&configs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("DecodeYAML: %w", err)
	}

	return configs, nil
}

// DecodeCSVConf reads a single configuration in .csvconf form: one
// `"feature",True|False` record per line. id names the configuration.
func DecodeCSVConf(id string, r io.Reader) (Configuration, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	cfg := Configuration{ID: id, Features: make(map[string]bool)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Configuration{}, fmt.Errorf("DecodeCSVConf %q: %w: %v", id, ErrMalformedRecord, err)
		}
		if rec[0] == "" {
			return Configuration{}, fmt.Errorf("DecodeCSVConf %q: %w: empty feature name", id, ErrMalformedRecord)
		}
		on, err := strconv.ParseBool(rec[1])
		if err != nil {
			return Configuration{}, fmt.Errorf("DecodeCSVConf %q: %w: %q", id, ErrMalformedRecord, rec[1])
		}
		cfg.Features[rec[0]] = on
	}

	return cfg, nil
}

// EncodeCSVConf writes c in .csvconf form, one line per name in names.
// Names missing from c are written as False.
func EncodeCSVConf(w io.Writer, c Configuration, names []string) error {
	bw := bufio.NewWriter(w)
	for _, name := range names {
		val := "False"
		if c.Enabled(name) {
			val = "True"
		}
		if _, err := fmt.Fprintf(bw, "\"%s\",%s\n", strings.ReplaceAll(name, `"`, `""`), val); err != nil {
			return err
		}
	}

	return bw.Flush()
}
