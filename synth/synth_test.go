package synth

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcafm/configuration"
	"github.com/katalvlaran/fcafm/settings"
)

const exampleModel = "features\n" +
	"\t\"root\"\n" +
	"\t\tmandatory\n" +
	"\t\t\t\"A\"\n" +
	"\t\t[0..1]\n" +
	"\t\t\t\"B\"\n" +
	"\t\t\t\"C\"\n" +
	"constraints\n" +
	"\t\"B\" => !\"C\"\n"

func example() []configuration.Configuration {
	return []configuration.Configuration{
		{ID: "1", Features: map[string]bool{"A": true}},
		{ID: "2", Features: map[string]bool{"A": true, "B": true}},
		{ID: "3", Features: map[string]bool{"A": true, "C": true}},
	}
}

// writeInput stores the example as one JSON file in a fresh directory.
func writeInput(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	data, err := json.Marshal(example())
	require.NoError(t, err)
	path := filepath.Join(dir, "configs.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func baseSettings(input string) settings.Settings {
	s := settings.Default()
	s.Root = "root"
	s.Input = input

	return s
}

func TestRun_Stdout(t *testing.T) {
	var out bytes.Buffer
	res, err := New(WithStdout(&out)).Run(context.Background(), baseSettings(writeInput(t)))
	require.NoError(t, err)

	assert.Equal(t, exampleModel, out.String())
	assert.Equal(t, 3, res.Set.Len())
	assert.Len(t, res.Poset.Concepts, 3)
}

func TestRun_Files(t *testing.T) {
	input := writeInput(t)
	dir := t.TempDir()
	s := baseSettings(input)
	s.Output = filepath.Join(dir, "model.uvl")
	s.ACPoset = filepath.Join(dir, "poset.dot")
	s.MetricsFile = filepath.Join(dir, "fmsynth.prom")

	_, err := New().Run(context.Background(), s)
	require.NoError(t, err)

	model, err := os.ReadFile(s.Output)
	require.NoError(t, err)
	assert.Equal(t, exampleModel, string(model))

	dot, err := os.ReadFile(s.ACPoset)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dot), "digraph"))

	prom, err := os.ReadFile(s.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `fmsynth_runs_total{result="ok"} 1`)
	assert.Contains(t, string(prom), "fmsynth_concepts 3")

	// second run refuses to overwrite
	_, err = New().Run(context.Background(), s)
	assert.ErrorIs(t, err, ErrOutputExists)

	s.Force = true
	_, err = New().Run(context.Background(), s)
	assert.NoError(t, err)
}

func TestRun_Directory(t *testing.T) {
	dir := t.TempDir()
	for _, c := range example() {
		var buf bytes.Buffer
		require.NoError(t, configuration.EncodeCSVConf(&buf, c, []string{"A", "B", "C"}))
		require.NoError(t, os.WriteFile(filepath.Join(dir, c.ID+".csvconf"), buf.Bytes(), 0o644))
	}
	s := baseSettings(dir)
	s.Workers = 2

	var out bytes.Buffer
	res, err := New(WithStdout(&out)).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, res.Set.IDs())
	assert.Equal(t, exampleModel, out.String())
}

func TestRun_Errors(t *testing.T) {
	s := baseSettings(filepath.Join(t.TempDir(), "missing.json"))
	_, err := New().Run(context.Background(), s)
	assert.ErrorIs(t, err, os.ErrNotExist)

	s = baseSettings(writeInput(t))
	s.Root = ""
	_, err = New().Run(context.Background(), s)
	assert.ErrorIs(t, err, settings.ErrInvalidSettings)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(WithStdout(&bytes.Buffer{})).Run(ctx, baseSettings(writeInput(t)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSynthesize_Policies(t *testing.T) {
	set, err := configuration.NewSet("root", example())
	require.NoError(t, err)

	s := baseSettings(".")
	s.EmptyAssignment = "cross-tree"
	res, err := New().Synthesize(set, s)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Model.Root.Groups[1].Min)
	assert.Equal(t, 1, res.Model.Root.Groups[1].Max)

	s.Selector = "random"
	s.Seed = 3
	_, err = New().Synthesize(set, s)
	assert.NoError(t, err)
}

func TestSynthesize_UnusedFeatures(t *testing.T) {
	set, err := configuration.NewSet("root", []configuration.Configuration{
		{ID: "a", Features: map[string]bool{}},
	}, "ghost")
	require.NoError(t, err)

	res, err := New().Synthesize(set, baseSettings("."))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Model.Stats.UnusedFeatures)
	assert.Len(t, res.Poset.Concepts, 1)
}

func TestRunner_MetricsAndLogs(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)
	var logs bytes.Buffer
	s := baseSettings(writeInput(t))
	s.Log.Level = "debug"
	log, err := s.Log.NewLogger(&logs)
	require.NoError(t, err)

	r := New(WithMetrics(m), WithLogger(log), WithStdout(&bytes.Buffer{}))
	_, err = r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.configurations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.constraints.WithLabelValues("excludes")))
	assert.Equal(t, 5, testutil.CollectAndCount(m.phaseDuration))
	assert.Contains(t, logs.String(), "synthesized feature model")
	assert.Contains(t, logs.String(), "phase=poset")

	s.Root = ""
	_, err = r.Run(context.Background(), s)
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("error")))
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { WithLogger(nil) })
	assert.Panics(t, func() { WithStdout(nil) })
}
