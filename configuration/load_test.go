package configuration_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcafm/configuration"
)

func TestDecodeCSVConf(t *testing.T) {
	in := "\"A\",True\n\"B\",False\n\"with,comma\",True\n"
	cfg, err := configuration.DecodeCSVConf("serde-1.0", strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "serde-1.0", cfg.ID)
	assert.Equal(t, map[string]bool{"A": true, "B": false, "with,comma": true}, cfg.Features)
}

func TestDecodeCSVConf_Malformed(t *testing.T) {
	for _, in := range []string{
		"\"A\",Maybe\n",
		"\"A\",True,extra\n",
		"\"\",True\n",
	} {
		_, err := configuration.DecodeCSVConf("x", strings.NewReader(in))
		assert.ErrorIs(t, err, configuration.ErrMalformedRecord, in)
	}
}

func TestEncodeCSVConf(t *testing.T) {
	var buf bytes.Buffer
	c := configuration.Configuration{ID: "x", Features: map[string]bool{"a": true}}
	require.NoError(t, configuration.EncodeCSVConf(&buf, c, []string{"a", "b"}))
	assert.Equal(t, "\"a\",True\n\"b\",False\n", buf.String())

	back, err := configuration.DecodeCSVConf("x", &buf)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": true, "b": false}, back.Features)
}

func TestDecodeJSONAndYAML(t *testing.T) {
	js := `[{"id":"c1","features":{"A":true}},{"id":"c2","features":{"A":true,"B":true}}]`
	fromJSON, err := configuration.DecodeJSON(strings.NewReader(js))
	require.NoError(t, err)

	ym := "- id: c1\n  features:\n    A: true\n- id: c2\n  features:\n    A: true\n    B: true\n"
	fromYAML, err := configuration.DecodeYAML(strings.NewReader(ym))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	require.Len(t, fromJSON, 2)
	assert.True(t, fromJSON[1].Enabled("B"))

	_, err = configuration.DecodeJSON(strings.NewReader("{"))
	assert.Error(t, err)

	empty, err := configuration.DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c3.csvconf", "\"A\",True\n\"C\",True\n")
	writeFile(t, dir, "c1.csvconf", "\"A\",True\n")
	writeFile(t, dir, "more.yaml", "- id: c2\n  features:\n    A: true\n    B: true\n")
	writeFile(t, dir, "README.md", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csvconf"), 0o755))

	cfgs, err := configuration.LoadDir(context.Background(), dir, 2)
	require.NoError(t, err)

	ids := make([]string, len(cfgs))
	for i, c := range cfgs {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"c1", "c2", "c3"}, ids)

	viaLoad, err := configuration.Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, cfgs, viaLoad)
}

func TestLoadDir_Error(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.csvconf", "\"A\",True\n")
	writeFile(t, dir, "bad.csvconf", "\"A\",Nope\n")

	_, err := configuration.LoadDir(context.Background(), dir, 0)
	assert.ErrorIs(t, err, configuration.ErrMalformedRecord)

	_, err = configuration.LoadDir(context.Background(), filepath.Join(dir, "missing"), 0)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "set.json", `[{"id":"z","features":{}},{"id":"a","features":{"x":true}}]`)

	cfgs, err := configuration.Load(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, cfgs, 2)
	assert.Equal(t, "z", cfgs[0].ID, "single files keep their order")

	_, err = configuration.LoadFile(writeFile(t, dir, "set.toml", ""))
	assert.ErrorIs(t, err, configuration.ErrUnsupportedFormat)

	assert.True(t, configuration.Supported("x.YML"))
	assert.False(t, configuration.Supported("x.txt"))
}
