package uvl_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcafm/configuration"
	"github.com/katalvlaran/fcafm/fm"
	"github.com/katalvlaran/fcafm/hierarchy"
	"github.com/katalvlaran/fcafm/poset"
	"github.com/katalvlaran/fcafm/uvl"
)

func model(t *testing.T, configs []configuration.Configuration, opts ...fm.Option) *fm.Model {
	t.Helper()
	set, err := configuration.NewSet("root", configs)
	require.NoError(t, err)
	p, err := poset.Build(set)
	require.NoError(t, err)
	tree, err := hierarchy.MaxDepth{}.Select(p)
	require.NoError(t, err)
	m, err := fm.Build(p, tree, opts...)
	require.NoError(t, err)

	return m
}

func example() []configuration.Configuration {
	return []configuration.Configuration{
		{ID: "1", Features: map[string]bool{"A": true}},
		{ID: "2", Features: map[string]bool{"A": true, "B": true}},
		{ID: "3", Features: map[string]bool{"A": true, "C": true}},
	}
}

func TestEncode_Example(t *testing.T) {
	want := "features\n" +
		"\t\"root\"\n" +
		"\t\tmandatory\n" +
		"\t\t\t\"A\"\n" +
		"\t\t[0..1]\n" +
		"\t\t\t\"B\"\n" +
		"\t\t\t\"C\"\n" +
		"constraints\n" +
		"\t\"B\" => !\"C\"\n"
	assert.Equal(t, want, uvl.Encode(model(t, example())))
}

func TestEncode_ExampleCrossTreePolicy(t *testing.T) {
	want := "features\n" +
		"\t\"root\"\n" +
		"\t\tmandatory\n" +
		"\t\t\t\"A\"\n" +
		"\t\talternative\n" +
		"\t\t\t\"B\"\n" +
		"\t\t\t\"C\"\n" +
		"constraints\n" +
		"\t\"B\" => !\"C\"\n"
	m := model(t, example(), fm.WithEmptyAssignment(fm.EmptyOnCrossTree))
	assert.Equal(t, want, uvl.Encode(m))
}

func TestWrite_Estimates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, uvl.Write(&buf, model(t, example()), uvl.WithEstimates()))
	want := "features\n" +
		"\t\"root\" // 3\n" +
		"\t\tmandatory // 1\n" +
		"\t\t\t\"A\" // 1\n" +
		"\t\t[0..1] // 3\n" +
		"\t\t\t\"B\" // 1\n" +
		"\t\t\t\"C\" // 1\n" +
		"constraints\n" +
		"\t\"B\" => !\"C\"\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_ImpliesAbstractAndNoConstraints(t *testing.T) {
	m := &fm.Model{
		Root: &fm.Feature{Name: "root", Groups: []*fm.Group{
			fm.Optional([]*fm.Feature{fm.Leaf("x", true)}),
		}},
	}
	assert.Equal(t, "features\n\t\"root\"\n\t\toptional\n\t\t\t\"x\" {abstract}\n", uvl.Encode(m))

	m.Constraints = []fm.Constraint{{Kind: fm.Implies, Left: "x", Right: "root"}}
	assert.Contains(t, uvl.Encode(m), "constraints\n\t\"x\" => \"root\"\n")
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, uvl.Quote("plain"))
	assert.Equal(t, `"a\"b"`, uvl.Quote(`a"b`))
	assert.Equal(t, `"a\\b"`, uvl.Quote(`a\b`))
}

func TestWrite_NilModel(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, uvl.Write(&buf, nil), uvl.ErrNilModel)
	assert.ErrorIs(t, uvl.Write(&buf, &fm.Model{}), uvl.ErrNilModel)
	assert.Equal(t, "", uvl.Encode(nil))
}

// TestEncode_Deterministic rebuilds the same random input twice and expects
// byte-identical output.
func TestEncode_Deterministic(t *testing.T) {
	gen := func() []configuration.Configuration {
		r := rand.New(rand.NewSource(11))
		out := make([]configuration.Configuration, 25)
		for i := range out {
			m := map[string]bool{}
			for f := 0; f < 10; f++ {
				m[fmt.Sprintf("feat_%d", f)] = r.Intn(3) > 0
			}
			out[i] = configuration.Configuration{ID: fmt.Sprintf("cfg%02d", i), Features: m}
		}
		return out
	}

	a := uvl.Encode(model(t, gen()), uvl.WithEstimates())
	b := uvl.Encode(model(t, gen()), uvl.WithEstimates())
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}
