package fm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcafm/configuration"
	"github.com/katalvlaran/fcafm/fm"
	"github.com/katalvlaran/fcafm/groups"
	"github.com/katalvlaran/fcafm/hierarchy"
	"github.com/katalvlaran/fcafm/poset"
)

func build(t *testing.T, configs []configuration.Configuration, extra []string, opts ...fm.Option) *fm.Model {
	t.Helper()
	set, err := configuration.NewSet("root", configs, extra...)
	require.NoError(t, err)
	p, err := poset.Build(set)
	require.NoError(t, err)
	tree, err := hierarchy.MaxDepth{}.Select(p)
	require.NoError(t, err)
	m, err := fm.Build(p, tree, opts...)
	require.NoError(t, err)

	return m
}

func cfg(id string, names ...string) configuration.Configuration {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}

	return configuration.Configuration{ID: id, Features: m}
}

func names(fs []*fm.Feature) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name
	}

	return out
}

func exampleConfigs() []configuration.Configuration {
	return []configuration.Configuration{cfg("1", "A"), cfg("2", "A", "B"), cfg("3", "A", "C")}
}

// TestBuild_Example keeps {root,A} valid: the root concept still explains
// configuration 1, so "none of B, C" is an observed assignment.
func TestBuild_Example(t *testing.T) {
	m := build(t, exampleConfigs(), nil)

	require.Equal(t, "root", m.Root.Name)
	require.Len(t, m.Root.Groups, 2)

	mand := m.Root.Groups[0]
	assert.Equal(t, groups.Mandatory, mand.Kind())
	assert.Equal(t, []string{"A"}, names(mand.Features))

	bc := m.Root.Groups[1]
	assert.Equal(t, []string{"B", "C"}, names(bc.Features))
	assert.Equal(t, 0, bc.Min)
	assert.Equal(t, 1, bc.Max)
	assert.Equal(t, "[0..1]", bc.Keyword())
	assert.Equal(t, 3.0, bc.Estimate)
	assert.Equal(t, 3.0, m.Root.Estimate)

	assert.Equal(t, []fm.Constraint{{Kind: fm.Exclusive, Left: "B", Right: "C"}}, m.Constraints)
	assert.Equal(t, fm.Stats{
		Concepts: 3, Edges: 2, TreeEdges: 2, ExactNodes: 1, ExclusiveConstraints: 1,
	}, m.Stats)
}

// TestBuild_ExampleCrossTreePolicy reproduces the alternative group when
// the zero assignment is reserved for cross-tree parents.
func TestBuild_ExampleCrossTreePolicy(t *testing.T) {
	m := build(t, exampleConfigs(), nil, fm.WithEmptyAssignment(fm.EmptyOnCrossTree))

	require.Len(t, m.Root.Groups, 2)
	assert.Equal(t, []string{"A"}, names(m.Root.Groups[0].Features))
	bc := m.Root.Groups[1]
	assert.Equal(t, groups.Alternative, bc.Kind())
	assert.Equal(t, []string{"B", "C"}, names(bc.Features))
	assert.Equal(t, 2.0, m.Root.Estimate)
}

func TestBuild_AbstractWrappers(t *testing.T) {
	m := build(t, []configuration.Configuration{
		cfg("0", "X"), cfg("1", "Y"), cfg("2", "X", "Z"), cfg("3", "Y", "Z"),
	}, nil)

	require.Len(t, m.Root.Groups, 1)
	top := m.Root.Groups[0]
	assert.Equal(t, groups.Mandatory, top.Kind())
	assert.Equal(t, []string{"abstract_1", "abstract_2"}, names(top.Features))

	a1, a2 := top.Features[0], top.Features[1]
	assert.True(t, a1.Abstract)
	require.Len(t, a1.Groups, 1)
	assert.Equal(t, groups.Alternative, a1.Groups[0].Kind())
	assert.Equal(t, []string{"X", "Y"}, names(a1.Groups[0].Features))
	assert.Equal(t, groups.Optional, a2.Groups[0].Kind())
	assert.Equal(t, []string{"Z"}, names(a2.Groups[0].Features))

	assert.Equal(t, 4.0, m.Root.Estimate)
	assert.Equal(t, 2, m.Stats.AbstractFeatures)
	assert.Equal(t, []fm.Constraint{{Kind: fm.Exclusive, Left: "X", Right: "Y"}}, m.Constraints)
}

// TestBuild_AbstractCounterIsPerBuild verifies numbering restarts per model.
func TestBuild_AbstractCounterIsPerBuild(t *testing.T) {
	configs := []configuration.Configuration{cfg("0", "X"), cfg("1", "Y"), cfg("2", "X", "Z"), cfg("3", "Y", "Z")}
	a := build(t, configs, nil)
	b := build(t, configs, nil)
	assert.NotNil(t, a.Find("abstract_1"))
	assert.NotNil(t, b.Find("abstract_1"))
	assert.Nil(t, b.Find("abstract_3"))
}

func TestBuild_UnusedFeatures(t *testing.T) {
	m := build(t, exampleConfigs(), []string{"D"})

	last := m.Root.Groups[len(m.Root.Groups)-1]
	assert.Equal(t, groups.Mandatory, last.Kind())
	require.Len(t, last.Features, 1)
	unused := last.Features[0]
	assert.Equal(t, fm.UnusedFeaturesName, unused.Name)
	assert.True(t, unused.Abstract)
	require.Len(t, unused.Groups, 1)
	assert.Equal(t, []string{"D", fm.UnusedPlaceholderName}, names(unused.Groups[0].Features))
	assert.Equal(t, 0, unused.Groups[0].Min)
	assert.Equal(t, 0, unused.Groups[0].Max)
	assert.True(t, unused.Groups[0].Features[1].Abstract)
	assert.Equal(t, 1, m.Stats.UnusedFeatures)

	m = build(t, exampleConfigs(), []string{"D", "E"})
	unused = m.Find(fm.UnusedFeaturesName)
	require.NotNil(t, unused)
	assert.Equal(t, []string{"D", "E"}, names(unused.Groups[0].Features))
	assert.Equal(t, "[0..0]", unused.Groups[0].Keyword())
}

// TestBuild_SyntheticNamesAvoidUniverse gives real features the names the
// builder would otherwise invent.
func TestBuild_SyntheticNamesAvoidUniverse(t *testing.T) {
	m := build(t, []configuration.Configuration{
		cfg("0", "X", "abstract_1"), cfg("1", "Y", "abstract_1"),
		cfg("2", "X", "Z", "abstract_1"), cfg("3", "Y", "Z", "abstract_1"),
	}, nil)

	require.Len(t, m.Root.Groups, 1)
	top := m.Root.Groups[0]
	assert.Equal(t, []string{"abstract_1", "abstract_2", "abstract_3"}, names(top.Features))
	assert.False(t, top.Features[0].Abstract)
	assert.True(t, top.Features[1].Abstract)
	assert.Equal(t, 2, m.Stats.AbstractFeatures)

	m = build(t, exampleConfigs(), []string{fm.UnusedFeaturesName})
	holder := m.Find(fm.UnusedFeaturesName + "_1")
	require.NotNil(t, holder)
	assert.True(t, holder.Abstract)
	assert.Equal(t, []string{fm.UnusedFeaturesName, fm.UnusedPlaceholderName}, names(holder.Groups[0].Features))

	m = build(t, exampleConfigs(), []string{fm.UnusedPlaceholderName})
	holder = m.Find(fm.UnusedFeaturesName)
	require.NotNil(t, holder)
	assert.Equal(t, []string{fm.UnusedPlaceholderName, fm.UnusedPlaceholderName + "_1"}, names(holder.Groups[0].Features))
}

func TestBuild_EquivalentFeaturesBecomeMandatoryLeaves(t *testing.T) {
	m := build(t, []configuration.Configuration{
		cfg("0", "B", "B2"), cfg("1"),
	}, nil)

	b := m.Find("B")
	require.NotNil(t, b)
	require.Len(t, b.Groups, 1)
	assert.Equal(t, groups.Mandatory, b.Groups[0].Kind())
	assert.Equal(t, []string{"B2"}, names(b.Groups[0].Features))
}

// TestBuild_CrossTreeImplies uses D ⊆ X, D ⊆ Y; D hangs under X so D→Y
// becomes an implication.
func TestBuild_CrossTreeImplies(t *testing.T) {
	m := build(t, []configuration.Configuration{
		cfg("c0", "Y", "X", "D"), cfg("c1", "Y"), cfg("c2", "X"), cfg("c3"),
	}, nil)

	assert.Equal(t, []fm.Constraint{{Kind: fm.Implies, Left: "D", Right: "Y"}}, m.Constraints)
	assert.Equal(t, 1, m.Stats.CrossTreeEdges)
	assert.Equal(t, 1, m.Stats.ImpliesConstraints)

	// X still explains c2 without D, so D is optional below X
	x := m.Find("X")
	require.NotNil(t, x)
	require.Len(t, x.Groups, 1)
	assert.Equal(t, groups.Optional, x.Groups[0].Kind())
}

func TestBuild_FallbackAboveCap(t *testing.T) {
	configs := []configuration.Configuration{cfg("none")}
	for _, n := range []string{"a", "b", "c", "d"} {
		configs = append(configs, cfg("only-"+n, n))
	}

	m := build(t, configs, nil, fm.WithMaxExactChildren(3))
	require.Len(t, m.Root.Groups, 1)
	assert.Equal(t, groups.Optional, m.Root.Groups[0].Kind())
	assert.Len(t, m.Root.Groups[0].Features, 4)
	assert.Equal(t, 1, m.Stats.FallbackNodes)

	exact := build(t, configs, nil)
	assert.Equal(t, 0, exact.Stats.FallbackNodes)
	assert.Equal(t, "[0..1]", exact.Root.Groups[0].Keyword())
}

func TestBuild_Errors(t *testing.T) {
	_, err := fm.Build(nil, nil)
	assert.ErrorIs(t, err, fm.ErrNilInput)

	set, err := configuration.NewSet("root", exampleConfigs())
	require.NoError(t, err)
	p, err := poset.Build(set)
	require.NoError(t, err)
	_, err = fm.Build(p, &hierarchy.Tree{Parent: []int{-1}, Root: 0})
	assert.ErrorIs(t, err, hierarchy.ErrInvalidTree)

	assert.Panics(t, func() { fm.WithMaxExactChildren(0) })
	assert.Panics(t, func() { fm.WithMaxExactChildren(groups.MaxExactChildren + 1) })
	assert.Panics(t, func() { fm.WithEmptyAssignment(fm.EmptyAssignment(9)) })
}

func TestParseEmptyAssignment(t *testing.T) {
	p, err := fm.ParseEmptyAssignment("cross-tree")
	require.NoError(t, err)
	assert.Equal(t, fm.EmptyOnCrossTree, p)

	p, err = fm.ParseEmptyAssignment("")
	require.NoError(t, err)
	assert.Equal(t, fm.EmptyWhenAttributed, p)

	_, err = fm.ParseEmptyAssignment("never")
	assert.Error(t, err)
}
