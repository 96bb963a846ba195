package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typelens.dev/pkg/typelens/internal/graph"
	m "typelens.dev/pkg/typelens/internal/model"
)

func buildGraph(t *testing.T, symbols ...*m.Symbol) *graph.Graph {
	t.Helper()

	g := graph.New()
	for _, sym := range symbols {
		require.NoError(t, g.Add(sym))
	}

	return g
}

func ref(s string) m.Ref {
	return m.ParseRef(s)
}

func refPtr(s string) *m.Ref {
	r := m.ParseRef(s)
	return &r
}

func TestAliasResolver_Identity(t *testing.T) {
	class := &m.Symbol{Name: "ProfileScreen", Module: m.ModuleLocal, Kind: m.KindClass}
	g := buildGraph(t, class)
	r := NewAliasResolver(g)

	target, err := r.Resolve(class)
	require.NoError(t, err)
	assert.False(t, target.IsComposition())
	assert.Same(t, class, target.Single())
}

func TestAliasResolver_ChainToOpaque(t *testing.T) {
	opaque := &m.Symbol{Name: "UIViewController", Module: "UIKit", Kind: m.KindOpaque}
	inner := &m.Symbol{Name: "PlatformController", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("UIKit/UIViewController")}}
	outer := &m.Symbol{Name: "BaseController", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("PlatformController")}}
	g := buildGraph(t, opaque, inner, outer)
	r := NewAliasResolver(g)

	target, err := r.Resolve(outer)
	require.NoError(t, err)
	assert.False(t, target.IsComposition())
	assert.Same(t, opaque, target.Single())
}

func TestAliasResolver_CompositionFlattening(t *testing.T) {
	codable := &m.Symbol{Name: "Codable", Module: "Swift", Kind: m.KindOpaque}
	trackable := &m.Symbol{Name: "Trackable", Module: m.ModuleLocal, Kind: m.KindProtocol}
	serializable := &m.Symbol{Name: "Serializable", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("Swift/Codable")}}
	event := &m.Symbol{Name: "AnalyticsEvent", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("Serializable"), ref("Trackable")}}
	g := buildGraph(t, codable, trackable, serializable, event)
	r := NewAliasResolver(g)

	target, err := r.Resolve(event)
	require.NoError(t, err)
	assert.True(t, target.IsComposition())
	// Flattened in first-seen order.
	require.Len(t, target.Symbols, 2)
	assert.Same(t, codable, target.Symbols[0])
	assert.Same(t, trackable, target.Symbols[1])
}

func TestAliasResolver_NestedCompositionDedup(t *testing.T) {
	codable := &m.Symbol{Name: "Codable", Module: "Swift", Kind: m.KindOpaque}
	trackable := &m.Symbol{Name: "Trackable", Module: m.ModuleLocal, Kind: m.KindProtocol}
	serializable := &m.Symbol{Name: "Serializable", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("Swift/Codable")}}
	// Composition-of-composition whose elements overlap.
	base := &m.Symbol{Name: "BaseEvent", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("Serializable"), ref("Trackable")}}
	full := &m.Symbol{Name: "FullEvent", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("BaseEvent"), ref("Serializable")}}
	g := buildGraph(t, codable, trackable, serializable, base, full)
	r := NewAliasResolver(g)

	target, err := r.Resolve(full)
	require.NoError(t, err)
	require.Len(t, target.Symbols, 2, "duplicates removed by identity")
	assert.Same(t, codable, target.Symbols[0])
	assert.Same(t, trackable, target.Symbols[1])
}

func TestAliasResolver_Idempotent(t *testing.T) {
	opaque := &m.Symbol{Name: "UIView", Module: "UIKit", Kind: m.KindOpaque}
	alias := &m.Symbol{Name: "View", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("UIKit/UIView")}}
	g := buildGraph(t, opaque, alias)
	r := NewAliasResolver(g)

	once, err := r.Resolve(alias)
	require.NoError(t, err)

	// Resolving an already-resolved target returns it unchanged.
	again, err := r.Resolve(once.Single())
	require.NoError(t, err)
	assert.Equal(t, once.Symbols, again.Symbols)
}

func TestAliasResolver_CycleError(t *testing.T) {
	a := &m.Symbol{Name: "A", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("B")}}
	b := &m.Symbol{Name: "B", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("A")}}
	g := buildGraph(t, a, b)
	r := NewAliasResolver(g)

	_, err := r.Resolve(a)

	var cyclic *CyclicAliasError
	require.ErrorAs(t, err, &cyclic)
	// The error names every member of the cycle.
	assert.Contains(t, cyclic.Cycle, a.Ref())
	assert.Contains(t, cyclic.Cycle, b.Ref())
	assert.Contains(t, err.Error(), "A")
	assert.Contains(t, err.Error(), "B")
}

func TestAliasResolver_SelfCycle(t *testing.T) {
	a := &m.Symbol{Name: "Selfish", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("Selfish")}}
	g := buildGraph(t, a)
	r := NewAliasResolver(g)

	_, err := r.Resolve(a)

	var cyclic *CyclicAliasError
	require.ErrorAs(t, err, &cyclic)
}

func TestAliasResolver_DanglingTarget(t *testing.T) {
	alias := &m.Symbol{Name: "Ghost", Module: m.ModuleLocal, Kind: m.KindAlias, Alias: []m.Ref{ref("Missing")}}
	g := buildGraph(t, alias)
	r := NewAliasResolver(g)

	_, err := r.Resolve(alias)

	var unknown *UnknownSymbolError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, ref("Missing"), unknown.Ref)
}
