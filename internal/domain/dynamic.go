package domain

import (
	"log/slog"

	"typelens.dev/pkg/typelens/internal/graph"
	m "typelens.dev/pkg/typelens/internal/model"
)

// DynamicResolver matches string-keyed class references against the
// declaration graph. It only ever resolves values that were observed as
// compile-time literals; anything runtime-computed is Unresolvable by
// definition, never a guess.
type DynamicResolver struct {
	graph *graph.Graph
}

// NewDynamicResolver creates a DynamicResolver over the given graph.
func NewDynamicResolver(g *graph.Graph) *DynamicResolver {
	return &DynamicResolver{graph: g}
}

// Resolve maps a binding to a declared class. Ambiguity across modules
// prefers an exact local match; failing that, every candidate is returned
// ordered by module name so output stays deterministic.
func (r *DynamicResolver) Resolve(binding m.DynamicBinding) m.Resolution {
	if !binding.HasLiteral() {
		slog.Debug("dynamic value not provably static", "key", binding.Key, "site", binding.SiteID)

		return m.Resolution{State: m.Unresolvable}
	}

	name := *binding.Literal

	candidates := make([]*m.Symbol, 0, 1)

	for _, sym := range r.graph.ByName(name) {
		if sym.Kind == m.KindClass {
			candidates = append(candidates, sym)
		}
	}

	switch len(candidates) {
	case 0:
		return m.Resolution{State: m.Unresolvable}
	case 1:
		return m.Resolution{State: m.Resolved, Candidates: candidates}
	}

	for _, sym := range candidates {
		if sym.IsLocal() {
			return m.Resolution{State: m.Resolved, Candidates: []*m.Symbol{sym}}
		}
	}

	// ByName already orders by module name.
	return m.Resolution{State: m.Ambiguous, Candidates: candidates}
}
