package domain

import (
	"slices"

	"typelens.dev/pkg/typelens/internal/graph"
	m "typelens.dev/pkg/typelens/internal/model"
)

// Target is the canonical result of alias resolution: either a single
// symbol or a flattened protocol composition.
type Target struct {
	// Symbols holds the resolved targets. One element is a single target;
	// more than one is a composition, in first-seen order with duplicates
	// removed by identity.
	Symbols []*m.Symbol
}

// IsComposition reports whether the target is a protocol composition.
func (t Target) IsComposition() bool {
	return len(t.Symbols) > 1
}

// Single returns the sole target symbol. It is only meaningful when
// IsComposition is false.
func (t Target) Single() *m.Symbol {
	return t.Symbols[0]
}

// AliasResolver expands alias indirection against a declaration graph.
type AliasResolver struct {
	graph *graph.Graph
}

// NewAliasResolver creates an AliasResolver over the given graph.
func NewAliasResolver(g *graph.Graph) *AliasResolver {
	return &AliasResolver{graph: g}
}

// Resolve expands a symbol to its canonical target. Non-aliases resolve to
// themselves, which makes resolution idempotent: resolving a symbol that is
// already a resolved target returns it unchanged. Alias chains are followed
// recursively; compositions flatten in place. A chain that revisits an alias
// fails with CyclicAliasError naming the full cycle.
func (r *AliasResolver) Resolve(sym *m.Symbol) (Target, error) {
	symbols, err := r.expand(sym, nil, nil)
	if err != nil {
		return Target{}, err
	}

	return Target{Symbols: symbols}, nil
}

// ResolveRef looks a reference up and resolves it. A dangling reference
// fails with UnknownSymbolError.
func (r *AliasResolver) ResolveRef(ref m.Ref) (Target, error) {
	sym, ok := r.graph.Lookup(ref)
	if !ok {
		return Target{}, &UnknownSymbolError{Ref: ref}
	}

	return r.Resolve(sym)
}

// expand walks the alias chain rooted at sym. path holds the aliases on the
// current recursion path for cycle detection; seen accumulates resolved
// targets so composition flattening dedups by identity.
func (r *AliasResolver) expand(sym *m.Symbol, path []m.Ref, seen []*m.Symbol) ([]*m.Symbol, error) {
	if sym.Kind != m.KindAlias {
		if slices.Contains(seen, sym) {
			return seen, nil
		}

		return append(seen, sym), nil
	}

	ref := sym.Ref()
	if i := slices.Index(path, ref); i >= 0 {
		return nil, &CyclicAliasError{Cycle: append(slices.Clone(path[i:]), ref)}
	}

	path = append(path, ref)

	for _, targetRef := range sym.Alias {
		target, ok := r.graph.Lookup(targetRef)
		if !ok {
			return nil, &UnknownSymbolError{Ref: targetRef}
		}

		var err error

		seen, err = r.expand(target, path, seen)
		if err != nil {
			return nil, err
		}
	}

	return seen, nil
}
