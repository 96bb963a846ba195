package domain

import (
	"log/slog"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"typelens.dev/pkg/typelens/internal/graph"
	m "typelens.dev/pkg/typelens/internal/model"
)

const resolveCacheSize = 1024

// resolveKey memoizes resolutions per graph revision. A mutation bumps the
// revision, so stale entries are simply never hit again and age out of the
// LRU on their own.
type resolveKey struct {
	ref      m.Ref
	revision uint64
}

// TypeResolver computes effective superclass chains and effective protocol
// sets for class symbols.
type TypeResolver struct {
	graph   *graph.Graph
	aliases *AliasResolver
	cache   *lru.Cache[resolveKey, *m.ResolvedType]
}

// NewTypeResolver creates a TypeResolver over the given graph.
func NewTypeResolver(g *graph.Graph, aliases *AliasResolver) (*TypeResolver, error) {
	cache, err := lru.New[resolveKey, *m.ResolvedType](resolveCacheSize)
	if err != nil {
		return nil, err
	}

	return &TypeResolver{graph: g, aliases: aliases, cache: cache}, nil
}

// ResolveType resolves a class symbol to its effective superclass chain and
// protocol closure. Non-class symbols fail with NotAClassError. Results are
// memoized per (symbol, graph revision).
func (r *TypeResolver) ResolveType(sym *m.Symbol) (*m.ResolvedType, error) {
	if sym.Kind != m.KindClass {
		return nil, &NotAClassError{Ref: sym.Ref(), Kind: sym.Kind}
	}

	key := resolveKey{ref: sym.Ref(), revision: r.graph.Revision()}
	if cached, ok := r.cache.Get(key); ok {
		return cached, nil
	}

	chain, terminated, err := r.resolveChain(sym)
	if err != nil {
		return nil, err
	}

	protocols, err := r.resolveProtocolClosure(sym, chain)
	if err != nil {
		return nil, err
	}

	resolved := &m.ResolvedType{
		Symbol:             sym,
		SuperclassChain:    chain,
		Protocols:          protocols,
		TerminatedAtOpaque: terminated,
	}
	r.cache.Add(key, resolved)

	slog.Debug("resolved type",
		"symbol", sym.Ref().String(),
		"chain", len(chain),
		"protocols", len(protocols),
		"opaque", terminated)

	return resolved, nil
}

// resolveChain walks declared superclasses through the alias resolver until
// a root (no superclass) or the first opaque ancestor. Chain entries are the
// resolved targets, never alias names.
func (r *TypeResolver) resolveChain(sym *m.Symbol) ([]*m.Symbol, bool, error) {
	var chain []*m.Symbol

	visited := []m.Ref{sym.Ref()}
	current := sym

	// A well-formed chain visits each symbol at most once.
	for range r.graph.Len() + 1 {
		if current.Superclass == nil {
			return chain, false, nil
		}

		target, err := r.aliases.ResolveRef(*current.Superclass)
		if err != nil {
			return nil, false, err
		}

		if target.IsComposition() {
			return nil, false, &InvalidSuperclassAliasError{Class: current.Ref(), Superclass: *current.Superclass}
		}

		next := target.Single()

		if next.IsOpaque() {
			return append(chain, next), true, nil
		}

		if next.Kind != m.KindClass {
			return nil, false, &InvalidSuperclassAliasError{Class: current.Ref(), Superclass: *current.Superclass}
		}

		if slices.Contains(visited, next.Ref()) {
			return nil, false, &CyclicInheritanceError{Cycle: append(visited, next.Ref())}
		}

		chain = append(chain, next)
		visited = append(visited, next.Ref())
		current = next
	}

	return nil, false, &CyclicInheritanceError{Cycle: visited}
}

// resolveProtocolClosure unions the declared protocols of the class and
// every class on its chain, expanding aliases and following
// protocol-to-protocol requirements. Opaque entries contribute only
// themselves: the engine never guesses what an invisible declaration
// requires.
func (r *TypeResolver) resolveProtocolClosure(sym *m.Symbol, chain []*m.Symbol) ([]*m.Symbol, error) {
	var closure []*m.Symbol

	var visited []m.Ref

	add := func(refs []m.Ref) error {
		var err error

		closure, visited, err = r.collectProtocols(refs, closure, visited)

		return err
	}

	if err := add(sym.Protocols); err != nil {
		return nil, err
	}

	for _, ancestor := range chain {
		if ancestor.IsOpaque() {
			continue
		}

		if err := add(ancestor.Protocols); err != nil {
			return nil, err
		}
	}

	return closure, nil
}

func (r *TypeResolver) collectProtocols(refs []m.Ref, closure []*m.Symbol, visited []m.Ref) ([]*m.Symbol, []m.Ref, error) {
	for _, ref := range refs {
		target, err := r.aliases.ResolveRef(ref)
		if err != nil {
			return nil, nil, err
		}

		for _, proto := range target.Symbols {
			if slices.Contains(visited, proto.Ref()) {
				continue
			}

			visited = append(visited, proto.Ref())
			closure = append(closure, proto)

			if proto.Kind == m.KindProtocol && len(proto.Protocols) > 0 {
				closure, visited, err = r.collectProtocols(proto.Protocols, closure, visited)
				if err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return closure, visited, nil
}
