package domain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"typelens.dev/pkg/typelens/internal/graph"
	m "typelens.dev/pkg/typelens/internal/model"
)

// Engine is the classification query surface over a declaration graph. All
// queries are pure reads against the current graph revision; concurrent use
// is safe as long as graph mutation follows the single-writer discipline.
type Engine struct {
	graph   *graph.Graph
	aliases *AliasResolver
	types   *TypeResolver
	dynamic *DynamicResolver
}

// NewEngine creates an Engine over the given graph.
func NewEngine(g *graph.Graph) (*Engine, error) {
	aliases := NewAliasResolver(g)

	types, err := NewTypeResolver(g, aliases)
	if err != nil {
		return nil, err
	}

	return &Engine{
		graph:   g,
		aliases: aliases,
		types:   types,
		dynamic: NewDynamicResolver(g),
	}, nil
}

// Graph returns the underlying declaration graph.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// ResolveType resolves the class named by ref.
func (e *Engine) ResolveType(ref m.Ref) (*m.ResolvedType, error) {
	sym, ok := e.graph.Lookup(ref)
	if !ok {
		return nil, &UnknownSymbolError{Ref: ref}
	}

	return e.types.ResolveType(sym)
}

// IsDescendantOf reports whether the class named by ref descends from base.
// Matching a fully known ancestor yields True. A chain that ends at an
// opaque ancestor without a known match yields Unknown, never False: the
// engine cannot rule the relation out when it cannot see past the opaque
// symbol. Opaque chain entries themselves count as unknown territory, not
// as proof.
func (e *Engine) IsDescendantOf(ref, base m.Ref) (m.Truth, error) {
	baseTarget, err := e.aliases.ResolveRef(base)
	if err != nil {
		return m.False, err
	}

	if baseTarget.IsComposition() {
		return m.False, &InvalidSuperclassAliasError{Class: ref, Superclass: base}
	}

	baseRef := baseTarget.Single().Ref()

	resolved, err := e.ResolveType(ref)
	if err != nil {
		return m.False, err
	}

	for _, ancestor := range resolved.SuperclassChain {
		if ancestor.IsOpaque() {
			break
		}

		if ancestor.Ref() == baseRef {
			return m.True, nil
		}
	}

	if resolved.TerminatedAtOpaque {
		return m.Unknown, nil
	}

	return m.False, nil
}

// ConformsTo reports whether the class named by ref carries the protocol in
// its effective protocol set. A composition alias as the protocol argument
// requires every element of the composition.
func (e *Engine) ConformsTo(ref, protocol m.Ref) (bool, error) {
	protoTarget, err := e.aliases.ResolveRef(protocol)
	if err != nil {
		return false, err
	}

	resolved, err := e.ResolveType(ref)
	if err != nil {
		return false, err
	}

	effective := make(map[m.Ref]bool, len(resolved.Protocols))
	for _, proto := range resolved.Protocols {
		effective[proto.Ref()] = true
	}

	for _, required := range protoTarget.Symbols {
		if !effective[required.Ref()] {
			return false, nil
		}
	}

	return true, nil
}

// ResolveDynamicName resolves a string-keyed class reference.
func (e *Engine) ResolveDynamicName(binding m.DynamicBinding) m.Resolution {
	return e.dynamic.Resolve(binding)
}

// Outcome is the per-class result of a bulk resolution. Err is set when the
// single resolution failed; failures never abort sibling work.
type Outcome struct {
	Symbol *m.Symbol
	Type   *m.ResolvedType
	Err    error
}

// ResolveAll resolves every class symbol in the graph with up to threads
// workers. Outcomes come back in the graph's registration order regardless
// of scheduling.
func (e *Engine) ResolveAll(ctx context.Context, threads int) ([]Outcome, error) {
	if threads <= 0 {
		threads = 1
	}

	var classes []*m.Symbol
	for sym := range e.graph.Classes() {
		classes = append(classes, sym)
	}

	slog.Debug("bulk resolution", "classes", len(classes), "threads", threads)

	outcomes := make([]Outcome, len(classes))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, sym := range classes {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			resolved, err := e.types.ResolveType(sym)
			outcomes[i] = Outcome{Symbol: sym, Type: resolved, Err: err}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}
