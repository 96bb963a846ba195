// Package graph holds the in-memory declaration graph the resolution engine
// queries. The graph is populated once by an ingestion step and then served
// read-mostly; incremental mutation is serialized against reads and bumps a
// revision counter so downstream caches self-invalidate.
package graph

import (
	"fmt"
	"iter"
	"log/slog"
	"sort"
	"sync"

	m "typelens.dev/pkg/typelens/internal/model"
)

// DuplicateSymbolError reports a second registration of the same
// (module, name) pair.
type DuplicateSymbolError struct {
	Ref m.Ref
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol %s", e.Ref)
}

// Graph indexes all known symbol declarations.
type Graph struct {
	mu       sync.RWMutex
	symbols  map[m.Ref]*m.Symbol
	byName   map[string][]*m.Symbol
	order    []m.Ref
	revision uint64
}

// New creates an empty declaration graph at revision zero.
func New() *Graph {
	return &Graph{
		symbols: make(map[m.Ref]*m.Symbol),
		byName:  make(map[string][]*m.Symbol),
	}
}

// Add registers a symbol. It fails with DuplicateSymbolError when the
// (module, name) pair is already present. Every successful Add bumps the
// graph revision.
func (g *Graph) Add(sym *m.Symbol) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ref := sym.Ref()
	if _, exists := g.symbols[ref]; exists {
		return &DuplicateSymbolError{Ref: ref}
	}

	g.symbols[ref] = sym
	g.byName[sym.Name] = append(g.byName[sym.Name], sym)
	g.order = append(g.order, ref)
	g.revision++

	slog.Debug("registered symbol", "ref", ref.String(), "kind", sym.Kind, "revision", g.revision)

	return nil
}

// Lookup returns the symbol for a reference. Unknown references return
// (nil, false) rather than an error so forward references during ingestion
// are cheap to probe.
func (g *Graph) Lookup(ref m.Ref) (*m.Symbol, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sym, ok := g.symbols[ref]

	return sym, ok
}

// ByName returns every symbol declared under the given name across all
// modules, ordered by module name for deterministic output.
func (g *Graph) ByName(name string) []*m.Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	matches := make([]*m.Symbol, len(g.byName[name]))
	copy(matches, g.byName[name])

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Module < matches[j].Module
	})

	return matches
}

// Classes returns a restartable sequence of all class symbols in
// registration order. The sequence iterates over a snapshot, so concurrent
// Adds do not affect an in-flight iteration.
func (g *Graph) Classes() iter.Seq[*m.Symbol] {
	return func(yield func(*m.Symbol) bool) {
		for _, sym := range g.classSnapshot() {
			if !yield(sym) {
				return
			}
		}
	}
}

func (g *Graph) classSnapshot() []*m.Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	classes := make([]*m.Symbol, 0, len(g.order))

	for _, ref := range g.order {
		if sym := g.symbols[ref]; sym.Kind == m.KindClass {
			classes = append(classes, sym)
		}
	}

	return classes
}

// Len returns the number of registered symbols.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.symbols)
}

// Revision returns the current mutation counter. Resolution caches key their
// entries by revision so a stale entry is simply never hit again.
func (g *Graph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revision
}
