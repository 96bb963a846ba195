// Package adapter contains ingestion and infrastructure adapters for the
// typelens CLI.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"typelens.dev/pkg/typelens/internal/graph"
	m "typelens.dev/pkg/typelens/internal/model"
)

// GraphStore abstracts where declaration graphs come from so the domain
// layer can be tested without touching the disk.
type GraphStore interface {
	// Load reads a declaration graph document and returns the populated
	// graph plus the dynamic bindings observed alongside it.
	Load(ctx context.Context, path m.Path) (*graph.Graph, []m.DynamicBinding, error)
}

// LocalGraphStore loads graph documents from the local filesystem.
type LocalGraphStore struct{}

// NewLocalGraphStore creates a filesystem-backed GraphStore.
func NewLocalGraphStore() *LocalGraphStore {
	return &LocalGraphStore{}
}

// graphDoc is the YAML shape of a declaration graph document.
type graphDoc struct {
	Version  int           `yaml:"version"`
	Symbols  []symbolSpec  `yaml:"symbols"`
	Bindings []bindingSpec `yaml:"bindings"`
}

type symbolSpec struct {
	Name       string   `yaml:"name"`
	Module     string   `yaml:"module"`
	Kind       string   `yaml:"kind"`
	Superclass string   `yaml:"superclass"`
	Protocols  []string `yaml:"protocols"`
	Alias      []string `yaml:"alias"`
}

type bindingSpec struct {
	Key     string  `yaml:"key"`
	Literal *string `yaml:"literal"`
	Site    string  `yaml:"site"`
}

// Load reads and validates a graph document. Schema violations (unknown
// kinds, declarations on opaque leaves, empty aliases, duplicate symbols)
// fail the whole load: a partially ingested graph would give resolution an
// inconsistent world to reason about.
func (s *LocalGraphStore) Load(ctx context.Context, path m.Path) (*graph.Graph, []m.DynamicBinding, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc graphDoc
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	g := graph.New()

	for _, spec := range doc.Symbols {
		sym, err := spec.symbol()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}

		if err := g.Add(sym); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	bindings := make([]m.DynamicBinding, 0, len(doc.Bindings))
	for _, spec := range doc.Bindings {
		bindings = append(bindings, m.DynamicBinding{
			Key:     spec.Key,
			Literal: spec.Literal,
			SiteID:  spec.Site,
		})
	}

	slog.Debug("loaded declaration graph", "path", path, "symbols", g.Len(), "bindings", len(bindings))

	return g, bindings, nil
}

func (spec symbolSpec) symbol() (*m.Symbol, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("symbol with empty name")
	}

	module := m.Module(spec.Module)
	if module == "" {
		module = m.ModuleLocal
	}

	kind := m.SymbolKind(spec.Kind)

	sym := &m.Symbol{Name: spec.Name, Module: module, Kind: kind}

	switch kind {
	case m.KindOpaque:
		// Opaque symbols are closed leaves; nothing further may be declared.
		if spec.Superclass != "" || len(spec.Protocols) > 0 || len(spec.Alias) > 0 {
			return nil, fmt.Errorf("opaque symbol %s carries declarations", sym.Ref())
		}
	case m.KindAlias:
		if len(spec.Alias) == 0 {
			return nil, fmt.Errorf("alias %s has no target", sym.Ref())
		}

		if spec.Superclass != "" || len(spec.Protocols) > 0 {
			return nil, fmt.Errorf("alias %s carries non-alias declarations", sym.Ref())
		}

		for _, target := range spec.Alias {
			sym.Alias = append(sym.Alias, m.ParseRef(target))
		}
	case m.KindClass:
		if spec.Superclass != "" {
			super := m.ParseRef(spec.Superclass)
			sym.Superclass = &super
		}

		for _, proto := range spec.Protocols {
			sym.Protocols = append(sym.Protocols, m.ParseRef(proto))
		}
	case m.KindProtocol:
		if spec.Superclass != "" {
			return nil, fmt.Errorf("protocol %s declares a superclass", sym.Ref())
		}

		for _, proto := range spec.Protocols {
			sym.Protocols = append(sym.Protocols, m.ParseRef(proto))
		}
	default:
		return nil, fmt.Errorf("symbol %s has unknown kind %q", sym.Ref(), spec.Kind)
	}

	return sym, nil
}
