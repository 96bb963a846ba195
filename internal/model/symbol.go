// Package model defines the data structures for declaration-graph resolution.
package model

import "strings"

// Module identifies the module a symbol was declared in. Any value other
// than ModuleLocal marks the symbol as originating outside inspectable
// source.
type Module string

// ModuleLocal is the module name for symbols extracted from known source.
const ModuleLocal Module = "local"

// SymbolKind represents the category of a declared symbol.
type SymbolKind string

const (
	// KindClass represents a concrete type declaration with optional
	// superclass and protocol conformances.
	KindClass SymbolKind = "class"
	// KindProtocol represents a capability requirement declaration.
	KindProtocol SymbolKind = "protocol"
	// KindAlias represents a named stand-in for another symbol or a
	// composition of symbols.
	KindAlias SymbolKind = "alias"
	// KindOpaque represents an externally-defined symbol whose internals
	// are unknown. Opaque symbols are closed leaves: they carry no
	// superclass, protocols or alias target.
	KindOpaque SymbolKind = "opaque"
)

// Ref is a module-qualified reference to a symbol. Its text form is
// "module/Name"; a bare "Name" refers to the local module.
type Ref struct {
	Module Module
	Name   string
}

// ParseRef parses the text form of a reference. An empty module segment
// defaults to the local module.
func ParseRef(s string) Ref {
	if i := strings.LastIndex(s, "/"); i > 0 {
		return Ref{Module: Module(s[:i]), Name: s[i+1:]}
	}

	s = strings.TrimPrefix(s, "/")

	return Ref{Module: ModuleLocal, Name: s}
}

// String returns the text form of the reference. Local references render
// without a module prefix.
func (r Ref) String() string {
	if r.Module == ModuleLocal || r.Module == "" {
		return r.Name
	}

	return string(r.Module) + "/" + r.Name
}

// Symbol is a named declaration in the graph. Superclass is only meaningful
// for classes, Protocols for classes and protocols, Alias for aliases (one
// element is a single target, more than one is a protocol composition).
type Symbol struct {
	Name       string
	Module     Module
	Kind       SymbolKind
	Superclass *Ref
	Protocols  []Ref
	Alias      []Ref
}

// Ref returns the reference that identifies this symbol in the graph.
func (s *Symbol) Ref() Ref {
	return Ref{Module: s.Module, Name: s.Name}
}

// IsOpaque reports whether the symbol is an externally-defined closed leaf.
func (s *Symbol) IsOpaque() bool {
	return s.Kind == KindOpaque
}

// IsLocal reports whether the symbol was declared in inspectable source.
func (s *Symbol) IsLocal() bool {
	return s.Module == ModuleLocal
}
