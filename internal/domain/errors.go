// Package domain contains the resolution engine: alias expansion,
// inheritance and conformance resolution, dynamic-reference matching, and
// the query façade over the declaration graph.
package domain

import (
	"fmt"
	"strings"

	m "typelens.dev/pkg/typelens/internal/model"
)

// CyclicAliasError reports an alias chain that revisits one of its own
// members. Cycle lists every alias on the cycle in traversal order.
type CyclicAliasError struct {
	Cycle []m.Ref
}

func (e *CyclicAliasError) Error() string {
	names := make([]string, 0, len(e.Cycle))
	for _, ref := range e.Cycle {
		names = append(names, ref.String())
	}

	return fmt.Sprintf("cyclic alias chain: %s", strings.Join(names, " -> "))
}

// CyclicInheritanceError reports a superclass chain that revisits a class.
// Well-formed graphs cannot produce one, but resolution still checks.
type CyclicInheritanceError struct {
	Cycle []m.Ref
}

func (e *CyclicInheritanceError) Error() string {
	names := make([]string, 0, len(e.Cycle))
	for _, ref := range e.Cycle {
		names = append(names, ref.String())
	}

	return fmt.Sprintf("cyclic inheritance chain: %s", strings.Join(names, " -> "))
}

// InvalidSuperclassAliasError reports a declared superclass that resolves to
// something a class cannot extend: a protocol composition or a protocol.
type InvalidSuperclassAliasError struct {
	Class      m.Ref
	Superclass m.Ref
}

func (e *InvalidSuperclassAliasError) Error() string {
	return fmt.Sprintf("superclass %s of %s resolves to a protocol context, not a class", e.Superclass, e.Class)
}

// NotAClassError reports a type-resolution request for a non-class symbol.
type NotAClassError struct {
	Ref  m.Ref
	Kind m.SymbolKind
}

func (e *NotAClassError) Error() string {
	return fmt.Sprintf("symbol %s is a %s, not a class", e.Ref, e.Kind)
}

// UnknownSymbolError reports a reference that names no registered symbol.
// The graph tolerates dangling references during ingestion; hitting one at
// resolution time fails the request.
type UnknownSymbolError struct {
	Ref m.Ref
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %s", e.Ref)
}
