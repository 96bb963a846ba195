package model

// Truth is the tri-state answer to structural queries over a graph with
// opaque symbols. Unknown is a legitimate result, not an error: it means
// the chain of evidence ended at a symbol the engine cannot see into.
type Truth int

const (
	// False means the relation provably does not hold over known symbols.
	False Truth = iota
	// True means the relation provably holds.
	True
	// Unknown means resolution hit an opaque symbol before the relation
	// could be decided either way.
	Unknown
)

// String returns the lowercase name of the truth value.
func (t Truth) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// ResolvedType is the result of resolving one class symbol: its effective
// superclass chain (nearest first, aliases already expanded) and the
// transitive closure of its protocol requirements.
type ResolvedType struct {
	// Symbol is the class the resolution was computed for.
	Symbol *Symbol
	// SuperclassChain lists ancestors nearest first. It ends either at a
	// root class with no superclass or at the first opaque ancestor.
	SuperclassChain []*Symbol
	// Protocols is the effective protocol set in first-seen order.
	Protocols []*Symbol
	// TerminatedAtOpaque is true when the chain's last entry is opaque
	// rather than a fully known root.
	TerminatedAtOpaque bool
}

// ChainRefs returns the superclass chain as references, nearest first.
func (rt *ResolvedType) ChainRefs() []Ref {
	refs := make([]Ref, 0, len(rt.SuperclassChain))
	for _, sym := range rt.SuperclassChain {
		refs = append(refs, sym.Ref())
	}

	return refs
}

// ProtocolRefs returns the effective protocol set as references.
func (rt *ResolvedType) ProtocolRefs() []Ref {
	refs := make([]Ref, 0, len(rt.Protocols))
	for _, sym := range rt.Protocols {
		refs = append(refs, sym.Ref())
	}

	return refs
}
