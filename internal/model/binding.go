package model

// DynamicBinding is a statically observed assignment of a string value to a
// configuration key at a specific call site. Literal is nil when the value
// could not be proven to be a compile-time literal.
type DynamicBinding struct {
	Key     string
	Literal *string
	SiteID  string
}

// HasLiteral reports whether the binding's value was proven static.
func (b DynamicBinding) HasLiteral() bool {
	return b.Literal != nil
}

// ResolutionState classifies the outcome of a dynamic class-name lookup.
type ResolutionState int

const (
	// Unresolvable means the value was not provably static or no declared
	// class matched the name.
	Unresolvable ResolutionState = iota
	// Resolved means the literal matched exactly one class (or an exact
	// local-module match broke the tie).
	Resolved
	// Ambiguous means the literal matched classes in several modules and
	// no local match existed to prefer.
	Ambiguous
)

// String returns the lowercase name of the resolution state.
func (s ResolutionState) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	case Unresolvable:
		return "unresolvable"
	default:
		return "invalid"
	}
}

// Resolution is the result of resolving a dynamic class reference.
// Candidates holds one symbol when Resolved, every match ordered by module
// name when Ambiguous, and nothing when Unresolvable.
type Resolution struct {
	State      ResolutionState
	Candidates []*Symbol
}

// Target returns the resolved symbol, or nil unless State is Resolved.
func (r Resolution) Target() *Symbol {
	if r.State != Resolved || len(r.Candidates) == 0 {
		return nil
	}

	return r.Candidates[0]
}
