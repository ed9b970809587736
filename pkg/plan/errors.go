package plan

import "fmt"

// UnresolvedReference is returned when a field or message points at a
// type/message key that doesn't exist in the source ServiceModel
// (invariants 1-3 in spec.md §3).
type UnresolvedReference struct {
	Kind string // "type" or "message"
	Name string
}

func (e *UnresolvedReference) Error() string {
	return fmt.Sprintf("plan: unresolved %s reference %q", e.Kind, e.Name)
}

// NameCollision is returned when two distinct source names normalize to
// the same identifier (invariant 5).
type NameCollision struct {
	Normalized string
	First      string
	Second     string
}

func (e *NameCollision) Error() string {
	return fmt.Sprintf("plan: %q and %q both normalize to %q", e.First, e.Second, e.Normalized)
}
