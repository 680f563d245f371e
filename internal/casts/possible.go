package casts

import "github.com/albertoruibal/kotlin/internal/types"

// IsCastPossible reports whether any runtime value could inhabit both lhs
// and rhs. False is returned only when the pair is provably uninhabited;
// every ambiguous case answers true, trading completeness for soundness.
//
// The rules below short-circuit in order; the order carries the soundness
// argument and must not be rearranged.
func (e *Engine) IsCastPossible(lhs, rhs types.Type) bool {
	// Nothing? holds only null, so a non-nullable target is unreachable.
	if types.IsNullableNothing(lhs) && !rhs.Nullable {
		return false
	}
	// Nothing has no values at runtime at all.
	if types.IsNothing(rhs) {
		return false
	}
	// Only null satisfies both sides when the target is Nothing?.
	if types.IsNullableNothing(rhs) {
		return lhs.Nullable
	}
	// Both sides admit null.
	if lhs.Nullable && rhs.Nullable {
		return true
	}
	// Unresolved types must not block the caller.
	if lhs.IsError {
		return true
	}
	if e.isRelated(lhs, rhs) {
		return true
	}
	// Without concrete bounds, impossibility cannot be proven.
	if lhs.Constructor.IsTypeParameter() || rhs.Constructor.IsTypeParameter() {
		return true
	}
	// Finality proves impossibility only against another class. A final
	// class may already implement an interface, so an interface on the
	// other side keeps the cast alive.
	if isFinalClass(lhs.Constructor) && !isInterface(rhs.Constructor) {
		return false
	}
	if isFinalClass(rhs.Constructor) && !isInterface(lhs.Constructor) {
		return false
	}
	// A third classifier could implement or extend both.
	if isInterface(lhs.Constructor) || isInterface(rhs.Constructor) {
		return true
	}
	return false
}

// isRelated reports whether one side's platform-mapped classifier set
// contains a classifier that is a superclass (or the same classifier) of
// the other side, in either direction. Counterpart classes contributed by
// the platform map make a classifier and its bridge mutually related even
// though they are nominally distinct.
func (e *Engine) isRelated(lhs, rhs types.Type) bool {
	left := e.Platform.MappedSet(lhs.Constructor)
	right := e.Platform.MappedSet(rhs.Constructor)
	for _, l := range left {
		for _, r := range right {
			if isAncestor(l, r) || isAncestor(r, l) {
				return true
			}
		}
	}
	return false
}

// isAncestor reports whether sup appears in the classifier-level supertype
// closure of sub, reflexively. Type arguments are irrelevant here.
func isAncestor(sup, sub *types.TypeConstructor) bool {
	return walkAncestors(sup, sub, make(map[types.ConstructorID]bool))
}

func walkAncestors(sup, sub *types.TypeConstructor, seen map[types.ConstructorID]bool) bool {
	if sub.ID == sup.ID {
		return true
	}
	if seen[sub.ID] {
		return false
	}
	seen[sub.ID] = true
	for _, t := range sub.Supertypes {
		if walkAncestors(sup, t.Constructor, seen) {
			return true
		}
	}
	return false
}

func isFinalClass(c *types.TypeConstructor) bool {
	d, ok := c.Class()
	return ok && d.Final
}

func isInterface(c *types.TypeConstructor) bool {
	d, ok := c.Class()
	return ok && d.Kind == types.InterfaceDecl
}
