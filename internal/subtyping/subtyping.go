// Package subtyping implements the nominal subtyping relation and the
// supertype-correspondence search over the type model. The cast engine
// consumes both through narrow interfaces, so this package can be swapped
// for a stub in tests.
package subtyping

import "github.com/albertoruibal/kotlin/internal/types"

// Checker decides subtyping over immutable type values. It holds no state
// and is safe for concurrent use.
type Checker struct{}

// NewChecker returns a subtyping checker.
func NewChecker() *Checker { return &Checker{} }

// IsSubtypeOf reports whether every value of type a is also a value of
// type b. The relation is reflexive and transitive, respects nullability
// (T <: T?, never T? <: T), treats Nothing as bottom and Any as top, and
// is permissive for error-marked types.
func (c *Checker) IsSubtypeOf(a, b types.Type) bool {
	if a.IsError || b.IsError {
		return true
	}
	if a.Nullable && !b.Nullable {
		return false
	}
	if types.IsNothingConstructor(a.Constructor) {
		return true
	}
	if types.IsAnyConstructor(b.Constructor) {
		return true
	}
	if b.Constructor.IsTypeParameter() {
		// Without instantiating b there is nothing to compare against
		// except identity.
		return a.Constructor.ID == b.Constructor.ID
	}
	if tp, ok := a.Constructor.TypeParameter(); ok {
		for _, bound := range tp.UpperBounds {
			if c.IsSubtypeOf(bound, b.NotNullable()) {
				return true
			}
		}
		return false
	}
	sup, ok := c.CorrespondingSupertype(a, b)
	if !ok {
		return false
	}
	return c.argumentsCompatible(sup, b)
}

// argumentsCompatible checks the type arguments of sub (an instantiation of
// super's constructor) against super's arguments under the declared
// variance, overridden by use-site variance where present.
func (c *Checker) argumentsCompatible(sub, super types.Type) bool {
	for i, param := range super.Constructor.Parameters {
		superArg := super.Arguments[i]
		if types.IsStar(superArg) {
			continue
		}
		sp := superArg.(types.Projection)
		sa, ok := sub.Arguments[i].(types.Projection)
		if !ok {
			// sub leaves the argument unknown but super pins it
			return false
		}
		variance := param.Variance
		if sp.Variance != types.Invariant {
			variance = sp.Variance
		}
		switch variance {
		case types.Out:
			if !c.IsSubtypeOf(sa.Type, sp.Type) {
				return false
			}
		case types.In:
			if !c.IsSubtypeOf(sp.Type, sa.Type) {
				return false
			}
		default:
			if !c.IsSubtypeOf(sa.Type, sp.Type) || !c.IsSubtypeOf(sp.Type, sa.Type) {
				return false
			}
		}
	}
	return true
}

// CorrespondingSupertype finds, in the instantiated supertype closure of
// candidate, the type built from target's constructor. Returns false when
// the two classifiers are structurally unrelated along every path.
func (c *Checker) CorrespondingSupertype(candidate, target types.Type) (types.Type, bool) {
	return c.findSupertype(candidate, target.Constructor, make(map[types.ConstructorID]bool))
}

func (c *Checker) findSupertype(t types.Type, ctor *types.TypeConstructor, seen map[types.ConstructorID]bool) (types.Type, bool) {
	if t.Constructor.ID == ctor.ID {
		return t, true
	}
	if seen[t.Constructor.ID] {
		return types.Type{}, false
	}
	seen[t.Constructor.ID] = true

	subst := types.ParameterSubstitution(t.Constructor, t.Arguments)
	for _, sup := range t.Constructor.Supertypes {
		if found, ok := c.findSupertype(types.Substitute(sup, subst), ctor, seen); ok {
			return found, true
		}
	}
	if tp, ok := t.Constructor.TypeParameter(); ok {
		for _, bound := range tp.UpperBounds {
			if found, ok := c.findSupertype(bound, ctor, seen); ok {
				return found, true
			}
		}
	}
	return types.Type{}, false
}
