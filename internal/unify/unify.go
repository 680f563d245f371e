// Package unify implements first-order structural unification of type
// projections, restricted to an explicit variable set. It backs the static
// subtype reconstructor, which unifies a variable-carrying supertype shape
// against a ground supertype.
package unify

import "github.com/albertoruibal/kotlin/internal/types"

// Unifier matches two projections structurally and binds restricted
// variables. It is total: pairs that cannot be made equal contribute no
// bindings, and the best partial substitution is returned. Unrestricted
// variables are never bound.
type Unifier struct{}

// New returns a unifier.
func New() Unifier { return Unifier{} }

// Unify solves a against b for the variables in restrict and returns the
// resulting (possibly partial) substitution.
func (u Unifier) Unify(a, b types.TypeProjection, restrict map[types.ConstructorID]bool) types.Substitution {
	out := make(types.Substitution)
	unifyProjections(a, b, restrict, out)
	return out
}

func unifyProjections(a, b types.TypeProjection, restrict map[types.ConstructorID]bool, out types.Substitution) {
	ap, aok := a.(types.Projection)
	bp, bok := b.(types.Projection)
	if !aok || !bok {
		// a star on either side pins nothing
		return
	}
	unifyTypes(ap.Type, bp.Type, restrict, out)
}

func unifyTypes(a, b types.Type, restrict map[types.ConstructorID]bool, out types.Substitution) {
	if bindVariable(a, b, restrict, out) || bindVariable(b, a, restrict, out) {
		return
	}
	if a.Constructor.ID != b.Constructor.ID {
		return
	}
	n := len(a.Arguments)
	if len(b.Arguments) < n {
		n = len(b.Arguments)
	}
	for i := 0; i < n; i++ {
		unifyProjections(a.Arguments[i], b.Arguments[i], restrict, out)
	}
}

// bindVariable binds v to t when v is a restricted type variable. The first
// binding wins; later occurrences of the same variable are ignored rather
// than checked for agreement, matching the best-partial-solution contract.
func bindVariable(v, t types.Type, restrict map[types.ConstructorID]bool, out types.Substitution) bool {
	if !v.Constructor.IsTypeParameter() || !restrict[v.Constructor.ID] {
		return false
	}
	if _, bound := out[v.Constructor.ID]; !bound {
		bindTo := t
		if v.Nullable && t.Nullable {
			// T? matched against S?: the variable itself is T
			bindTo = t.NotNullable()
		}
		out[v.Constructor.ID] = types.InvariantOf(bindTo)
	}
	return true
}
