package casts

import "github.com/albertoruibal/kotlin/internal/types"

// IsCastErased reports whether a downcast or instance check from supertype
// to subtype cannot be verified precisely at runtime and degrades to a raw
// classifier check.
//
// The branches short-circuit in order. Nullability stripping recurses:
// a cast between T and T? is never itself a source of erasure.
func (e *Engine) IsCastErased(supertype, subtype types.Type) bool {
	nonReifiedParam := isNonReifiedTypeParameter(subtype.Constructor)
	isUpcast := e.Oracle.IsSubtypeOf(supertype, subtype)

	// A type variable without runtime identity cannot be checked downwards.
	if nonReifiedParam && !isUpcast {
		return true
	}
	if supertype.Nullable || subtype.Nullable {
		return e.IsCastErased(supertype.NotNullable(), subtype.NotNullable())
	}
	// Widening is guaranteed by the runtime class relation alone.
	if isUpcast {
		return false
	}
	if nonReifiedParam {
		return true
	}
	// Non-generic and fully reified targets are always checked precisely.
	if subtype.Constructor.AllParametersReified() {
		return false
	}

	// Reconstruct the most precise instantiation of subtype's constructor
	// the static supertype can guarantee. If even that fails, nothing can
	// be guaranteed and the cast is erased.
	result, err := e.FindStaticallyKnownSubtype(supertype, subtype.Constructor)
	if err != nil {
		return true
	}
	return !e.Oracle.IsSubtypeOf(result.Type, subtype)
}

func isNonReifiedTypeParameter(c *types.TypeConstructor) bool {
	d, ok := c.TypeParameter()
	return ok && !d.Reified
}
