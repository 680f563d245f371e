package types

// Builtin classifiers shared by every hierarchy. Identity comparison against
// these singletons is how the engine recognizes the top and bottom types.
var (
	// AnyClass is the top of the class hierarchy.
	AnyClass = NewClass("Any", ClassDecl, false)

	// NothingClass is the bottom type: no non-null value inhabits it.
	NothingClass = NewClass("Nothing", ClassDecl, true)
)

var (
	AnyType             = Simple(AnyClass)
	NullableAnyType     = Simple(AnyClass).MarkedNullable()
	NothingType         = Simple(NothingClass)
	NullableNothingType = Simple(NothingClass).MarkedNullable()
)

// IsAny reports whether t is non-nullable Any.
func IsAny(t Type) bool {
	return t.Constructor == AnyClass && !t.Nullable
}

// IsAnyConstructor reports whether c is the Any classifier.
func IsAnyConstructor(c *TypeConstructor) bool { return c == AnyClass }

// IsNothing reports whether t is the non-nullable bottom type.
func IsNothing(t Type) bool {
	return t.Constructor == NothingClass && !t.Nullable
}

// IsNullableNothing reports whether t is Nothing?, the type inhabited only
// by null.
func IsNullableNothing(t Type) bool {
	return t.Constructor == NothingClass && t.Nullable
}

// IsNothingConstructor reports whether c is the Nothing classifier.
func IsNothingConstructor(c *TypeConstructor) bool { return c == NothingClass }
