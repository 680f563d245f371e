package casts

import (
	"testing"

	"github.com/albertoruibal/kotlin/internal/types"
)

func TestIsCastPossible(t *testing.T) {
	w := newTestWorld()

	nonReifiedT := types.NewTypeParameter("T", types.Invariant, false)
	reifiedT := types.NewTypeParameter("T", types.Invariant, true)

	tests := []struct {
		name string
		lhs  types.Type
		rhs  types.Type
		want bool
	}{
		// bottom-type boundary
		{"nullable Nothing to non-null Int", types.NullableNothingType, w.intType(), false},
		{"Any to Nothing", types.AnyType, types.NothingType, false},
		{"nullable Any to nullable Nothing", types.NullableAnyType, types.NullableNothingType, true},
		{"Any to nullable Nothing", types.AnyType, types.NullableNothingType, false},
		{"nullable Nothing to nullable String", types.NullableNothingType, w.stringType().MarkedNullable(), true},

		// nullability symmetry
		{"String to nullable String", w.stringType(), w.stringType().MarkedNullable(), true},
		{"nullable String to nullable String", w.stringType().MarkedNullable(), w.stringType().MarkedNullable(), true},
		{"nullable String to nullable Int", w.stringType().MarkedNullable(), w.intType().MarkedNullable(), true},

		// error types never block
		{"error type to Int", types.ErrorType("Unresolved"), w.intType(), true},

		// relatedness
		{"String to Any", w.stringType(), types.AnyType, true},
		{"Any to String", types.AnyType, w.stringType(), true},
		{"Int to Number", w.intType(), types.Simple(w.number), true},
		{"List to Collection", w.listOf(w.stringType()), w.collectionOf(w.stringType()), true},
		{"String to PlatformString counterpart", w.stringType(), types.Simple(w.platformString), true},
		{"PlatformString to String counterpart", types.Simple(w.platformString), w.stringType(), true},

		// type parameters are conservative
		{"type parameter to Int", nonReifiedT.Default(), w.intType(), true},
		{"Int to reified type parameter", w.intType(), reifiedT.Default(), true},

		// finality exclusion
		{"Int to String, both final", w.intType(), w.stringType(), false},
		{"Point to PlatformString, both final", types.Simple(w.point), types.Simple(w.platformString), false},
		{"Int to Point", w.intType(), types.Simple(w.point), false},

		// interface leniency
		{"Serializable to Point", types.Simple(w.serializable), types.Simple(w.point), true},
		{"Point to Serializable", types.Simple(w.point), types.Simple(w.serializable), true},
		{"Serializable to Comparable", types.Simple(w.serializable), types.Simple(w.comparable, types.Star), true},

		// two unrelated open classes cannot share an instance
		{"Number to open class", types.Simple(w.number), types.Simple(types.NewClass("Other", types.ClassDecl, false)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.engine.IsCastPossible(tt.lhs, tt.rhs); got != tt.want {
				t.Errorf("IsCastPossible(%s, %s) = %v, want %v", tt.lhs, tt.rhs, got, tt.want)
			}
		})
	}
}

// Soundness: whenever the harness can name a value inhabiting both types,
// the decider must answer true.
func TestIsCastPossibleSoundness(t *testing.T) {
	w := newTestWorld()

	// each pair is witnessed by a concrete common instance
	witnessed := []struct {
		name string
		lhs  types.Type
		rhs  types.Type
	}{
		{"an Int is a Number", types.Simple(w.number), w.intType()},
		{"an ArrayList is a List", w.listOf(w.stringType()), types.Simple(w.arrayList, types.InvariantOf(w.stringType()))},
		{"a String is Serializable", types.Simple(w.serializable), w.stringType()},
		{"null inhabits both", w.stringType().MarkedNullable(), w.intType().MarkedNullable()},
	}
	for _, tt := range witnessed {
		t.Run(tt.name, func(t *testing.T) {
			if !w.engine.IsCastPossible(tt.lhs, tt.rhs) {
				t.Errorf("IsCastPossible(%s, %s) = false, but a common instance exists", tt.lhs, tt.rhs)
			}
			if !w.engine.IsCastPossible(tt.rhs, tt.lhs) {
				t.Errorf("IsCastPossible(%s, %s) = false, but a common instance exists", tt.rhs, tt.lhs)
			}
		})
	}
}
