package subtyping

import (
	"testing"

	"github.com/albertoruibal/kotlin/internal/types"
)

// hierarchy under test:
//
//	interface Collection<out E> : Any
//	interface List<out E> : Collection<E>
//	class Box<T> : Any
//	interface Comparable<in T> : Any
//	open class Number : Any
//	final class Int : Number
//	final class String : Any
func buildHierarchy() (collection, list, box, comparable, number, intClass, stringClass *types.TypeConstructor) {
	collectionE := types.NewTypeParameter("E", types.Out, false)
	collection = types.NewClass("Collection", types.InterfaceDecl, false, collectionE)
	collection.AddSupertype(types.AnyType)

	listE := types.NewTypeParameter("E", types.Out, false)
	list = types.NewClass("List", types.InterfaceDecl, false, listE)
	list.AddSupertype(types.Simple(collection, types.InvariantOf(listE.Default())))

	boxT := types.NewTypeParameter("T", types.Invariant, false)
	box = types.NewClass("Box", types.ClassDecl, false, boxT)
	box.AddSupertype(types.AnyType)

	comparableT := types.NewTypeParameter("T", types.In, false)
	comparable = types.NewClass("Comparable", types.InterfaceDecl, false, comparableT)
	comparable.AddSupertype(types.AnyType)

	number = types.NewClass("Number", types.ClassDecl, false)
	number.AddSupertype(types.AnyType)

	intClass = types.NewClass("Int", types.ClassDecl, true)
	intClass.AddSupertype(types.Simple(number))
	intClass.AddSupertype(types.Simple(comparable, types.InvariantOf(types.Simple(intClass))))

	stringClass = types.NewClass("String", types.ClassDecl, true)
	stringClass.AddSupertype(types.AnyType)
	return
}

func TestIsSubtypeOf(t *testing.T) {
	collection, list, box, comparable, number, intClass, stringClass := buildHierarchy()
	c := NewChecker()

	intT := types.Simple(intClass)
	numberT := types.Simple(number)
	stringT := types.Simple(stringClass)
	listOf := func(t types.Type) types.Type { return types.Simple(list, types.InvariantOf(t)) }
	collectionOf := func(t types.Type) types.Type { return types.Simple(collection, types.InvariantOf(t)) }
	boxOf := func(t types.Type) types.Type { return types.Simple(box, types.InvariantOf(t)) }

	tests := []struct {
		name string
		a    types.Type
		b    types.Type
		want bool
	}{
		{"reflexive", intT, intT, true},
		{"Int <: Number", intT, numberT, true},
		{"Number not <: Int", numberT, intT, false},
		{"Int <: Any", intT, types.AnyType, true},
		{"Any not <: Int", types.AnyType, intT, false},
		{"Nothing <: Int", types.NothingType, intT, true},
		{"Nothing? <: Int? only", types.NullableNothingType, intT.MarkedNullable(), true},
		{"Nothing? not <: Int", types.NullableNothingType, intT, false},
		{"Int not <: Nothing", intT, types.NothingType, false},

		{"T <: T?", intT, intT.MarkedNullable(), true},
		{"T? not <: T", intT.MarkedNullable(), intT, false},
		{"T? <: Any?", intT.MarkedNullable(), types.NullableAnyType, true},

		{"covariant argument", listOf(intT), listOf(numberT), true},
		{"covariant argument reversed", listOf(numberT), listOf(intT), false},
		{"List <: Collection", listOf(intT), collectionOf(intT), true},
		{"List <: Collection widened", listOf(intT), collectionOf(numberT), true},
		{"Collection not <: List", collectionOf(intT), listOf(intT), false},

		{"anything <: List<*>", listOf(stringT), types.Simple(list, types.Star), true},
		{"List<*> not <: List<String>", types.Simple(list, types.Star), listOf(stringT), false},

		{"invariant argument exact", boxOf(intT), boxOf(intT), true},
		{"invariant argument widened", boxOf(intT), boxOf(numberT), false},

		{"contravariant argument", types.Simple(comparable, types.InvariantOf(numberT)), types.Simple(comparable, types.InvariantOf(intT)), true},
		{"contravariant argument reversed", types.Simple(comparable, types.InvariantOf(intT)), types.Simple(comparable, types.InvariantOf(numberT)), false},
		{"Int <: Comparable<Int> via declared supertype", intT, types.Simple(comparable, types.InvariantOf(intT)), true},

		{"unrelated classes", stringT, numberT, false},
		{"error type is permissive", types.ErrorType("Broken"), intT, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsSubtypeOf(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSubtypeOf(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsSubtypeOfTypeParameters(t *testing.T) {
	_, _, _, _, number, intClass, _ := buildHierarchy()
	c := NewChecker()

	numberT := types.Simple(number)
	bounded := types.NewTypeParameter("T", types.Invariant, false, numberT)
	unbounded := types.NewTypeParameter("U", types.Invariant, false)

	if !c.IsSubtypeOf(bounded.Default(), numberT) {
		t.Errorf("T with upper bound Number must be a subtype of Number")
	}
	if !c.IsSubtypeOf(bounded.Default(), types.AnyType) {
		t.Errorf("every type parameter is a subtype of Any")
	}
	if c.IsSubtypeOf(bounded.Default(), types.Simple(intClass)) {
		t.Errorf("T bounded by Number must not be a subtype of Int")
	}
	if !c.IsSubtypeOf(unbounded.Default(), unbounded.Default()) {
		t.Errorf("a type parameter is a subtype of itself")
	}
}

func TestCorrespondingSupertype(t *testing.T) {
	collection, list, _, _, number, intClass, _ := buildHierarchy()
	c := NewChecker()

	listOfInt := types.Simple(list, types.InvariantOf(types.Simple(intClass)))

	sup, ok := c.CorrespondingSupertype(listOfInt, types.Simple(collection, types.Star))
	if !ok {
		t.Fatalf("expected a corresponding Collection supertype for List<Int>")
	}
	if sup.String() != "Collection<Int>" {
		t.Errorf("corresponding supertype = %s, want Collection<Int>", sup)
	}

	if _, ok := c.CorrespondingSupertype(types.Simple(number), types.Simple(list, types.Star)); ok {
		t.Errorf("Number has no corresponding List supertype")
	}
}
