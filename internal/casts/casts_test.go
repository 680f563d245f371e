package casts

import (
	"github.com/albertoruibal/kotlin/internal/platform"
	"github.com/albertoruibal/kotlin/internal/types"
)

// testWorld is a small class hierarchy shared by the tests in this package:
//
//	interface Collection<out E> : Any
//	interface List<out E> : Collection<E>
//	class ArrayList<E> : List<E>
//	interface Comparable<in T> : Any
//	interface Serializable : Any
//	open class Number : Any
//	final class Int : Number
//	final class String : Any, Serializable
//	final class PlatformString : Any        // platform counterpart of String
//	final class Point : Any
type testWorld struct {
	collection *types.TypeConstructor
	list       *types.TypeConstructor
	arrayList  *types.TypeConstructor
	comparable *types.TypeConstructor
	serializable,
	number,
	intClass,
	stringClass,
	platformString,
	point *types.TypeConstructor
	platform *platform.ClassMap
	engine   *Engine
}

func newTestWorld() *testWorld {
	w := &testWorld{}

	collectionE := types.NewTypeParameter("E", types.Out, false)
	w.collection = types.NewClass("Collection", types.InterfaceDecl, false, collectionE)
	w.collection.AddSupertype(types.AnyType)

	listE := types.NewTypeParameter("E", types.Out, false)
	w.list = types.NewClass("List", types.InterfaceDecl, false, listE)
	w.list.AddSupertype(types.Simple(w.collection, types.InvariantOf(listE.Default())))

	arrayListE := types.NewTypeParameter("E", types.Invariant, false)
	w.arrayList = types.NewClass("ArrayList", types.ClassDecl, false, arrayListE)
	w.arrayList.AddSupertype(types.Simple(w.list, types.InvariantOf(arrayListE.Default())))

	comparableT := types.NewTypeParameter("T", types.In, false)
	w.comparable = types.NewClass("Comparable", types.InterfaceDecl, false, comparableT)
	w.comparable.AddSupertype(types.AnyType)

	w.serializable = types.NewClass("Serializable", types.InterfaceDecl, false)
	w.serializable.AddSupertype(types.AnyType)

	w.number = types.NewClass("Number", types.ClassDecl, false)
	w.number.AddSupertype(types.AnyType)

	w.intClass = types.NewClass("Int", types.ClassDecl, true)
	w.intClass.AddSupertype(types.Simple(w.number))

	w.stringClass = types.NewClass("String", types.ClassDecl, true)
	w.stringClass.AddSupertype(types.AnyType)
	w.stringClass.AddSupertype(types.Simple(w.serializable))

	w.platformString = types.NewClass("PlatformString", types.ClassDecl, true)
	w.platformString.AddSupertype(types.AnyType)

	w.point = types.NewClass("Point", types.ClassDecl, true)
	w.point.AddSupertype(types.AnyType)

	w.platform = platform.NewClassMap()
	w.platform.Register(w.stringClass, w.platformString)

	w.engine = NewEngine(w.platform)
	return w
}

func (w *testWorld) stringType() types.Type { return types.Simple(w.stringClass) }
func (w *testWorld) intType() types.Type    { return types.Simple(w.intClass) }

func (w *testWorld) listOf(t types.Type) types.Type {
	return types.Simple(w.list, types.InvariantOf(t))
}

func (w *testWorld) collectionOf(t types.Type) types.Type {
	return types.Simple(w.collection, types.InvariantOf(t))
}

func (w *testWorld) listOfStar() types.Type {
	return types.Simple(w.list, types.Star)
}
