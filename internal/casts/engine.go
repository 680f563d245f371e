// Package casts decides whether a runtime type check or cast between two
// statically known types can succeed, whether it is erased to a raw class
// check, and what the most precise runtime-verifiable type looks like.
//
// The entry points IsCastPossible, IsCastErased and
// FindStaticallyKnownSubtype are pure queries over immutable type values
// and may be called concurrently without coordination.
package casts

import (
	"github.com/albertoruibal/kotlin/internal/platform"
	"github.com/albertoruibal/kotlin/internal/subtyping"
	"github.com/albertoruibal/kotlin/internal/types"
	"github.com/albertoruibal/kotlin/internal/unify"
)

// SubtypingOracle is the ambient subtyping relation: total, reflexive and
// transitive, consistent with classifier finality and variance.
type SubtypingOracle interface {
	IsSubtypeOf(a, b types.Type) bool
}

// SupertypeFinder locates, in candidate's supertype closure, the
// instantiation built from target's constructor. The false return is a
// legitimate outcome (the classifiers are unrelated along every path), not
// an error.
type SupertypeFinder interface {
	CorrespondingSupertype(candidate, target types.Type) (types.Type, bool)
}

// Unifier solves a against b for the variables in restrict. It never fails:
// the best partial substitution is returned and unresolved variables are
// simply absent.
type Unifier interface {
	Unify(a, b types.TypeProjection, restrict map[types.ConstructorID]bool) types.Substitution
}

// Engine answers cast feasibility and erasure questions. All collaborators
// are injected so the engine can be exercised against stubs.
type Engine struct {
	Oracle   SubtypingOracle
	Finder   SupertypeFinder
	Unifier  Unifier
	Platform *platform.ClassMap
}

// NewEngine wires an engine with the reference subtyping checker and
// unifier. platformMap may be nil when no cross-platform bridging applies.
func NewEngine(platformMap *platform.ClassMap) *Engine {
	checker := subtyping.NewChecker()
	return &Engine{
		Oracle:   checker,
		Finder:   checker,
		Unifier:  unify.New(),
		Platform: platformMap,
	}
}
