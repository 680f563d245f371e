package casts

import (
	"fmt"

	"github.com/albertoruibal/kotlin/internal/types"
)

// ReconstructionResult is the outcome of FindStaticallyKnownSubtype.
// AllArgumentsInferred is false when at least one generic argument could not
// be determined from the supertype and was replaced by a star projection.
type ReconstructionResult struct {
	Type                 types.Type
	AllArgumentsInferred bool
}

// FindStaticallyKnownSubtype reconstructs the most precise instantiation of
// ctor that is consistent with the statically known supertype.
//
// The supertype must be non-nullable and ctor must carry a declaration;
// violating either is a caller bug reported as an error, never as a guessed
// result. Finding no corresponding supertype shape is not an error: the
// reconstruction then falls back to star projections for every parameter.
func (e *Engine) FindStaticallyKnownSubtype(supertype types.Type, ctor *types.TypeConstructor) (ReconstructionResult, error) {
	if supertype.Nullable {
		return ReconstructionResult{}, fmt.Errorf("findStaticallyKnownSubtype: supertype must be non-nullable, got %s", supertype)
	}
	if ctor == nil || ctor.Declaration == nil {
		return ReconstructionResult{}, fmt.Errorf("findStaticallyKnownSubtype: constructor has no declaration")
	}

	// Fresh instantiation: every argument is the parameter's own variable.
	fresh := ctor.DefaultType()
	restrict := make(map[types.ConstructorID]bool, len(ctor.Parameters))
	for _, p := range ctor.Parameters {
		restrict[p.Constructor().ID] = true
	}

	// Unify the corresponding supertype shape against the actual supertype,
	// binding only the variables introduced above. No shape means no
	// constraints, e.g. reconstructing List<*> from Any.
	subst := make(types.Substitution)
	if shape, ok := e.Finder.CorrespondingSupertype(fresh, supertype); ok {
		subst = e.Unifier.Unify(types.InvariantOf(shape), types.InvariantOf(supertype), restrict)
	}

	allInferred := true
	for _, p := range ctor.Parameters {
		if _, ok := subst[p.Constructor().ID]; !ok {
			subst[p.Constructor().ID] = types.Star
			allInferred = false
		}
	}

	return ReconstructionResult{
		Type:                 types.Substitute(fresh, subst),
		AllArgumentsInferred: allInferred,
	}, nil
}
