package types

// Substitution maps type-parameter constructors (by identity) to the
// projections that replace them. Keys are unique; values are read once the
// substitution is complete.
type Substitution map[ConstructorID]TypeProjection

// ParameterSubstitution maps each declared parameter of ctor to the
// corresponding actual argument. The usual way to instantiate a
// constructor's supertypes for a concrete use.
func ParameterSubstitution(ctor *TypeConstructor, args []TypeProjection) Substitution {
	s := make(Substitution, len(ctor.Parameters))
	for i, p := range ctor.Parameters {
		s[p.Constructor().ID] = args[i]
	}
	return s
}

// Substitute applies s to t and returns a fresh type; t is not modified.
//
// A parameter replaced at an argument position by Star becomes a star
// argument. A parameter replaced by Star at top level stays the parameter:
// nothing more precise is known, and a bare star is not a type.
func Substitute(t Type, s Substitution) Type {
	if t.Constructor.IsTypeParameter() {
		if r, ok := s[t.Constructor.ID]; ok {
			if p, ok := r.(Projection); ok {
				out := p.Type
				if t.Nullable {
					out = out.MarkedNullable()
				}
				return out
			}
			return t
		}
		return t
	}
	if len(t.Arguments) == 0 {
		return t
	}
	args := make([]TypeProjection, len(t.Arguments))
	for i, a := range t.Arguments {
		args[i] = SubstituteProjection(a, s)
	}
	t.Arguments = args
	return t
}

// SubstituteProjection applies s to a single use-site argument.
func SubstituteProjection(p TypeProjection, s Substitution) TypeProjection {
	proj, ok := p.(Projection)
	if !ok {
		return p
	}
	if proj.Type.Constructor.IsTypeParameter() {
		r, ok := s[proj.Type.Constructor.ID]
		if !ok {
			return p
		}
		if IsStar(r) {
			return Star
		}
		rp := r.(Projection)
		out := rp.Type
		if proj.Type.Nullable {
			out = out.MarkedNullable()
		}
		// use-site variance of the replacement wins over the original's
		v := proj.Variance
		if rp.Variance != Invariant {
			v = rp.Variance
		}
		return Projection{Variance: v, Type: out}
	}
	return Projection{Variance: proj.Variance, Type: Substitute(proj.Type, s)}
}
