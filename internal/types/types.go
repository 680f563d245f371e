// Package types holds the immutable type representations the cast engine
// reasons over: type constructors (classes, interfaces, type parameters),
// types with nullability and arguments, use-site projections, and
// substitutions. Values are never mutated after the hierarchy is built;
// every operation returns fresh values.
package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Variance of a declared type parameter or a use-site projection.
type Variance int

const (
	Invariant Variance = iota
	In
	Out
)

func (v Variance) String() string {
	switch v {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return ""
	}
}

// ClassKind is the declaration kind of a classifier.
type ClassKind int

const (
	ClassDecl ClassKind = iota
	InterfaceDecl
	EnumDecl
	ObjectDecl
	AnnotationDecl
)

func (k ClassKind) String() string {
	switch k {
	case InterfaceDecl:
		return "interface"
	case EnumDecl:
		return "enum"
	case ObjectDecl:
		return "object"
	case AnnotationDecl:
		return "annotation"
	default:
		return "class"
	}
}

// Declaration is the closed variant behind a TypeConstructor: a classifier
// is declared either as a class-like entity or as a type parameter.
type Declaration interface {
	declaration()
}

// ClassDeclaration declares a class, interface, enum, object or annotation.
type ClassDeclaration struct {
	Kind  ClassKind
	Final bool // no subtypes can be declared
}

func (*ClassDeclaration) declaration() {}

// TypeParameterDeclaration declares a type parameter.
type TypeParameterDeclaration struct {
	Reified     bool
	UpperBounds []Type
}

func (*TypeParameterDeclaration) declaration() {}

// ConstructorID uniquely identifies a TypeConstructor. Substitutions are
// keyed by it, so identity survives copying of the surrounding values.
type ConstructorID = uuid.UUID

// TypeParameterDescriptor describes one declared parameter of a constructor.
// Each parameter owns a constructor of its own (the identity of the variable
// the parameter introduces), used as the fresh variable in reconstruction.
type TypeParameterDescriptor struct {
	Name     string
	Variance Variance
	Reified  bool
	ctor     *TypeConstructor
}

// Constructor returns the parameter's own type-parameter constructor.
func (d *TypeParameterDescriptor) Constructor() *TypeConstructor { return d.ctor }

// Default returns the parameter used as a plain non-nullable type.
func (d *TypeParameterDescriptor) Default() Type {
	return Type{Constructor: d.ctor}
}

// TypeConstructor identifies a classifier and carries its declaration,
// ordered parameters and instantiated supertypes. Supertypes are expressed
// in terms of the constructor's own parameters (e.g. List<E> lists
// Collection<E> as a supertype) and are attached once during hierarchy
// construction; after that the value is read-only.
type TypeConstructor struct {
	ID          ConstructorID
	Name        string
	Declaration Declaration
	Parameters  []*TypeParameterDescriptor
	Supertypes  []Type
}

// NewTypeParameter declares a type parameter for use in NewClass.
func NewTypeParameter(name string, variance Variance, reified bool, bounds ...Type) *TypeParameterDescriptor {
	d := &TypeParameterDescriptor{Name: name, Variance: variance, Reified: reified}
	d.ctor = &TypeConstructor{
		ID:          uuid.New(),
		Name:        name,
		Declaration: &TypeParameterDeclaration{Reified: reified, UpperBounds: bounds},
	}
	return d
}

// NewClass declares a classifier constructor. Supertypes are attached
// afterwards via AddSupertype so hierarchies can reference each other.
func NewClass(name string, kind ClassKind, final bool, params ...*TypeParameterDescriptor) *TypeConstructor {
	return &TypeConstructor{
		ID:          uuid.New(),
		Name:        name,
		Declaration: &ClassDeclaration{Kind: kind, Final: final},
		Parameters:  params,
	}
}

// AddSupertype attaches an instantiated supertype. Only valid during
// hierarchy construction.
func (c *TypeConstructor) AddSupertype(t Type) {
	c.Supertypes = append(c.Supertypes, t)
}

// Class returns the class declaration, if this constructor is class-like.
func (c *TypeConstructor) Class() (*ClassDeclaration, bool) {
	d, ok := c.Declaration.(*ClassDeclaration)
	return d, ok
}

// TypeParameter returns the type-parameter declaration, if any.
func (c *TypeConstructor) TypeParameter() (*TypeParameterDeclaration, bool) {
	d, ok := c.Declaration.(*TypeParameterDeclaration)
	return d, ok
}

// IsTypeParameter reports whether this constructor is a type parameter.
func (c *TypeConstructor) IsTypeParameter() bool {
	_, ok := c.Declaration.(*TypeParameterDeclaration)
	return ok
}

// AllParametersReified reports whether every declared parameter is reified.
// True for constructors without parameters.
func (c *TypeConstructor) AllParametersReified() bool {
	for _, p := range c.Parameters {
		if !p.Reified {
			return false
		}
	}
	return true
}

// DefaultType returns C<P1, ..., Pn> with each declared parameter used as an
// invariant argument, e.g. List<E> for the List constructor.
func (c *TypeConstructor) DefaultType() Type {
	args := make([]TypeProjection, len(c.Parameters))
	for i, p := range c.Parameters {
		args[i] = InvariantOf(p.Default())
	}
	return Type{Constructor: c, Arguments: args}
}

func (c *TypeConstructor) String() string { return c.Name }

// Type is an immutable use of a constructor with type arguments.
// len(Arguments) == len(Constructor.Parameters) is a precondition of every
// operation in this module; a mismatch is a bug upstream.
type Type struct {
	Nullable    bool
	Constructor *TypeConstructor
	Arguments   []TypeProjection
	IsError     bool
}

// Simple builds a non-nullable type from a constructor and arguments.
func Simple(c *TypeConstructor, args ...TypeProjection) Type {
	return Type{Constructor: c, Arguments: args}
}

// ErrorType builds an error-marked type. Error types propagate
// permissiveness instead of causing cascading diagnostics.
func ErrorType(name string) Type {
	return Type{
		Constructor: NewClass(name, ClassDecl, false),
		IsError:     true,
	}
}

// MarkedNullable returns a copy of t marked nullable.
func (t Type) MarkedNullable() Type {
	t.Nullable = true
	return t
}

// NotNullable returns a copy of t with nullability stripped.
func (t Type) NotNullable() Type {
	t.Nullable = false
	return t
}

func (t Type) String() string {
	var sb strings.Builder
	sb.WriteString(t.Constructor.Name)
	if len(t.Arguments) > 0 {
		parts := make([]string, len(t.Arguments))
		for i, a := range t.Arguments {
			parts[i] = a.String()
		}
		sb.WriteString("<")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString(">")
	}
	if t.Nullable {
		sb.WriteString("?")
	}
	return sb.String()
}

// TypeProjection is a use-site type argument: either the unknown star
// argument or a type with an optional variance. Star is a distinct variant
// rather than a nil sentinel so "unknown" can never be confused with
// "absent".
type TypeProjection interface {
	fmt.Stringer
	projection()
}

// StarProjection is the unknown argument: any type consistent with the
// parameter's variance and bounds.
type StarProjection struct{}

func (StarProjection) projection()    {}
func (StarProjection) String() string { return "*" }

// Star is the canonical star projection value.
var Star TypeProjection = StarProjection{}

// Projection is a use-site argument carrying a type and an optional variance.
type Projection struct {
	Variance Variance
	Type     Type
}

func (Projection) projection() {}

func (p Projection) String() string {
	if p.Variance == Invariant {
		return p.Type.String()
	}
	return p.Variance.String() + " " + p.Type.String()
}

// InvariantOf wraps a type as an invariant use-site argument.
func InvariantOf(t Type) TypeProjection {
	return Projection{Type: t}
}

// IsStar reports whether p is the star projection.
func IsStar(p TypeProjection) bool {
	_, ok := p.(StarProjection)
	return ok
}
