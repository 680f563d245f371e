// Package hierarchy loads class-hierarchy descriptions from YAML and builds
// the constructors, platform map and deprecation registry the cast engine
// runs against.
//
// A hierarchy file looks like:
//
//	classes:
//	  - name: Collection
//	    kind: interface
//	    parameters:
//	      - name: E
//	        variance: out
//	  - name: List
//	    kind: interface
//	    parameters:
//	      - name: E
//	        variance: out
//	    supertypes: ["Collection<E>"]
//	platform:
//	  - class: String
//	    counterpart: PlatformString
//	deprecations:
//	  - class: OldList
//	    message: "use List instead"
//	    since: "1.4"
//
// Classes without explicit supertypes extend Any.
package hierarchy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/albertoruibal/kotlin/internal/config"
	"github.com/albertoruibal/kotlin/internal/deprecation"
	"github.com/albertoruibal/kotlin/internal/platform"
	"github.com/albertoruibal/kotlin/internal/types"
)

// File is the top-level YAML document.
type File struct {
	Classes      []ClassDef       `yaml:"classes"`
	Platform     []CounterpartDef `yaml:"platform,omitempty"`
	Deprecations []DeprecationDef `yaml:"deprecations,omitempty"`
}

// ClassDef declares one classifier.
type ClassDef struct {
	Name string `yaml:"name"`

	// Kind is one of class, interface, enum, object, annotation.
	// Defaults to class.
	Kind string `yaml:"kind,omitempty"`

	// Final forbids subtypes. Enums and objects are final regardless.
	Final bool `yaml:"final,omitempty"`

	Parameters []ParameterDef `yaml:"parameters,omitempty"`

	// Supertypes are type expressions over the class's own parameters,
	// e.g. "Collection<E>". Defaults to ["Any"].
	Supertypes []string `yaml:"supertypes,omitempty"`
}

// ParameterDef declares one type parameter of a class.
type ParameterDef struct {
	Name     string `yaml:"name"`
	Variance string `yaml:"variance,omitempty"` // "", "in" or "out"
	Reified  bool   `yaml:"reified,omitempty"`
}

// CounterpartDef records a platform counterpart pair.
type CounterpartDef struct {
	Class       string `yaml:"class"`
	Counterpart string `yaml:"counterpart"`
}

// DeprecationDef records a deprecation annotation on a class.
type DeprecationDef struct {
	Class   string `yaml:"class"`
	Message string `yaml:"message"`
	Error   bool   `yaml:"error,omitempty"`
	Since   string `yaml:"since,omitempty"`
}

// Universe is a loaded hierarchy, ready to feed the engine.
type Universe struct {
	Classes      map[string]*types.TypeConstructor
	Platform     *platform.ClassMap
	Deprecations *deprecation.Registry
}

// Load reads and builds a hierarchy file.
func Load(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hierarchy: %w", err)
	}
	return Parse(data)
}

// Parse builds a universe from YAML bytes.
func Parse(data []byte) (*Universe, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse hierarchy: %w", err)
	}
	return Build(&file)
}

// Build resolves a parsed file into constructors. Declaration happens in two
// passes so supertype expressions can reference classes in any order.
func Build(file *File) (*Universe, error) {
	u := &Universe{
		Classes:      make(map[string]*types.TypeConstructor),
		Platform:     platform.NewClassMap(),
		Deprecations: deprecation.NewRegistry(),
	}
	u.Classes[config.AnyTypeName] = types.AnyClass
	u.Classes[config.NothingTypeName] = types.NothingClass

	// Pass 1: declare constructors and their parameters.
	for _, def := range file.Classes {
		if def.Name == "" {
			return nil, fmt.Errorf("hierarchy: class without a name")
		}
		if _, exists := u.Classes[def.Name]; exists {
			return nil, fmt.Errorf("hierarchy: duplicate class %q", def.Name)
		}
		kind, err := parseKind(def.Kind)
		if err != nil {
			return nil, fmt.Errorf("hierarchy: class %q: %w", def.Name, err)
		}
		final := def.Final || kind == types.EnumDecl || kind == types.ObjectDecl
		params := make([]*types.TypeParameterDescriptor, len(def.Parameters))
		for i, p := range def.Parameters {
			variance, err := parseVariance(p.Variance)
			if err != nil {
				return nil, fmt.Errorf("hierarchy: class %q parameter %q: %w", def.Name, p.Name, err)
			}
			params[i] = types.NewTypeParameter(p.Name, variance, p.Reified)
		}
		u.Classes[def.Name] = types.NewClass(def.Name, kind, final, params...)
	}

	// Pass 2: attach supertypes, resolving parameter names in class scope.
	for _, def := range file.Classes {
		ctor := u.Classes[def.Name]
		scope := parameterScope(ctor)
		supertypes := def.Supertypes
		if len(supertypes) == 0 {
			supertypes = []string{config.AnyTypeName}
		}
		for _, src := range supertypes {
			sup, err := parseTypeExpr(src, u.Classes, scope)
			if err != nil {
				return nil, fmt.Errorf("hierarchy: class %q supertype %q: %w", def.Name, src, err)
			}
			ctor.AddSupertype(sup)
		}
	}

	for _, pair := range file.Platform {
		a, ok := u.Classes[pair.Class]
		if !ok {
			return nil, fmt.Errorf("hierarchy: platform pair references unknown class %q", pair.Class)
		}
		b, ok := u.Classes[pair.Counterpart]
		if !ok {
			return nil, fmt.Errorf("hierarchy: platform pair references unknown class %q", pair.Counterpart)
		}
		u.Platform.Register(a, b)
	}

	for _, dep := range file.Deprecations {
		ctor, ok := u.Classes[dep.Class]
		if !ok {
			return nil, fmt.Errorf("hierarchy: deprecation references unknown class %q", dep.Class)
		}
		since := config.LanguageVersion{}
		if dep.Since != "" {
			v, err := config.ParseLanguageVersion(dep.Since)
			if err != nil {
				return nil, fmt.Errorf("hierarchy: deprecation of %q: %w", dep.Class, err)
			}
			since = v
		}
		u.Deprecations.Add(ctor, deprecation.Deprecation{
			Message: dep.Message,
			Error:   dep.Error,
			Since:   since,
		})
	}

	return u, nil
}

// Lookup resolves a class name, including the builtins.
func (u *Universe) Lookup(name string) (*types.TypeConstructor, bool) {
	c, ok := u.Classes[name]
	return c, ok
}

// ParseType parses a type expression such as "Map<String, List<Int?>>"
// against the universe's classes. Type parameters are not in scope.
func (u *Universe) ParseType(src string) (types.Type, error) {
	return parseTypeExpr(src, u.Classes, nil)
}

func parameterScope(ctor *types.TypeConstructor) map[string]types.Type {
	if len(ctor.Parameters) == 0 {
		return nil
	}
	scope := make(map[string]types.Type, len(ctor.Parameters))
	for _, p := range ctor.Parameters {
		scope[p.Name] = p.Default()
	}
	return scope
}

func parseKind(s string) (types.ClassKind, error) {
	switch s {
	case "", "class":
		return types.ClassDecl, nil
	case "interface":
		return types.InterfaceDecl, nil
	case "enum":
		return types.EnumDecl, nil
	case "object":
		return types.ObjectDecl, nil
	case "annotation":
		return types.AnnotationDecl, nil
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

func parseVariance(s string) (types.Variance, error) {
	switch s {
	case "":
		return types.Invariant, nil
	case "in":
		return types.In, nil
	case "out":
		return types.Out, nil
	}
	return 0, fmt.Errorf("unknown variance %q", s)
}
