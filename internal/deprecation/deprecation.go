// Package deprecation checks references to deprecated classifiers. The
// checker has no logic of its own: for every deprecation the lookup finds
// for the active language version, one diagnostic is reported.
package deprecation

import (
	"github.com/albertoruibal/kotlin/internal/config"
	"github.com/albertoruibal/kotlin/internal/diagnostics"
	"github.com/albertoruibal/kotlin/internal/types"
)

// Deprecation is one deprecation annotation applicable to a classifier.
type Deprecation struct {
	Message string
	// Error marks deprecations the language treats as hard errors.
	Error bool
	// Since is the first language version the deprecation applies to.
	Since config.LanguageVersion
}

// Lookup finds the deprecations applicable to a classifier under the given
// language version.
type Lookup interface {
	DeprecationsFor(c *types.TypeConstructor, version config.LanguageVersion) []Deprecation
}

// Registry is a table-backed Lookup, populated during hierarchy loading.
type Registry struct {
	entries map[types.ConstructorID][]Deprecation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[types.ConstructorID][]Deprecation)}
}

// Add records a deprecation for the classifier.
func (r *Registry) Add(c *types.TypeConstructor, d Deprecation) {
	r.entries[c.ID] = append(r.entries[c.ID], d)
}

// DeprecationsFor returns the deprecations active at version.
func (r *Registry) DeprecationsFor(c *types.TypeConstructor, version config.LanguageVersion) []Deprecation {
	var out []Deprecation
	for _, d := range r.entries[c.ID] {
		if version.Compare(d.Since) >= 0 {
			out = append(out, d)
		}
	}
	return out
}

// Checker dispatches deprecation findings to a diagnostic sink.
type Checker struct {
	lookup  Lookup
	sink    diagnostics.Sink
	version config.LanguageVersion
}

// NewChecker wires a checker.
func NewChecker(lookup Lookup, sink diagnostics.Sink, version config.LanguageVersion) *Checker {
	return &Checker{lookup: lookup, sink: sink, version: version}
}

// CheckReference reports every deprecation applicable to the referenced
// classifier.
func (c *Checker) CheckReference(ctor *types.TypeConstructor, pos diagnostics.Position) {
	for _, d := range c.lookup.DeprecationsFor(ctor, c.version) {
		severity := diagnostics.SeverityWarning
		if d.Error {
			severity = diagnostics.SeverityError
		}
		c.sink.Report(diagnostics.NewDiagnostic(
			diagnostics.ErrD001, severity, pos,
			"'%s' is deprecated: %s", ctor.Name, d.Message,
		))
	}
}
