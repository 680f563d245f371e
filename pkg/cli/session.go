package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/albertoruibal/kotlin/internal/casts"
	"github.com/albertoruibal/kotlin/internal/config"
	"github.com/albertoruibal/kotlin/internal/deprecation"
	"github.com/albertoruibal/kotlin/internal/diagnostics"
	"github.com/albertoruibal/kotlin/internal/hierarchy"
)

// session evaluates cast queries against one loaded universe.
type session struct {
	universe    *hierarchy.Universe
	engine      *casts.Engine
	collector   *diagnostics.Collector
	deprecation *deprecation.Checker
	line        int // position counter for reported diagnostics
}

func newSession(universe *hierarchy.Universe, version config.LanguageVersion) *session {
	collector := diagnostics.NewCollector()
	return &session{
		universe:    universe,
		engine:      casts.NewEngine(universe.Platform),
		collector:   collector,
		deprecation: deprecation.NewChecker(universe.Deprecations, collector, version),
	}
}

// evaluate runs one "<lhs> as <rhs>" or "<lhs> is <rhs>" query and prints
// the verdict. Malformed queries print an error and report nothing.
func (s *session) evaluate(query string, out io.Writer) {
	s.line++
	pos := diagnostics.Position{Line: s.line, Column: 1}

	lhsSrc, rhsSrc, ok := splitQuery(query)
	if !ok {
		fmt.Fprintf(out, "cannot parse query %q: expected \"<type> as <type>\" or \"<type> is <type>\"\n", query)
		return
	}
	lhs, err := s.universe.ParseType(lhsSrc)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	rhs, err := s.universe.ParseType(rhsSrc)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}

	s.deprecation.CheckReference(lhs.Constructor, pos)
	s.deprecation.CheckReference(rhs.Constructor, pos)

	if !s.engine.IsCastPossible(lhs, rhs) {
		s.collector.Report(diagnostics.NewDiagnostic(
			diagnostics.ErrC001, diagnostics.SeverityError, pos,
			"cast from %s to %s can never succeed", lhs, rhs,
		))
		fmt.Fprintf(out, "%s: no value can be both %s and %s\n", color(colorRed, "impossible"), lhs, rhs)
		return
	}

	if s.engine.IsCastErased(lhs, rhs) {
		s.collector.Report(diagnostics.NewDiagnostic(
			diagnostics.ErrC002, diagnostics.SeverityWarning, pos,
			"unchecked cast from %s to %s", lhs, rhs,
		))
		fmt.Fprintf(out, "%s: generic arguments of %s cannot be checked at runtime\n", color(colorYellow, "unchecked"), rhs)
	} else {
		fmt.Fprintf(out, "%s: %s as %s\n", color(colorGreen, "ok"), lhs, rhs)
	}

	if len(rhs.Constructor.Parameters) > 0 && !rhs.Constructor.IsTypeParameter() {
		result, err := s.engine.FindStaticallyKnownSubtype(lhs.NotNullable(), rhs.Constructor)
		if err == nil {
			note := "all arguments inferred"
			if !result.AllArgumentsInferred {
				note = "some arguments unknown"
			}
			fmt.Fprintf(out, "statically known: %s (%s)\n", result.Type, note)
		}
	}
}

// splitQuery splits on the " as " or " is " keyword.
func splitQuery(query string) (lhs, rhs string, ok bool) {
	for _, kw := range []string{" as ", " is "} {
		if idx := strings.Index(query, kw); idx >= 0 {
			return strings.TrimSpace(query[:idx]), strings.TrimSpace(query[idx+len(kw):]), true
		}
	}
	return "", "", false
}
