// Package diagnostics defines the diagnostic values the cast engine's
// callers emit and the sinks that record them. The engine itself only
// returns booleans; mapping them to codes and severities happens here.
package diagnostics

import (
	"fmt"
	"sync"
)

// ErrorCode identifies a diagnostic kind.
type ErrorCode string

const (
	// ErrC001: the cast or instance check can never succeed.
	ErrC001 ErrorCode = "C001"
	// ErrC002: the cast is unchecked, generic arguments are erased.
	ErrC002 ErrorCode = "C002"
	// ErrD001: reference to a deprecated classifier.
	ErrD001 ErrorCode = "D001"
)

// Severity of a diagnostic. The engine never decides severities; callers do.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// Position is a source location.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Diagnostic is one recorded finding.
type Diagnostic struct {
	Code     ErrorCode
	Severity Severity
	Pos      Position
	Message  string
}

// NewDiagnostic builds a diagnostic with a formatted message.
func NewDiagnostic(code ErrorCode, severity Severity, pos Position, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Severity: severity,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s: %s [%s] %s", d.Pos, d.Severity, d.Code, d.Message)
}

// Sink records diagnostics. Report is fire-and-forget; no ordering across
// diagnostics is guaranteed or required.
type Sink interface {
	Report(d *Diagnostic)
}

// Collector is a Sink that keeps reported diagnostics, deduplicating on
// line:col:code so cascading re-checks of the same expression do not pile
// up. Safe for concurrent use.
type Collector struct {
	mu   sync.Mutex
	seen map[string]bool
	list []*Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]bool)}
}

// Report records d unless an equal-positioned diagnostic with the same code
// was already recorded.
func (c *Collector) Report(d *Diagnostic) {
	key := fmt.Sprintf("%d:%d:%s", d.Pos.Line, d.Pos.Column, d.Code)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.list = append(c.list, d)
}

// Diagnostics returns the recorded diagnostics in report order.
func (c *Collector) Diagnostics() []*Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Diagnostic, len(c.list))
	copy(out, c.list)
	return out
}
