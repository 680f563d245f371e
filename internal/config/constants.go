package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Built-in classifier names
const (
	AnyTypeName     = "Any"
	NothingTypeName = "Nothing"
)

// DiagnosticSource identifies this tool in emitted diagnostics.
const DiagnosticSource = "castcheck"

// HierarchyFileExt is the recognized hierarchy description extension.
const HierarchyFileExt = ".yaml"

// LanguageVersion is a major.minor language version, comparable by Compare.
type LanguageVersion struct {
	Major int
	Minor int
}

// DefaultLanguageVersion is assumed when the caller does not pin a version.
var DefaultLanguageVersion = LanguageVersion{Major: 2, Minor: 0}

// ParseLanguageVersion parses "major.minor", e.g. "1.9".
func ParseLanguageVersion(s string) (LanguageVersion, error) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return LanguageVersion{}, fmt.Errorf("invalid language version %q, expected major.minor", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return LanguageVersion{}, fmt.Errorf("invalid language version %q: %v", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return LanguageVersion{}, fmt.Errorf("invalid language version %q: %v", s, err)
	}
	return LanguageVersion{Major: major, Minor: minor}, nil
}

// Compare returns -1, 0 or 1 as v is before, equal to or after other.
func (v LanguageVersion) Compare(other LanguageVersion) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

func (v LanguageVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
