// Package platform maps classifiers to their cross-platform counterparts.
// A native library class and the language's own wrapper class are distinct
// declarations but must be treated as mutually related by the cast engine;
// this map records that relation. The map is built once and then only read.
package platform

import "github.com/albertoruibal/kotlin/internal/types"

// ClassMap is a many-to-many relation between classifiers and their
// counterparts on other platforms.
type ClassMap struct {
	counterparts map[types.ConstructorID][]*types.TypeConstructor
}

// NewClassMap returns an empty map.
func NewClassMap() *ClassMap {
	return &ClassMap{counterparts: make(map[types.ConstructorID][]*types.TypeConstructor)}
}

// Register records a and b as counterparts of each other.
func (m *ClassMap) Register(a, b *types.TypeConstructor) {
	m.counterparts[a.ID] = append(m.counterparts[a.ID], b)
	m.counterparts[b.ID] = append(m.counterparts[b.ID], a)
}

// Counterparts returns the registered counterparts of c, or nil.
func (m *ClassMap) Counterparts(c *types.TypeConstructor) []*types.TypeConstructor {
	if m == nil {
		return nil
	}
	return m.counterparts[c.ID]
}

// MappedSet returns {c} plus all counterparts of c.
func (m *ClassMap) MappedSet(c *types.TypeConstructor) []*types.TypeConstructor {
	set := []*types.TypeConstructor{c}
	return append(set, m.Counterparts(c)...)
}
