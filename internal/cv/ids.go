package cv

import (
	"strconv"

	"github.com/google/uuid"
)

// UID is the opaque identity of a list item. It is assigned once when the
// item is added and only ever compared for equality.
type UID string

// IDGenerator hands out UIDs that never repeat within a session.
type IDGenerator interface {
	NewUID() UID
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() UID

// NewUID implements IDGenerator
func (f IDGeneratorFunc) NewUID() UID {
	return f()
}

// NewUUIDGenerator returns the default generator, backed by random UUIDs.
func NewUUIDGenerator() IDGenerator {
	return IDGeneratorFunc(func() UID {
		return UID(uuid.NewString())
	})
}

// SequenceGenerator yields prefix1, prefix2, ... in order. Tests and the
// sample résumé use it for predictable UIDs.
type SequenceGenerator struct {
	prefix string
	next   int
}

// NewSequenceGenerator creates a generator whose first UID is prefix+"1".
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix, next: 1}
}

// NewUID implements IDGenerator
func (g *SequenceGenerator) NewUID() UID {
	uid := UID(g.prefix + strconv.Itoa(g.next))
	g.next++
	return uid
}
