package touch

import (
	"github.com/mobile-next/mobiledriver/wire"
)

// Multi groups independent pointer sequences into one gesture the
// server executes concurrently, one pointer per member. Member order is
// preserved for deterministic serialization only; it does not imply
// execution order. A Multi owns its members; sequences are not shared
// between groups.
type Multi struct {
	members []*Sequence
}

// NewMulti returns an empty multi-pointer gesture.
func NewMulti() *Multi {
	return &Multi{}
}

// Add appends a pointer sequence and returns the group for chaining.
func (m *Multi) Add(s *Sequence) *Multi {
	m.members = append(m.members, s)
	return m
}

// Len returns the number of member sequences.
func (m *Multi) Len() int {
	return len(m.members)
}

// Serialize renders each member as {"actions": <member timeline>}.
// Position in the array is the implicit pointer index.
func (m *Multi) Serialize() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(m.members))
	for _, member := range m.members {
		out = append(out, map[string]interface{}{
			"actions": member.Serialize(),
		})
	}
	return out
}

// Perform submits all members as a single request. An empty group is a
// no-op with no network call; some servers reject empty gestures, so it
// is skipped rather than sent. Errors are returned unmodified.
func (m *Multi) Perform(p Performer) (interface{}, error) {
	if len(m.members) == 0 {
		return nil, nil
	}
	return p.ExecuteCommand(wire.CommandMultiTouchPerform, map[string]interface{}{
		"actions": m.Serialize(),
	})
}
