package touch

import (
	"github.com/mobile-next/mobiledriver/wire"
)

// Performer submits a named command with parameters to the automation
// server and returns its response value. *driver.Driver satisfies it.
type Performer interface {
	ExecuteCommand(name string, params map[string]interface{}) (interface{}, error)
}

// Sequence is an append-only timeline of gesture steps for a single
// pointer. All builder methods return the sequence itself for chaining.
// A Sequence is not safe for concurrent use.
type Sequence struct {
	steps []step
}

// NewSequence returns an empty single-pointer gesture.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Press touches down at screen coordinates.
func (s *Sequence) Press(x, y int) *Sequence {
	return s.append(step{kind: KindPress, x: x, y: y, hasPoint: true})
}

// PressElement touches down on an element.
func (s *Sequence) PressElement(el ElementRef) *Sequence {
	return s.append(step{kind: KindPress, element: &el})
}

// PressElementOffset touches down at an offset from an element.
func (s *Sequence) PressElementOffset(el ElementRef, x, y int) *Sequence {
	return s.append(step{kind: KindPress, element: &el, x: x, y: y, hasPoint: true})
}

// Wait pauses the pointer in place for the given milliseconds.
func (s *Sequence) Wait(ms int) *Sequence {
	return s.append(step{kind: KindWait, durationMS: ms})
}

// MoveTo moves the pointer to screen coordinates.
func (s *Sequence) MoveTo(x, y int) *Sequence {
	return s.append(step{kind: KindMoveTo, x: x, y: y, hasPoint: true})
}

// MoveToElement moves the pointer onto an element.
func (s *Sequence) MoveToElement(el ElementRef) *Sequence {
	return s.append(step{kind: KindMoveTo, element: &el})
}

// MoveToElementOffset moves the pointer to an offset from an element.
func (s *Sequence) MoveToElementOffset(el ElementRef, x, y int) *Sequence {
	return s.append(step{kind: KindMoveTo, element: &el, x: x, y: y, hasPoint: true})
}

// Release lifts the pointer.
func (s *Sequence) Release() *Sequence {
	return s.append(step{kind: KindRelease})
}

// Tap taps at screen coordinates count times. The tap is sent as a
// single primitive, never expanded into press/release pairs; count
// values below 1 are normalized to 1.
func (s *Sequence) Tap(x, y, count int) *Sequence {
	return s.append(step{kind: KindTap, x: x, y: y, hasPoint: true, count: normalizeCount(count)})
}

// TapElement taps an element count times.
func (s *Sequence) TapElement(el ElementRef, count int) *Sequence {
	return s.append(step{kind: KindTap, element: &el, count: normalizeCount(count)})
}

// LongPress presses at screen coordinates for the given milliseconds.
func (s *Sequence) LongPress(x, y, durationMS int) *Sequence {
	return s.append(step{kind: KindLongPress, x: x, y: y, hasPoint: true, durationMS: durationMS, hasDuration: true})
}

// LongPressElement presses an element for the given milliseconds.
func (s *Sequence) LongPressElement(el ElementRef, durationMS int) *Sequence {
	return s.append(step{kind: KindLongPress, element: &el, durationMS: durationMS, hasDuration: true})
}

// Len returns the number of steps appended so far.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Serialize renders the timeline as an ordered array of step payloads.
// It has no side effects and returns a fresh slice on every call.
func (s *Sequence) Serialize() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(s.steps))
	for _, st := range s.steps {
		out = append(out, st.serialize())
	}
	return out
}

// Perform submits the timeline as one request. An empty sequence is a
// no-op and never reaches the server. Errors from the performer are
// returned unmodified.
func (s *Sequence) Perform(p Performer) (interface{}, error) {
	if len(s.steps) == 0 {
		return nil, nil
	}
	return p.ExecuteCommand(wire.CommandTouchPerform, map[string]interface{}{
		"actions": s.Serialize(),
	})
}

func (s *Sequence) append(st step) *Sequence {
	s.steps = append(s.steps, st)
	return s
}

func normalizeCount(count int) int {
	if count < 1 {
		return 1
	}
	return count
}
