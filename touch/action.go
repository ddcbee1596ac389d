// Package touch builds single- and multi-pointer gesture payloads for
// the automation server's touch perform endpoints. Builders only
// assemble and serialize; the server executes the gesture.
package touch

// Kind identifies a single gesture instruction.
type Kind string

const (
	KindPress     Kind = "press"
	KindRelease   Kind = "release"
	KindWait      Kind = "wait"
	KindMoveTo    Kind = "moveTo"
	KindTap       Kind = "tap"
	KindLongPress Kind = "longPress"
)

// ElementRef is an opaque reference to a UI element previously resolved
// by the server.
type ElementRef struct {
	ID string
}

// step is one immutable instruction in a sequence. Steps are only
// constructed through Sequence methods, one constructor per valid field
// combination; there is no runtime validation beyond that.
type step struct {
	kind        Kind
	element     *ElementRef
	x, y        int
	hasPoint    bool
	durationMS  int
	hasDuration bool
	count       int
}

// serialize renders the step as {"action": ..., "options": {...}} using
// the wire option names the server expects: x/y/element for targets,
// "ms" for wait, "duration" for long press, "count" for tap.
func (s step) serialize() map[string]interface{} {
	options := map[string]interface{}{}

	if s.element != nil {
		options["element"] = s.element.ID
	}
	if s.hasPoint {
		options["x"] = s.x
		options["y"] = s.y
	}

	switch s.kind {
	case KindWait:
		options["ms"] = s.durationMS
	case KindLongPress:
		if s.hasDuration {
			options["duration"] = s.durationMS
		}
	case KindTap:
		if s.count > 0 {
			options["count"] = s.count
		}
	}

	return map[string]interface{}{
		"action":  string(s.kind),
		"options": options,
	}
}
