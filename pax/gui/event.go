package gui

// Input is a GUI input button (spec.md §4.11), ported from
// pax_gui_types.h's pgui_input_t.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputUp
	InputDown
	InputAccept
	InputBack
)

// EventType is a button action (pgui_event_type_t).
type EventType int

const (
	EventPress EventType = iota
	EventHold
	EventRelease
)

// Modifier bits accompanying an event.
type Modifier uint32

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Event is one input event routed through the tree (spec.md §4.11).
type Event struct {
	Type      EventType
	Input     Input
	Value     rune
	Modifiers Modifier
}

// Response is a handler's verdict, mirroring pgui_resp_t.
type Response int

const (
	Ignored Response = iota
	Captured
	CapturedDirty
	CapturedErr
)

// Dispatch routes ev top-down to root's selected-descendant chain; if
// the deepest selected element doesn't handle it, the event bubbles up
// through ancestors until one captures it or the root ignores it
// (spec.md §4.11).
func Dispatch(root *Element, ev Event) Response {
	if root == nil {
		return Ignored
	}
	chain := selectedChain(root)
	for i := len(chain) - 1; i >= 0; i-- {
		e := chain[i]
		resp := handle(e, ev)
		if resp != Ignored {
			if resp == CapturedDirty {
				e.MarkDirty()
			}
			return resp
		}
	}
	return Ignored
}

func selectedChain(root *Element) []*Element {
	chain := []*Element{root}
	cur := root
	for {
		child := cur.SelectedChild()
		if child == nil {
			break
		}
		chain = append(chain, child)
		cur = child
	}
	return chain
}

func handle(e *Element, ev Event) Response {
	if e.EventCallback != nil {
		if resp := e.EventCallback(e, ev); resp != Ignored {
			return resp
		}
	}
	if e.Type != nil && e.Type.Event != nil {
		return e.Type.Event(e, ev)
	}
	return Ignored
}
