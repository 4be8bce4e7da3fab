// Package interaction translates raw pointer events into domain actions.
// The whole machine is a pure transition function over a small value state:
// it never touches the scene, the simulation, or the data API itself, it
// only emits effects for the view controller to execute.
package interaction

// Mode is the interaction mode of the graph view.
type Mode int

const (
	// ModeSelect is the default mode: click activates, double-click edits,
	// drag repositions.
	ModeSelect Mode = iota
	// ModeConnect creates edges with two sequential node clicks. Dragging
	// is disabled.
	ModeConnect
)

func (m Mode) String() string {
	if m == ModeConnect {
		return "connect"
	}
	return "select"
}

// State is the machine's complete state. The zero value is select mode with
// nothing pending, selected, or dragged.
type State struct {
	Mode          Mode
	PendingSource string // link source awaiting a target, "" when idle
	SelectedEdge  string // exclusively selected edge, "" when none
	DraggedNode   string // node currently being dragged, "" when none
}

// Event is a raw input event fed to Transition.
type Event interface{ isEvent() }

type (
	// NodeClicked is a single click on a node marker.
	NodeClicked struct{ ID string }
	// NodeDoubleClicked is a double click on a node marker.
	NodeDoubleClicked struct{ ID string }
	// EdgeClicked is a click on an edge path.
	EdgeClicked struct{ ID string }
	// BackgroundClicked is a click on empty canvas.
	BackgroundClicked struct{}
	// PointerMoved reports the pointer position while a link is pending.
	PointerMoved struct{ X, Y float64 }
	// DragStarted begins a node drag at the given pointer position.
	DragStarted struct {
		ID   string
		X, Y float64
	}
	// DragMoved continues a node drag.
	DragMoved struct {
		ID   string
		X, Y float64
	}
	// DragEnded releases a node drag at the final pointer position.
	DragEnded struct {
		ID   string
		X, Y float64
	}
	// DeletePressed asks to delete whatever is selected.
	DeletePressed struct{}
	// ModeChanged switches the interaction mode.
	ModeChanged struct{ Mode Mode }
)

func (NodeClicked) isEvent()       {}
func (NodeDoubleClicked) isEvent() {}
func (EdgeClicked) isEvent()       {}
func (BackgroundClicked) isEvent() {}
func (PointerMoved) isEvent()      {}
func (DragStarted) isEvent()       {}
func (DragMoved) isEvent()         {}
func (DragEnded) isEvent()         {}
func (DeletePressed) isEvent()     {}
func (ModeChanged) isEvent()       {}

// Effect is a side effect the controller must execute. Effects are the only
// output channel of the machine: persistence, simulation pinning, and
// visual updates all happen outside.
type Effect interface{ isEffect() }

type (
	// ActivateNode opens the node's read view.
	ActivateNode struct{ ID string }
	// RequestNodeEdit opens the node's edit form.
	RequestNodeEdit struct{ ID string }
	// SelectEdge marks the edge as selected, displacing any other.
	SelectEdge struct{ ID string }
	// ClearEdgeSelection removes the edge selection.
	ClearEdgeSelection struct{}
	// RequestEdgeDelete asks the controller to delete the edge.
	RequestEdgeDelete struct{ ID string }
	// RequestEdge asks the controller to create an edge.
	RequestEdge struct{ Source, Target string }
	// HighlightSource marks the pending link source visually.
	HighlightSource struct{ ID string }
	// ClearSourceHighlight removes the pending-source mark.
	ClearSourceHighlight struct{}
	// BeginLinkTrace starts drawing the provisional line from the source.
	BeginLinkTrace struct{ SourceID string }
	// UpdateLinkTrace moves the provisional line's free end to the pointer.
	UpdateLinkTrace struct{ X, Y float64 }
	// ClearLinkTrace removes the provisional line.
	ClearLinkTrace struct{}
	// BeginDrag pins the node to the pointer and warms the simulation.
	BeginDrag struct {
		ID   string
		X, Y float64
	}
	// ContinueDrag moves the pinned node with the pointer.
	ContinueDrag struct {
		ID   string
		X, Y float64
	}
	// EndDrag cools the simulation, leaving the node pinned.
	EndDrag struct{ ID string }
	// MoveNode persists the node's release coordinate.
	MoveNode struct {
		ID   string
		X, Y float64
	}
)

func (ActivateNode) isEffect()         {}
func (RequestNodeEdit) isEffect()      {}
func (SelectEdge) isEffect()           {}
func (ClearEdgeSelection) isEffect()   {}
func (RequestEdgeDelete) isEffect()    {}
func (RequestEdge) isEffect()          {}
func (HighlightSource) isEffect()      {}
func (ClearSourceHighlight) isEffect() {}
func (BeginLinkTrace) isEffect()       {}
func (UpdateLinkTrace) isEffect()      {}
func (ClearLinkTrace) isEffect()       {}
func (BeginDrag) isEffect()            {}
func (ContinueDrag) isEffect()         {}
func (EndDrag) isEffect()              {}
func (MoveNode) isEffect()             {}

// Transition applies one event and returns the next state plus the effects
// to execute, in order. It is pure: the same state and event always produce
// the same result.
func Transition(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case ModeChanged:
		return switchMode(s, e.Mode)
	case NodeClicked:
		if s.Mode == ModeConnect {
			return connectClick(s, e.ID)
		}
		return s, []Effect{ActivateNode{ID: e.ID}}
	case NodeDoubleClicked:
		if s.Mode == ModeConnect {
			return s, nil
		}
		return s, []Effect{RequestNodeEdit{ID: e.ID}}
	case EdgeClicked:
		s.SelectedEdge = e.ID
		return s, []Effect{SelectEdge{ID: e.ID}}
	case BackgroundClicked:
		return backgroundClick(s)
	case PointerMoved:
		if s.PendingSource == "" {
			return s, nil
		}
		return s, []Effect{UpdateLinkTrace{X: e.X, Y: e.Y}}
	case DragStarted:
		if s.Mode == ModeConnect {
			return s, nil
		}
		s.DraggedNode = e.ID
		return s, []Effect{BeginDrag{ID: e.ID, X: e.X, Y: e.Y}}
	case DragMoved:
		if s.DraggedNode != e.ID {
			return s, nil
		}
		return s, []Effect{ContinueDrag{ID: e.ID, X: e.X, Y: e.Y}}
	case DragEnded:
		if s.DraggedNode != e.ID {
			return s, nil
		}
		s.DraggedNode = ""
		return s, []Effect{EndDrag{ID: e.ID}, MoveNode{ID: e.ID, X: e.X, Y: e.Y}}
	case DeletePressed:
		if s.SelectedEdge == "" {
			return s, nil
		}
		id := s.SelectedEdge
		s.SelectedEdge = ""
		return s, []Effect{RequestEdgeDelete{ID: id}, ClearEdgeSelection{}}
	}
	return s, nil
}

// connectClick handles the two-click edge creation sequence. The pending
// link is cleared after the second click whether or not the edge request
// succeeds: a failed create must not leave a stale trace.
func connectClick(s State, nodeID string) (State, []Effect) {
	if s.PendingSource == "" {
		s.PendingSource = nodeID
		return s, []Effect{
			HighlightSource{ID: nodeID},
			BeginLinkTrace{SourceID: nodeID},
		}
	}

	source := s.PendingSource
	s.PendingSource = ""
	if nodeID == source {
		// self-loop: reject without a create request
		return s, []Effect{ClearLinkTrace{}, ClearSourceHighlight{}}
	}
	return s, []Effect{
		RequestEdge{Source: source, Target: nodeID},
		ClearLinkTrace{},
		ClearSourceHighlight{},
	}
}

func backgroundClick(s State) (State, []Effect) {
	var effects []Effect
	if s.PendingSource != "" {
		s.PendingSource = ""
		effects = append(effects, ClearLinkTrace{}, ClearSourceHighlight{})
	}
	if s.SelectedEdge != "" {
		s.SelectedEdge = ""
		effects = append(effects, ClearEdgeSelection{})
	}
	return s, effects
}

// switchMode changes the mode and sheds every bit of connect-mode state so
// the next interaction starts from scratch.
func switchMode(s State, mode Mode) (State, []Effect) {
	if s.Mode == mode {
		return s, nil
	}
	var effects []Effect
	if s.PendingSource != "" {
		effects = append(effects, ClearLinkTrace{}, ClearSourceHighlight{})
	}
	if s.SelectedEdge != "" {
		effects = append(effects, ClearEdgeSelection{})
	}
	return State{Mode: mode}, effects
}
