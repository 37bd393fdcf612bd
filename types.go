package triangle

// Stage is a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota + 1
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Status is the outcome of a GPU compile, link or validate step.
// Log carries the driver's info log and is only meaningful when OK is false.
type Status struct {
	OK  bool
	Log string
}

// noDiagnostic is reported when a driver fails a step without an info log.
const noDiagnostic = "no diagnostic reported by driver"

// err converts a failed status into a *StatusError. It returns nil when the
// status is OK.
func (s Status) err(op Op, stage Stage) error {
	if s.OK {
		return nil
	}
	log := s.Log
	if log == "" {
		log = noDiagnostic
	}
	return &StatusError{Op: op, Stage: stage, Log: log}
}

// Info describes the GPU and driver behind a context.
type Info struct {
	Vendor          string
	Renderer        string
	Version         string
	ShadingLanguage string
}

// EventKind identifies a platform event.
type EventKind int

const (
	EventQuit EventKind = iota + 1
	EventResize
)

// Event is a platform event drained by the input poll step.
type Event struct {
	Kind EventKind

	// Width and Height hold the new framebuffer size for EventResize.
	Width, Height int
}
