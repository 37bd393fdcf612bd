package triangle

import "sync"

// State is the frame driver's run state.
type State int

const (
	Running State = iota
	Quitting
)

func (s State) String() string {
	if s == Quitting {
		return "quitting"
	}
	return "running"
}

// DefaultClearColor is the background the frame is cleared to.
var DefaultClearColor = Color{R: 1, G: 1, B: 0, A: 1}

// DriverConfig configures a Driver. Program and Geometry may be nil, in which
// case the driver only clears and presents.
type DriverConfig struct {
	Program    *Program
	Geometry   *Geometry
	ClearColor Color
}

// Driver runs the render loop: input poll, pre-draw, draw, present.
// It must be stepped from the goroutine that owns the GL context.
type Driver struct {
	dev Device
	win Window
	cfg DriverConfig

	state  State
	frames uint64

	mu      sync.Mutex
	pending []func(Device)
}

// NewDriver creates a driver in the Running state.
func NewDriver(dev Device, win Window, cfg DriverConfig) *Driver {
	return &Driver{
		dev:   dev,
		win:   win,
		cfg:   cfg,
		state: Running,
	}
}

// State returns the current run state.
func (d *Driver) State() State { return d.state }

// Frames returns the number of completed iterations.
func (d *Driver) Frames() uint64 { return d.frames }

// Do schedules fn to run on the render thread after the next input poll.
// It is safe to call from any goroutine and never blocks. Work scheduled by a
// queued func runs in the following iteration.
func (d *Driver) Do(fn func(Device)) {
	d.mu.Lock()
	d.pending = append(d.pending, fn)
	d.mu.Unlock()
}

// Run steps the driver until it is quitting.
func (d *Driver) Run() {
	for d.Step() {
	}
	logger.Debug("render loop exited", "frames", d.frames)
}

// Step runs one full iteration and reports whether the loop should continue.
// A driver that is already quitting does nothing.
func (d *Driver) Step() bool {
	if d.state == Quitting {
		return false
	}

	d.input()
	d.runQueued()
	d.RenderFrame()
	d.win.SwapBuffers()

	d.frames++
	return d.state == Running
}

// RenderFrame runs the pre-draw and draw steps without polling or presenting.
func (d *Driver) RenderFrame() {
	d.preDraw()
	d.draw()
}

func (d *Driver) input() {
	for _, ev := range d.win.PollEvents() {
		switch ev.Kind {
		case EventQuit:
			if d.state != Quitting {
				logger.Info("window closed, goodbye")
			}
			d.state = Quitting
		case EventResize:
			logger.Debug("framebuffer resized", "width", ev.Width, "height", ev.Height)
		}
	}
}

// runQueued runs only the funcs pending when it is called.
func (d *Driver) runQueued() {
	d.mu.Lock()
	queued := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, fn := range queued {
		fn(d.dev)
	}
}

func (d *Driver) preDraw() {
	d.dev.DisableDepthTest()
	d.dev.DisableCullFace()

	w, h := d.win.FramebufferSize()
	d.dev.Viewport(0, 0, int32(w), int32(h))
	d.dev.Clear(d.cfg.ClearColor)

	if d.cfg.Program != nil {
		d.cfg.Program.Use(d.dev)
	}
}

func (d *Driver) draw() {
	if d.cfg.Geometry == nil {
		return
	}
	d.cfg.Geometry.Draw(d.dev)
}
