package carousel

import (
	"math"

	"github.com/dmitrymomot/clinicsite/pkg/statemachine"
)

// Mode is the state of a continuous carousel.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeDragging Mode = "dragging"
	ModePaused   Mode = "paused"
)

type input string

const (
	inputPointerDown  input = "pointer_down"
	inputPointerUp    input = "pointer_up"
	inputPointerEnter input = "pointer_enter"
	inputPointerLeave input = "pointer_leave"
)

// Layout constants for the continuous track.
const (
	MobileBreakpoint = 768.0
	MobileSpeed      = 1.6
	DesktopSpeed     = 0.5
	MobileGap        = 40.0
	DesktopGap       = 30.0
)

// Continuous is an auto-advancing track with drag override and hover pause.
// It is driven from a single goroutine (the UI thread).
type Continuous struct {
	machine    *statemachine.Machine[Mode, input]
	slideCount int
	offset     float64
	refOffset  float64
	startX     float64
	speed      float64
	width      float64
	hovering   bool
	stopped    bool
}

// NewContinuous creates a continuous carousel over slideCount original slides.
// The speed starts at the desktop value until OnResize is called.
func NewContinuous(slideCount int) (*Continuous, error) {
	if slideCount <= 0 {
		return nil, ErrNoSlides
	}

	c := &Continuous{slideCount: slideCount, speed: DesktopSpeed}
	c.machine = statemachine.MustNew(ModeAuto,
		statemachine.WithTransition(ModeAuto, ModeDragging, inputPointerDown),
		statemachine.WithTransition(ModePaused, ModeDragging, inputPointerDown),
		statemachine.WithTransition(ModeDragging, ModePaused, inputPointerUp,
			statemachine.WithGuard[Mode, input](c.isHovering),
		),
		statemachine.WithTransition(ModeDragging, ModeAuto, inputPointerUp),
		statemachine.WithTransition(ModeAuto, ModePaused, inputPointerEnter),
		statemachine.WithTransition(ModePaused, ModeAuto, inputPointerLeave),
	)
	return c, nil
}

func (c *Continuous) isHovering(Mode, input) bool { return c.hovering }

// OnPointerDown starts a drag at horizontal page coordinate x.
func (c *Continuous) OnPointerDown(x float64) {
	if c.stopped || c.machine.Fire(inputPointerDown) != nil {
		return
	}
	c.startX = x
	c.refOffset = c.offset
}

// OnPointerMove makes the track follow the pointer while dragging.
func (c *Continuous) OnPointerMove(x float64) {
	if c.stopped || !c.machine.Is(ModeDragging) {
		return
	}
	c.offset = c.normalize(c.refOffset + (x - c.startX))
}

// OnPointerUp ends a drag. The track stays paused while the pointer is
// still over it.
func (c *Continuous) OnPointerUp() {
	if c.stopped {
		return
	}
	_ = c.machine.Fire(inputPointerUp)
}

// OnPointerEnter pauses auto-advance unless a drag is in progress.
func (c *Continuous) OnPointerEnter() {
	c.hovering = true
	if !c.stopped {
		_ = c.machine.Fire(inputPointerEnter)
	}
}

// OnPointerLeave resumes auto-advance unless a drag is in progress.
func (c *Continuous) OnPointerLeave() {
	c.hovering = false
	if !c.stopped {
		_ = c.machine.Fire(inputPointerLeave)
	}
}

// OnTick advances the track by one frame and returns the offset to render.
func (c *Continuous) OnTick() float64 {
	if !c.stopped && c.machine.Is(ModeAuto) {
		c.offset = c.normalize(c.offset - c.speed)
	}
	return c.offset
}

// OnResize recomputes speed, gap and the width of one slide set.
func (c *Continuous) OnResize(viewportWidth, slideWidth float64) {
	gap := DesktopGap
	c.speed = DesktopSpeed
	if viewportWidth <= MobileBreakpoint {
		gap = MobileGap
		c.speed = MobileSpeed
	}
	c.width = (math.Max(slideWidth, 0) + gap) * float64(c.slideCount)
	c.offset = c.normalize(c.offset)
}

// Stop freezes the carousel. Later events and ticks are ignored.
func (c *Continuous) Stop() { c.stopped = true }

// Stopped reports whether Stop has been called.
func (c *Continuous) Stopped() bool { return c.stopped }

func (c *Continuous) Mode() Mode              { return c.machine.Current() }
func (c *Continuous) Offset() float64         { return c.offset }
func (c *Continuous) Speed() float64          { return c.speed }
func (c *Continuous) SingleSetWidth() float64 { return c.width }
func (c *Continuous) Hovering() bool          { return c.hovering }

// normalize maps x into (-width, 0]. Offsets are left alone until the width
// is known.
func (c *Continuous) normalize(x float64) float64 {
	if c.width <= 0 {
		return x
	}
	x = math.Mod(x, c.width)
	if x > 0 {
		x -= c.width
	}
	if x == 0 {
		return 0
	}
	return x
}
