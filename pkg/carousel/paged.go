package carousel

import (
	"sync"
	"time"
)

// Paged carousel defaults.
const (
	DefaultInterval       = 5 * time.Second
	DefaultSwipeThreshold = 50.0
)

// Paged shows one slide at a time with autoplay and swipe navigation.
// Autoplay callbacks may arrive from a timer goroutine, so state is guarded.
type Paged struct {
	mu         sync.Mutex
	total      int
	index      int
	interval   time.Duration
	threshold  float64
	scheduler  Scheduler
	timer      Timer
	gen        uint64
	touchStart float64
	onChange   func(index int)
	closed     bool
}

// PagedOption configures a Paged carousel.
type PagedOption func(*Paged)

// WithInterval sets the autoplay interval. Non-positive values are ignored.
func WithInterval(d time.Duration) PagedOption {
	return func(p *Paged) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithSwipeThreshold sets the minimum horizontal swipe distance in pixels.
func WithSwipeThreshold(px float64) PagedOption {
	return func(p *Paged) {
		if px > 0 {
			p.threshold = px
		}
	}
}

// WithScheduler sets the timer source used for autoplay. Nil is ignored.
func WithScheduler(s Scheduler) PagedOption {
	return func(p *Paged) {
		if s != nil {
			p.scheduler = s
		}
	}
}

// WithOnChange registers a callback invoked with the new index after every
// navigation, including autoplay.
func WithOnChange(fn func(index int)) PagedOption {
	return func(p *Paged) {
		p.onChange = fn
	}
}

// NewPaged creates a paged carousel over total slides, starting at index 0.
func NewPaged(total int, opts ...PagedOption) (*Paged, error) {
	if total <= 0 {
		return nil, ErrNoSlides
	}

	p := &Paged{
		total:     total,
		interval:  DefaultInterval,
		threshold: DefaultSwipeThreshold,
		scheduler: RealScheduler{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// GoToSlide moves to slide i, wrapping a single step past either end, and
// returns the new index.
func (p *Paged) GoToSlide(i int) int {
	p.mu.Lock()
	switch {
	case i < 0:
		i = p.total - 1
	case i >= p.total:
		i = 0
	}
	p.index = i
	onChange := p.onChange
	p.mu.Unlock()

	if onChange != nil {
		onChange(i)
	}
	return i
}

func (p *Paged) Next() int { return p.GoToSlide(p.Index() + 1) }
func (p *Paged) Prev() int { return p.GoToSlide(p.Index() - 1) }

func (p *Paged) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

func (p *Paged) Total() int { return p.total }

// Transform returns the CSS transform for the current index.
func (p *Paged) Transform() string { return TranslatePercent(p.Index()) }

// Indicators reports, per slide, whether its dot is active.
func (p *Paged) Indicators() []bool {
	idx := p.Index()
	dots := make([]bool, p.total)
	dots[idx] = true
	return dots
}

// Start begins autoplay with a fresh countdown.
func (p *Paged) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.stopLocked()
	p.scheduleLocked()
}

// Stop cancels autoplay.
func (p *Paged) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Playing reports whether an autoplay countdown is pending.
func (p *Paged) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.timer != nil
}

func (p *Paged) OnHoverEnter() { p.Stop() }
func (p *Paged) OnHoverLeave() { p.Start() }

func (p *Paged) OnTouchStart(x float64) {
	p.mu.Lock()
	p.touchStart = x
	p.mu.Unlock()
}

// OnTouchEnd advances on a leftward swipe and retreats on a rightward one.
// Movements within the threshold are ignored.
func (p *Paged) OnTouchEnd(x float64) {
	p.mu.Lock()
	delta := p.touchStart - x
	threshold := p.threshold
	p.mu.Unlock()

	switch {
	case delta > threshold:
		p.Next()
	case delta < -threshold:
		p.Prev()
	}
}

// Close cancels autoplay permanently.
func (p *Paged) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.stopLocked()
}

// scheduleLocked starts a countdown tagged with a new generation, so a
// callback that runs before AfterFunc returns still matches it.
func (p *Paged) scheduleLocked() {
	p.gen++
	gen := p.gen
	p.timer = p.scheduler.AfterFunc(p.interval, func() { p.tick(gen) })
}

func (p *Paged) stopLocked() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// tick advances one slide and schedules the next one, unless the countdown
// of generation gen has since been replaced or cancelled.
func (p *Paged) tick(gen uint64) {
	p.mu.Lock()
	if p.closed || gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.scheduleLocked()
	p.mu.Unlock()

	p.Next()
}
