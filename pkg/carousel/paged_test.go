package carousel_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinicsite/pkg/carousel"
)

type fakeTimer struct {
	s       *fakeScheduler
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) carousel.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{s: s, d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// fire runs every pending timer once.
func (s *fakeScheduler) fire() {
	s.mu.Lock()
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func (s *fakeScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func TestNewPaged(t *testing.T) {
	t.Parallel()

	_, err := carousel.NewPaged(0)
	assert.ErrorIs(t, err, carousel.ErrNoSlides)

	p, err := carousel.NewPaged(3)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 3, p.Total())
	assert.Equal(t, "translateX(0%)", p.Transform())
}

func TestPaged_GoToSlide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		to   int
		want int
	}{
		{name: "before first wraps to last", to: -1, want: 4},
		{name: "past last wraps to first", to: 5, want: 0},
		{name: "in range", to: 3, want: 3},
		{name: "first", to: 0, want: 0},
		{name: "last", to: 4, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := carousel.NewPaged(5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.GoToSlide(tt.to))
			assert.Equal(t, tt.want, p.Index())
		})
	}
}

func TestPaged_NextPrev(t *testing.T) {
	t.Parallel()

	var seen []int
	p, err := carousel.NewPaged(3, carousel.WithOnChange(func(i int) { seen = append(seen, i) }))
	require.NoError(t, err)

	p.Next()
	p.Next()
	p.Next()
	p.Prev()
	assert.Equal(t, []int{1, 2, 0, 2}, seen)
	assert.Equal(t, "translateX(-200%)", p.Transform())
	assert.Equal(t, []bool{false, false, true}, p.Indicators())
}

func TestPaged_Swipe(t *testing.T) {
	t.Parallel()

	p, err := carousel.NewPaged(5)
	require.NoError(t, err)

	p.OnTouchStart(300)
	p.OnTouchEnd(200)
	assert.Equal(t, 1, p.Index(), "left swipe advances")

	p.OnTouchStart(100)
	p.OnTouchEnd(251)
	assert.Equal(t, 0, p.Index(), "right swipe retreats")

	p.OnTouchStart(100)
	p.OnTouchEnd(150)
	assert.Equal(t, 0, p.Index(), "exactly the threshold is ignored")

	p.OnTouchStart(100)
	p.OnTouchEnd(80)
	assert.Equal(t, 0, p.Index(), "small movement is ignored")
}

func TestPaged_Autoplay(t *testing.T) {
	t.Parallel()

	t.Run("advances on every interval", func(t *testing.T) {
		t.Parallel()
		sched := &fakeScheduler{}
		p, err := carousel.NewPaged(3, carousel.WithScheduler(sched))
		require.NoError(t, err)

		p.Start()
		require.Equal(t, 1, sched.pending())
		assert.Equal(t, carousel.DefaultInterval, sched.timers[0].d)

		sched.fire()
		assert.Equal(t, 1, p.Index())
		sched.fire()
		sched.fire()
		assert.Equal(t, 0, p.Index())
		assert.Equal(t, 1, sched.pending())
	})

	t.Run("hover cancels and leave restarts", func(t *testing.T) {
		t.Parallel()
		sched := &fakeScheduler{}
		p, err := carousel.NewPaged(3,
			carousel.WithScheduler(sched),
			carousel.WithInterval(time.Second),
		)
		require.NoError(t, err)

		p.Start()
		p.OnHoverEnter()
		assert.False(t, p.Playing())
		assert.Zero(t, sched.pending())

		sched.fire()
		assert.Equal(t, 0, p.Index())

		p.OnHoverLeave()
		assert.True(t, p.Playing())
		assert.Equal(t, 1, sched.pending())
		assert.Equal(t, time.Second, sched.timers[len(sched.timers)-1].d)

		sched.fire()
		assert.Equal(t, 1, p.Index())
	})

	t.Run("restart replaces the pending countdown", func(t *testing.T) {
		t.Parallel()
		sched := &fakeScheduler{}
		p, err := carousel.NewPaged(3, carousel.WithScheduler(sched))
		require.NoError(t, err)

		p.Start()
		p.Start()
		assert.Equal(t, 1, sched.pending())
	})

	t.Run("close stops for good", func(t *testing.T) {
		t.Parallel()
		sched := &fakeScheduler{}
		p, err := carousel.NewPaged(3, carousel.WithScheduler(sched))
		require.NoError(t, err)

		p.Start()
		p.Close()
		p.Start()
		p.OnHoverLeave()
		assert.Zero(t, sched.pending())
		assert.False(t, p.Playing())
	})
}

// eagerScheduler runs the first n callbacks on a goroutine that has already
// started before AfterFunc returns; later ones are left to fallback.
type eagerScheduler struct {
	mu       sync.Mutex
	n        int
	fallback *fakeScheduler
}

func (s *eagerScheduler) AfterFunc(d time.Duration, f func()) carousel.Timer {
	s.mu.Lock()
	eager := s.n > 0
	s.n--
	s.mu.Unlock()
	if !eager {
		return s.fallback.AfterFunc(d, f)
	}

	started := make(chan struct{})
	go func() {
		close(started)
		f()
	}()
	<-started
	return &fakeTimer{s: s.fallback, d: d, f: f, fired: true}
}

func TestPaged_AutoplayCallbackBeforeScheduleReturns(t *testing.T) {
	t.Parallel()
	sched := &eagerScheduler{n: 3, fallback: &fakeScheduler{}}
	p, err := carousel.NewPaged(5, carousel.WithScheduler(sched))
	require.NoError(t, err)

	p.Start()

	assert.Eventually(t, func() bool {
		return p.Index() == 3 && sched.fallback.pending() == 1
	}, time.Second, time.Millisecond)
	assert.True(t, p.Playing())
}

func TestRealScheduler(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	timer := carousel.RealScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })
	require.NotNil(t, timer)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled function did not run")
	}
	assert.False(t, timer.Stop())
}
