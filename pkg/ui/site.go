package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/clinicsite/pkg/booking"
	"github.com/dmitrymomot/clinicsite/pkg/dom"
	"github.com/dmitrymomot/clinicsite/pkg/guard"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
	"github.com/dmitrymomot/clinicsite/pkg/ratelimiter"
	"github.com/dmitrymomot/clinicsite/pkg/siteconfig"
)

// Feature names, in start order.
const (
	FeatureConsole  = "console"
	FeatureFrame    = "frame"
	FeatureLinks    = "links"
	FeatureForms    = "forms"
	FeatureClicks   = "clicks"
	FeatureMenu     = "menu"
	FeatureHeader   = "header"
	FeatureFAQ      = "faq"
	FeatureScroll   = "smooth_scroll"
	FeatureReveal   = "reveal"
	FeatureModal    = "modal"
	FeatureCarousel = "carousel"
)

// Site is the per page controller.
type Site struct {
	doc     dom.Document
	win     dom.Window
	cfg     siteconfig.Config
	log     *slog.Logger
	now     func() time.Time
	limiter *ratelimiter.Limiter
	guard   *guard.Guard
	booking *booking.Builder

	ctx      context.Context
	cancel   context.CancelFunc
	cleanups []dom.Remove
	timeouts map[int]dom.Timer
	timeoutN int
	status   map[string]error
	order    []string
	closed   bool

	// closeMenu resets the mobile menu; a no-op until the menu starts.
	closeMenu func()
}

// Option configures a Site.
type Option func(*Site)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(s *Site) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock sets the time source for rate limits, throttling and date checks.
func WithClock(now func() time.Time) Option {
	return func(s *Site) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLimiter shares a rate limiter with other code on the page.
func WithLimiter(l *ratelimiter.Limiter) Option {
	return func(s *Site) {
		if l != nil {
			s.limiter = l
		}
	}
}

// New creates a Site for doc and win. The configuration is validated first.
func New(doc dom.Document, win dom.Window, cfg siteconfig.Config, opts ...Option) (*Site, error) {
	if doc == nil || win == nil {
		return nil, ErrNilDocument
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Site{
		doc:       doc,
		win:       win,
		cfg:       cfg,
		log:       slog.Default(),
		now:       time.Now,
		status:    make(map[string]error),
		timeouts:  make(map[int]dom.Timer),
		closeMenu: func() {},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("ui"))

	if s.limiter == nil {
		l, err := ratelimiter.New(ratelimiter.NewMemoryStore(),
			ratelimiter.WithClock(s.now),
			ratelimiter.WithLogger(s.log),
		)
		if err != nil {
			return nil, err
		}
		s.limiter = l
	}

	g, err := guard.New(s.limiter,
		guard.WithLogger(s.log),
		guard.WithFormLimit(cfg.Limits.Form.MaxAttempts, cfg.Limits.Form.Window),
		guard.WithClickLimit(cfg.Limits.Click.MaxAttempts, cfg.Limits.Click.Window),
	)
	if err != nil {
		return nil, err
	}
	s.guard = g

	b, err := booking.NewBuilder(cfg.WhatsApp.Number,
		booking.WithGreeting(cfg.WhatsApp.Greeting),
		booking.WithClock(s.now),
	)
	if err != nil {
		return nil, err
	}
	s.booking = b

	return s, nil
}

// Limiter returns the rate limiter shared by the guards.
func (s *Site) Limiter() *ratelimiter.Limiter { return s.limiter }

// Init starts every feature. It may be called once.
func (s *Site) Init(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	if s.ctx != nil {
		return nil
	}
	s.ctx, s.cancel = context.WithCancel(ctx)

	features := []struct {
		name string
		fn   func() error
	}{
		{FeatureConsole, s.initConsole},
		{FeatureFrame, s.initFrame},
		{FeatureLinks, s.initLinks},
		{FeatureForms, s.initForms},
		{FeatureClicks, s.initClicks},
		{FeatureMenu, s.initMenu},
		{FeatureHeader, s.initHeader},
		{FeatureFAQ, s.initFAQ},
		{FeatureScroll, s.initSmoothScroll},
		{FeatureReveal, s.initReveal},
		{FeatureModal, s.initModal},
		{FeatureCarousel, s.initCarousel},
	}
	for _, f := range features {
		s.start(f.name, f.fn)
	}

	s.log.InfoContext(s.ctx, "page behaviors initialized",
		slog.Int("started", len(s.Started())),
		slog.Int("total", len(features)),
	)
	return nil
}

func (s *Site) start(name string, fn func() error) {
	err := s.safely(fn)
	s.status[name] = err
	s.order = append(s.order, name)

	switch {
	case err == nil:
	case errors.Is(err, ErrMissingRole):
		s.log.WarnContext(s.ctx, "feature skipped", logger.Feature(name), logger.Error(err))
	default:
		s.log.ErrorContext(s.ctx, "feature failed", logger.Feature(name), logger.Error(err))
	}
}

func (s *Site) safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(ErrFeaturePanic, fmt.Errorf("%v", r))
		}
	}()
	return fn()
}

// Status reports whether the named feature was started and, if not, why.
func (s *Site) Status(name string) (started bool, err error) {
	err, ok := s.status[name]
	return ok && err == nil, err
}

// Started lists the running features in start order.
func (s *Site) Started() []string {
	return slices.DeleteFunc(slices.Clone(s.order), func(n string) bool { return s.status[n] != nil })
}

// Close removes every listener, cancels timers and animation frames, and
// stops the carousel. It is safe to call more than once.
func (s *Site) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, fn := range slices.Backward(s.cleanups) {
		fn()
	}
	s.cleanups = nil
	for id, t := range s.timeouts {
		t.Stop()
		delete(s.timeouts, id)
	}
	if s.cancel != nil {
		s.cancel()
	}
}

// Closed reports whether Close has been called.
func (s *Site) Closed() bool { return s.closed }

func (s *Site) onClose(fn dom.Remove) { s.cleanups = append(s.cleanups, fn) }

func (s *Site) listen(t dom.Target, eventType string, fn dom.Listener) {
	s.onClose(t.AddEventListener(eventType, fn))
}

// after runs fn once after d unless the site is closed first.
// after runs fn once d has passed unless the site closes first. Pending
// timeouts are tracked until they run.
func (s *Site) after(d time.Duration, fn func()) {
	s.timeoutN++
	id := s.timeoutN
	fired := false
	t := s.win.SetTimeout(d, func() {
		fired = true
		delete(s.timeouts, id)
		if !s.closed {
			fn()
		}
	})
	if !fired {
		s.timeouts[id] = t
	}
}

func (s *Site) one(role, selector string) (dom.Element, error) {
	el := s.doc.Query(selector)
	if el == nil {
		return nil, missing(role, selector)
	}
	return el, nil
}

func (s *Site) many(role, selector string) ([]dom.Element, error) {
	els := s.doc.QueryAll(selector)
	if len(els) == 0 {
		return nil, missing(role, selector)
	}
	return els, nil
}

func missing(role, selector string) error {
	return errors.Join(ErrMissingRole, fmt.Errorf("role %s (%s)", role, selector))
}
