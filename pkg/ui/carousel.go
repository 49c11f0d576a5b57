package ui

import (
	"strconv"
	"time"

	"github.com/dmitrymomot/clinicsite/pkg/carousel"
	"github.com/dmitrymomot/clinicsite/pkg/dom"
)

func (s *Site) initCarousel() error {
	if s.cfg.Presentation() == carousel.PresentationPaged {
		return s.initPaged()
	}
	return s.initContinuous()
}

func (s *Site) initContinuous() error {
	roles := s.cfg.Roles
	track, err := s.one("track", roles.Track)
	if err != nil {
		return err
	}
	slides := track.QueryAll(roles.Slide)
	if len(slides) == 0 {
		return missing("slide", roles.Slide)
	}

	c, err := carousel.NewContinuous(len(slides))
	if err != nil {
		return err
	}
	for _, slide := range slides {
		track.AppendChild(slide.Clone())
	}

	measure := func() { c.OnResize(s.win.InnerWidth(), slides[0].OffsetWidth()) }
	measure()
	s.after(s.cfg.Carousel.SettleDelay, measure)
	s.listen(s.win, "resize", func(dom.Event) { measure() })

	down := func(ev dom.Event) {
		c.OnPointerDown(ev.PageX())
		track.SetStyle("cursor", "grabbing")
	}
	move := func(ev dom.Event) { c.OnPointerMove(ev.PageX()) }
	up := func(dom.Event) {
		if c.Mode() != carousel.ModeDragging {
			return
		}
		c.OnPointerUp()
		track.SetStyle("cursor", "grab")
	}
	s.listen(track, "mousedown", down)
	s.listen(track, "touchstart", down)
	s.listen(s.win, "mousemove", move)
	s.listen(s.win, "touchmove", move)
	s.listen(s.win, "mouseup", up)
	s.listen(s.win, "touchend", up)
	s.listen(track, "mouseenter", func(dom.Event) { c.OnPointerEnter() })
	s.listen(track, "mouseleave", func(dom.Event) { c.OnPointerLeave() })

	var cancel dom.Remove
	var frame func()
	frame = func() {
		if s.closed {
			return
		}
		track.SetStyle("transform", carousel.TranslateX(c.OnTick()))
		cancel = s.win.RequestAnimationFrame(frame)
	}
	frame()

	s.onClose(func() {
		c.Stop()
		if cancel != nil {
			cancel()
		}
	})
	return nil
}

func (s *Site) initPaged() error {
	roles := s.cfg.Roles
	slider, err := s.one("slider", roles.Slider)
	if err != nil {
		return err
	}
	track, err := s.one("track", roles.Track)
	if err != nil {
		return err
	}
	slides := track.QueryAll(roles.Slide)
	if len(slides) == 0 {
		return missing("slide", roles.Slide)
	}

	dots := s.indicators(len(slides))
	render := func(index int) {
		track.SetStyle("transform", carousel.TranslatePercent(index))
		for i, dot := range dots {
			if i == index {
				dot.AddClass(classActive)
			} else {
				dot.RemoveClass(classActive)
			}
		}
	}

	scheduler := carousel.SchedulerFunc(func(d time.Duration, fn func()) carousel.Timer {
		return s.win.SetTimeout(d, fn)
	})
	p, err := carousel.NewPaged(len(slides),
		carousel.WithInterval(s.cfg.Carousel.Interval),
		carousel.WithSwipeThreshold(s.cfg.Carousel.SwipeThreshold),
		carousel.WithScheduler(scheduler),
		carousel.WithOnChange(render),
	)
	if err != nil {
		return err
	}
	render(0)

	for i, dot := range dots {
		s.listen(dot, "click", func(dom.Event) { p.GoToSlide(i) })
	}
	if prev := s.doc.Query(roles.Prev); prev != nil {
		s.listen(prev, "click", func(dom.Event) { p.Prev() })
	}
	if next := s.doc.Query(roles.Next); next != nil {
		s.listen(next, "click", func(dom.Event) { p.Next() })
	}
	s.listen(slider, "mouseenter", func(dom.Event) { p.OnHoverEnter() })
	s.listen(slider, "mouseleave", func(dom.Event) { p.OnHoverLeave() })
	s.listen(slider, "touchstart", func(ev dom.Event) { p.OnTouchStart(ev.PageX()) })
	s.listen(slider, "touchend", func(ev dom.Event) { p.OnTouchEnd(ev.PageX()) })

	p.Start()
	s.onClose(p.Close)
	return nil
}

// indicators returns one dot per slide, creating them inside the dots
// container when it has none. A page without a container gets no dots.
func (s *Site) indicators(n int) []dom.Element {
	roles := s.cfg.Roles
	container := s.doc.Query(roles.Dots)
	if container == nil {
		return nil
	}
	if existing := container.QueryAll("." + roles.DotClass); len(existing) == n {
		return existing
	}

	container.SetInnerHTML("")
	dots := make([]dom.Element, n)
	for i := range n {
		dot := s.doc.CreateElement("button")
		dot.AddClass(roles.DotClass)
		dot.SetAttr("type", "button")
		dot.SetAttr("aria-label", "Testimonio "+strconv.Itoa(i+1))
		container.AppendChild(dot)
		dots[i] = dot
	}
	return dots
}
