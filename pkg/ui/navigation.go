package ui

import (
	"strings"

	"github.com/dmitrymomot/clinicsite/pkg/dom"
	"github.com/dmitrymomot/clinicsite/pkg/guard"
)

const (
	classActive   = "active"
	classScrolled = "scrolled"
	iconOpen      = "fa-bars"
	iconClose     = "fa-times"
)

func (s *Site) initMenu() error {
	roles := s.cfg.Roles
	btn, err := s.one("menu_button", roles.MenuButton)
	if err != nil {
		return err
	}
	nav, err := s.one("nav", roles.Nav)
	if err != nil {
		return err
	}
	icon := btn.Query(roles.MenuIcon)

	s.listen(btn, "click", func(dom.Event) {
		nav.ToggleClass(classActive)
		if icon != nil {
			icon.ToggleClass(iconOpen)
			icon.ToggleClass(iconClose)
		}
	})

	s.closeMenu = func() {
		nav.RemoveClass(classActive)
		if icon != nil {
			icon.AddClass(iconOpen)
			icon.RemoveClass(iconClose)
		}
	}
	return nil
}

func (s *Site) initHeader() error {
	header, err := s.one("header", s.cfg.Roles.Header)
	if err != nil {
		return err
	}

	update := func() {
		if s.win.ScrollY() > s.cfg.Header.ScrollThreshold {
			header.AddClass(classScrolled)
		} else {
			header.RemoveClass(classScrolled)
		}
	}
	update()

	throttle := guard.NewThrottle(guard.ScrollInterval)
	s.listen(s.win, "scroll", func(dom.Event) {
		if throttle.AllowAt(s.now()) {
			update()
		}
	})
	return nil
}

func (s *Site) initFAQ() error {
	roles := s.cfg.Roles
	items, err := s.many("faq_item", roles.FAQItem)
	if err != nil {
		return err
	}

	for _, item := range items {
		question := item.Query(roles.FAQQuestion)
		if question == nil {
			continue
		}
		s.listen(question, "click", func(dom.Event) {
			wasActive := item.HasClass(classActive)
			for _, other := range items {
				other.RemoveClass(classActive)
			}
			if !wasActive {
				item.AddClass(classActive)
			}
		})
	}
	return nil
}

func (s *Site) initSmoothScroll() error {
	anchors, err := s.many("anchors", s.cfg.Roles.Anchors)
	if err != nil {
		return err
	}

	for _, a := range anchors {
		s.listen(a, "click", func(ev dom.Event) {
			ev.PreventDefault()
			href, _ := a.Attr("href")
			id := strings.TrimPrefix(href, "#")
			if id == "" {
				return
			}
			target := s.doc.ByID(id)
			if target == nil {
				return
			}
			s.win.ScrollTo(target.Top()+s.win.ScrollY()-s.cfg.Scroll.Offset, true)
			s.closeMenu()
		})
	}
	return nil
}

func (s *Site) initReveal() error {
	els, err := s.many("reveal", s.cfg.Roles.Reveal)
	if err != nil {
		return err
	}

	for _, el := range els {
		el.SetStyle("opacity", "0")
		el.SetStyle("transform", "translateY(30px)")
		el.SetStyle("transition", "opacity 0.6s ease, transform 0.6s ease")
	}

	opts := dom.ObserverOptions{
		Threshold:  s.cfg.Reveal.Threshold,
		RootMargin: s.cfg.Reveal.RootMargin,
	}
	s.onClose(s.win.Observe(els, opts, func(el dom.Element) {
		el.SetStyle("opacity", "1")
		el.SetStyle("transform", "translateY(0)")
	}))
	return nil
}
