package ui

import (
	"log/slog"

	"github.com/dmitrymomot/clinicsite/pkg/dom"
	"github.com/dmitrymomot/clinicsite/pkg/guard"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
)

func (s *Site) initConsole() error {
	for _, line := range guard.ConsoleWarning() {
		format, style := line.Format()
		s.win.ConsoleLog(format, style)
	}
	return nil
}

func (s *Site) initFrame() error {
	switch guard.FrameDecision(s.win.Framed(), s.win.NavigateTop) {
	case guard.FrameReplace:
		s.doc.Body().SetInnerHTML(guard.FramedMarkup(s.cfg.Messages.Framed))
		s.log.WarnContext(s.ctx, "site loaded in unauthorized iframe")
	case guard.FrameBust:
		s.log.WarnContext(s.ctx, "site loaded in iframe, navigating top window")
	}
	return nil
}

func (s *Site) initLinks() error {
	for _, link := range s.doc.QueryAll(s.cfg.Roles.ExternalLinks) {
		rel, _ := link.Attr("rel")
		if hardened := guard.HardenRel(rel); hardened != rel {
			link.SetAttr("rel", hardened)
		}
	}
	return nil
}

func (s *Site) initForms() error {
	roles := s.cfg.Roles
	for _, form := range s.doc.QueryAll(roles.Forms) {
		s.listen(form, "submit", func(ev dom.Event) {
			id := form.ID()
			if !s.guard.AllowSubmit(s.ctx, id) {
				ev.PreventDefault()
				s.banner(form, roles.SecurityErrorClass, s.cfg.Messages.TooManyAttempts)
				return
			}
			if hp := form.Query(roles.Honeypot); hp != nil && s.guard.HoneypotTripped(s.ctx, id, hp.Value()) {
				ev.PreventDefault()
			}
		})

		for _, field := range form.QueryAll(roles.FormFields) {
			inputType, _ := field.Attr("type")
			if guard.IsTextInput(field.TagName(), inputType) {
				s.listen(field, "input", func(dom.Event) {
					name, _ := field.Attr("name")
					if name == "" {
						name = field.ID()
					}
					if clean, changed := s.guard.ScrubInput(s.ctx, name, field.Value()); changed {
						field.SetValue(clean)
					}
				})
			}
			if n := guard.ClampMaxLength(field.MaxLength()); n != field.MaxLength() {
				field.SetMaxLength(n)
			}
		}
	}
	return nil
}

func (s *Site) initClicks() error {
	for _, link := range s.doc.QueryAll(s.cfg.Roles.ClickTargets) {
		s.listen(link, "click", func(ev dom.Event) {
			href, _ := link.Attr("href")
			kind, ok := guard.ClassifyHref(href)
			if !ok || s.guard.AllowClick(s.ctx, kind) {
				return
			}
			ev.PreventDefault()
			s.win.Alert(s.cfg.Messages.TooManyClicks)
		})
	}

	for _, btn := range s.doc.QueryAll(s.cfg.Roles.SubmitButtons) {
		s.listen(btn, "click", func(dom.Event) {
			btn.SetDisabled(true)
			s.after(s.cfg.Limits.SubmitCooldown, func() { btn.SetDisabled(false) })
		})
	}
	return nil
}

// banner shows message at the top of form in a box of class className,
// reusing an existing one, and removes it after the banner timeout.
func (s *Site) banner(form dom.Element, className, message string) {
	box := form.Query("." + className)
	if box == nil {
		box = s.doc.CreateElement("div")
		box.AddClass(className)
		box.SetCSSText(guard.BannerStyle)
		form.Prepend(box)
	}
	box.SetText(message)
	s.after(s.cfg.Limits.BannerTimeout, box.Remove)

	s.log.DebugContext(s.ctx, "form banner shown",
		logger.Selector("."+className),
		slog.String("form", form.ID()),
	)
}
