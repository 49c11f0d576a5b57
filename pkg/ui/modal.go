package ui

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/clinicsite/pkg/booking"
	"github.com/dmitrymomot/clinicsite/pkg/dom"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
)

func (s *Site) initModal() error {
	roles := s.cfg.Roles
	modal, err := s.one("modal", roles.Modal)
	if err != nil {
		return err
	}
	form, err := s.one("booking_form", roles.BookingForm)
	if err != nil {
		return err
	}
	fields := make(map[string]dom.Element, 4)
	for _, f := range [][2]string{
		{"service", roles.Service},
		{"name", roles.Name},
		{"phone", roles.Phone},
		{"date", roles.Date},
	} {
		el, err := s.one(f[0], f[1])
		if err != nil {
			return err
		}
		fields[f[0]] = el
	}

	body := s.doc.Body()
	open := func(ev dom.Event) {
		ev.PreventDefault()
		modal.AddClass(classActive)
		body.SetStyle("overflow", "hidden")
	}
	closeModal := func() {
		modal.RemoveClass(classActive)
		body.SetStyle("overflow", "")
	}

	for _, btn := range s.doc.QueryAll(roles.ModalOpen) {
		s.listen(btn, "click", open)
	}
	if btn := s.doc.Query(roles.ModalClose); btn != nil {
		s.listen(btn, "click", func(dom.Event) { closeModal() })
	}
	s.listen(modal, "click", func(ev dom.Event) {
		t := ev.Target()
		if t != nil && (t.Is(modal) || t.HasClass(roles.ModalBackdropClass)) {
			closeModal()
		}
	})

	s.listen(form, "submit", func(ev dom.Event) {
		// A guard already rejected this submission.
		if ev.DefaultPrevented() {
			return
		}
		ev.PreventDefault()

		link, err := s.booking.Link(booking.Request{
			Service: fields["service"].Value(),
			Name:    fields["name"].Value(),
			Phone:   fields["phone"].Value(),
			Date:    fields["date"].Value(),
		})
		if err != nil {
			s.log.InfoContext(s.ctx, "booking rejected", logger.Feature(FeatureModal), logger.Error(err))
			s.banner(form, roles.BookingErrorClass, s.bookingMessage(err))
			return
		}

		if box := form.Query("." + roles.BookingErrorClass); box != nil {
			box.Remove()
		}
		s.win.Open(link, "_blank")
		s.log.InfoContext(s.ctx, "booking handed off",
			logger.Feature(FeatureModal),
			slog.String("number", s.booking.Number()),
		)
		closeModal()
		form.Reset()
	})
	return nil
}

// bookingMessage picks the user message for the first invalid field.
func (s *Site) bookingMessage(err error) string {
	m := s.cfg.Messages
	switch {
	case errors.Is(err, booking.ErrInvalidName):
		return m.InvalidName
	case errors.Is(err, booking.ErrInvalidPhone):
		return m.InvalidPhone
	case errors.Is(err, booking.ErrInvalidDate):
		return m.InvalidDate
	default:
		return m.InvalidService
	}
}
