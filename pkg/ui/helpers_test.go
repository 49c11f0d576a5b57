package ui_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinicsite/pkg/dom/domtest"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
	"github.com/dmitrymomot/clinicsite/pkg/siteconfig"
	"github.com/dmitrymomot/clinicsite/pkg/ui"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type page struct {
	doc   *domtest.Document
	win   *domtest.Window
	clock *clock
	logs  *bytes.Buffer
	site  *ui.Site
}

// advance moves both the wall clock and the window timers forward.
func (p *page) advance(d time.Duration) {
	p.clock.now = p.clock.now.Add(d)
	p.win.Advance(d)
}

func (p *page) el(selector string) *domtest.Element {
	el := p.doc.Find(selector)
	if el == nil {
		panic("fixture has no " + selector)
	}
	return el
}

func fixture() *domtest.Document {
	e := domtest.NewElement
	slide := func(n string) *domtest.Element {
		return e("div").WithClass("testimonial-slide").WithWidth(270).WithAttr("data-n", n)
	}
	return domtest.NewDocument(
		e("header").WithID("header").Append(
			e("button").WithID("mobileMenuBtn").Append(e("i").WithClass("fas", "fa-bars")),
			e("nav").WithID("nav").Append(
				e("a").WithAttr("href", "#servicios").WithClass("nav-servicios"),
				e("a").WithAttr("href", "#").WithClass("nav-top"),
			),
		),
		e("section").WithID("servicios").WithTop(600).Append(
			e("div").WithClass("service-card"),
			e("div").WithClass("service-card"),
			e("a").WithClass("js-open-modal").WithAttr("href", "#agendar"),
		),
		e("section").WithID("faq").Append(
			e("div").WithClass("faq-item").WithID("faq1").Append(e("button").WithClass("faq-question")),
			e("div").WithClass("faq-item").WithID("faq2").Append(e("button").WithClass("faq-question")),
			e("div").WithClass("faq-item").WithID("faq3").Append(e("button").WithClass("faq-question")),
		),
		e("section").WithID("contacto").Append(
			e("a").WithClass("call").WithAttr("href", "tel:+529992010898"),
			e("a").WithClass("whatsapp").WithAttr("href", "https://wa.me/529992010898").WithAttr("target", "_blank"),
			e("a").WithClass("map").WithAttr("href", "https://maps.example").WithAttr("target", "_blank").WithAttr("rel", "noopener"),
		),
		e("div").WithClass("testimonials-slider").Append(
			e("div").WithClass("testimonials-track").Append(slide("1"), slide("2"), slide("3")),
			e("div").WithClass("slider-dots"),
			e("button").WithClass("slider-prev"),
			e("button").WithClass("slider-next"),
		),
		e("div").WithID("bookingModal").Append(
			e("div").WithClass("modal-backdrop"),
			e("div").WithClass("modal-content").Append(
				e("button").WithID("closeModal"),
				e("form").WithID("bookingForm").Append(
					e("select").WithID("service").WithValue("Consulta general"),
					e("input").WithID("name").WithAttr("type", "text").WithAttr("name", "name"),
					e("input").WithID("phone").WithAttr("type", "tel").WithAttr("maxlength", "20"),
					e("input").WithID("date").WithAttr("type", "date"),
					e("textarea").WithID("notes").WithAttr("maxlength", "5000"),
					e("input").WithID("website").WithAttr("type", "text").WithAttr("data-honeypot", ""),
					e("button").WithAttr("type", "submit"),
				),
			),
		),
	)
}

type pageOption func(*siteconfig.Config, *domtest.Window)

func withConfig(fn func(*siteconfig.Config)) pageOption {
	return func(c *siteconfig.Config, _ *domtest.Window) { fn(c) }
}

func withWindow(fn func(*domtest.Window)) pageOption {
	return func(_ *siteconfig.Config, w *domtest.Window) { fn(w) }
}

func newPageFrom(t *testing.T, doc *domtest.Document, opts ...pageOption) *page {
	t.Helper()

	cfg := siteconfig.Default()
	win := domtest.NewWindow()
	for _, opt := range opts {
		opt(&cfg, win)
	}

	p := &page{
		doc:   doc,
		win:   win,
		clock: &clock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		logs:  &bytes.Buffer{},
	}
	log := logger.New(
		logger.WithTextFormatter(),
		logger.WithLevel(slog.LevelDebug),
		logger.WithOutput(p.logs),
	)

	site, err := ui.New(doc, win, cfg, ui.WithLogger(log), ui.WithClock(p.clock.Now))
	require.NoError(t, err)
	require.NoError(t, site.Init(context.Background()))
	p.site = site
	t.Cleanup(site.Close)
	return p
}

func newPage(t *testing.T, opts ...pageOption) *page {
	t.Helper()
	return newPageFrom(t, fixture(), opts...)
}
