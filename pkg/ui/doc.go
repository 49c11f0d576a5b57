// Package ui binds the page behaviors to the document: mobile menu, header
// scroll styling, FAQ accordion, smooth in-page scrolling, reveal on
// intersection, the booking modal with its WhatsApp handoff, the testimonial
// carousel and the client defense layer.
//
// A Site owns every listener, timer and animation frame it creates:
//
//	site, err := ui.New(doc, win, siteconfig.Default(), ui.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	site.Init(ctx)
//	defer site.Close()
//
// Features start independently. A feature whose elements are missing from
// the document is skipped with a warning, and a feature that fails or panics
// is logged without stopping the others. Status reports the outcome per
// feature.
package ui
