// Package guard holds the DOM-free decisions of the page's client defense
// layer: form and click rate limits, the honeypot check, live input
// scrubbing, input length clamping, external link hardening, frame busting
// and event throttling.
//
// Package ui binds these decisions to the document. Everything here is plain
// values and strings so it can be tested without a browser:
//
//	g, err := guard.New(limiter, guard.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	if !g.AllowSubmit(ctx, form.ID()) {
//		// prevent default, show guard.MsgTooManyAttempts
//	}
//
//	if kind, ok := guard.ClassifyHref(href); ok && !g.AllowClick(ctx, kind) {
//		// prevent default, alert guard.MsgTooManyClicks
//	}
//
// Client side limits are a usability measure against accidental repeats and
// naive bots. They are not a security boundary.
package guard
