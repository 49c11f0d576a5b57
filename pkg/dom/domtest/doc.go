// Package domtest is an in-memory implementation of package dom for tests.
//
// Build a tree with NewElement and the With helpers, mount it with
// NewDocument, and drive it with Click, Input, Submit, Fire and the Window
// helpers (Scroll, Resize, Advance, RunFrame, Intersect):
//
//	doc := domtest.NewDocument(
//		domtest.NewElement("button").WithID("mobileMenuBtn").Append(
//			domtest.NewElement("i").WithClass("fas", "fa-bars"),
//		),
//		domtest.NewElement("nav").WithID("nav"),
//	)
//	win := domtest.NewWindow()
//
// Selectors support tag, #id, .class, [attr], [attr="v"] and [attr^="v"]
// compounds, descendant combinators and comma separated lists. Anything else
// panics, which surfaces typos in test fixtures immediately.
//
// Time is virtual: timeouts only run from Advance and animation frames only
// from RunFrame.
package domtest
