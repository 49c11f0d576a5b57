// Package siteconfig holds the typed configuration of the page behaviors:
// the DOM roles each feature binds to, the WhatsApp number and greeting,
// rate limits, user messages and the carousel presentation.
//
// The defaults live in site.yaml, embedded in the binary. Parse overlays a
// document on top of them, so an override only names what it changes:
//
//	cfg, err := siteconfig.Parse([]byte("carousel:\n  mode: paged\n"))
//	if err != nil {
//		return err
//	}
//
// Unknown keys are rejected. Validate reports every problem at once, joined
// with ErrInvalidConfig.
package siteconfig
