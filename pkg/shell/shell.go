package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Default asset locations under the static mount.
const (
	DefaultWasmURL     = "/static/site.wasm"
	DefaultWasmExecURL = "/static/js/wasm_exec.js"
	DefaultBootURL     = "/static/js/boot.js"
)

// Props describes one rendered page.
type Props struct {
	Lang        string
	Title       string
	Description string
	Stylesheets []string
	// Body is the page markup; the element ids and classes it carries are
	// the roles the behavior layer binds to.
	Body templ.Component

	WasmURL     string
	WasmExecURL string
	BootURL     string
}

func (p Props) withDefaults() Props {
	if p.Lang == "" {
		p.Lang = "es"
	}
	if p.WasmURL == "" {
		p.WasmURL = DefaultWasmURL
	}
	if p.WasmExecURL == "" {
		p.WasmExecURL = DefaultWasmExecURL
	}
	if p.BootURL == "" {
		p.BootURL = DefaultBootURL
	}
	return p
}

// Page returns the shell component for p.
func Page(p Props) templ.Component {
	p = p.withDefaults()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n")
		fmt.Fprintf(&b, `<html lang="%s">`, attr(p.Lang))
		b.WriteString(`<head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, "<title>%s</title>", templ.EscapeString(p.Title))
		if p.Description != "" {
			fmt.Fprintf(&b, `<meta name="description" content="%s">`, attr(p.Description))
		}
		for _, href := range p.Stylesheets {
			fmt.Fprintf(&b, `<link rel="stylesheet" href="%s">`, attr(href))
		}
		fmt.Fprintf(&b, `<script src="%s" defer></script>`, attr(p.WasmExecURL))
		fmt.Fprintf(&b, `<script src="%s" data-wasm="%s" defer></script>`, attr(p.BootURL), attr(p.WasmURL))
		b.WriteString("</head><body>")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if p.Body != nil {
			if err := p.Body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func attr(s string) string { return templ.EscapeString(s) }

// Render renders c to a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
