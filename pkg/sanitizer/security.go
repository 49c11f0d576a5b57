package sanitizer

import (
	"html"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	"`", "&#x60;",
	"=", "&#x3D;",
)

// EscapeHTML replaces & < > " ' / ` = with HTML entities.
// Unlike html.EscapeString it also covers the characters that can close an
// unquoted attribute or a template literal.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeHTMLValue escapes v when it is a string and returns "" for any other type.
func EscapeHTMLValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return EscapeHTML(s)
}

// UnescapeHTML unescapes HTML entities.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripScripts removes script blocks, inline on* event handlers (quoted or
// not) and javascript:/vbscript: schemes. data: URIs are renamed to
// data-blocked: so the surrounding text survives but cannot execute.
func StripScripts(s string) string {
	result := scriptBlockRegex.ReplaceAllString(s, "")
	result = quotedHandlerRegex.ReplaceAllString(result, "")
	result = unquotedHandlerRegex.ReplaceAllString(result, "")
	result = javascriptURIRegex.ReplaceAllString(result, "")
	result = vbscriptURIRegex.ReplaceAllString(result, "")
	result = dataURIRegex.ReplaceAllString(result, "data-blocked:")
	return result
}

// ContainsMarkup reports whether s carries an injected markup signature:
// an opening script tag, a javascript: scheme or an inline handler.
func ContainsMarkup(s string) bool {
	return markupSignatureRegex.MatchString(s)
}

// StripTags removes anything that looks like an HTML tag.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// LimitLength truncates input to at most maxLength runes.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength])
}
