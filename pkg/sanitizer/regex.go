package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Script removal
	scriptBlockRegex     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	quotedHandlerRegex   = regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`)
	unquotedHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=\s*[^\s>]+`)
	javascriptURIRegex   = regexp.MustCompile(`(?i)javascript:`)
	vbscriptURIRegex     = regexp.MustCompile(`(?i)vbscript:`)
	dataURIRegex         = regexp.MustCompile(`(?i)data:`)

	// Live input scrubbing trigger
	markupSignatureRegex = regexp.MustCompile(`(?i)<script|javascript:|on\w+=`)

	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Phone and numeric extraction
	phoneDisallowedRegex = regexp.MustCompile(`[^\d+\-\s()]`)
	nonDigitRegex        = regexp.MustCompile(`\D`)

	// Names: Latin letters, Spanish accented letters, whitespace, hyphen, apostrophe
	nameDisallowedRegex = regexp.MustCompile(`[^a-zA-ZáéíóúüñÁÉÍÓÚÜÑ\s\-']`)

	// Dates
	isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)
