package sanitizer

import (
	"net/url"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15

	minNameLength = 2
	maxNameLength = 100

	dateLayout = "2006-01-02"

	// dateTolerance is how far before now a date may start and still be accepted.
	dateTolerance = 24 * time.Hour
)

var allowedURLSchemes = []string{"http", "https", "tel", "mailto"}

// SanitizePhone keeps digits, '+', '-', parentheses and whitespace, and
// accepts the result only when it holds 10 to 15 digits.
func SanitizePhone(phone string) (string, bool) {
	cleaned := phoneDisallowedRegex.ReplaceAllString(phone, "")
	digits := len(nonDigitRegex.ReplaceAllString(cleaned, ""))
	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return "", false
	}
	return cleaned, true
}

// PhoneDigits returns only the digits of phone.
func PhoneDigits(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// CleanName validates a person's name and returns it unescaped, for plain
// text sinks such as a chat message. Markup is removed first, then every
// character outside the allow-list; the trimmed result must be 2 to 100
// characters long.
func CleanName(name string) (string, bool) {
	cleaned := StripTags(StripScripts(name))
	cleaned = strings.TrimSpace(nameDisallowedRegex.ReplaceAllString(cleaned, ""))

	n := utf8.RuneCountInString(cleaned)
	if n < minNameLength || n > maxNameLength {
		return "", false
	}
	return cleaned, true
}

// SanitizeName is CleanName followed by EscapeHTML, for HTML sinks.
func SanitizeName(name string) (string, bool) {
	cleaned, ok := CleanName(name)
	if !ok {
		return "", false
	}
	return EscapeHTML(cleaned), true
}

// SanitizeDate accepts an exact YYYY-MM-DD calendar date whose midnight (in
// now's location) is later than now minus one day. Yesterday and anything
// earlier is rejected; today and later dates are returned unchanged.
func SanitizeDate(date string, now time.Time) (string, bool) {
	if !isoDateRegex.MatchString(date) {
		return "", false
	}

	parsed, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return "", false
	}

	if !parsed.After(now.Add(-dateTolerance)) {
		return "", false
	}
	return date, true
}

// SanitizeURL accepts absolute http, https, tel and mailto URLs and returns
// them normalised: lower-case scheme and host, and "/" as the path of a bare
// http(s) origin.
func SanitizeURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !u.IsAbs() {
		return "", false
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if !slices.Contains(allowedURLSchemes, u.Scheme) {
		return "", false
	}

	if u.Scheme == "http" || u.Scheme == "https" {
		if u.Host == "" {
			return "", false
		}
		u.Host = strings.ToLower(u.Host)
		if u.Path == "" && u.Opaque == "" {
			u.Path = "/"
		}
	} else if u.Opaque == "" && u.Path == "" && u.Host == "" {
		return "", false
	}

	return u.String(), true
}
