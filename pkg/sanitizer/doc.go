// Package sanitizer provides the input hygiene helpers used by the booking
// form and the client defense layer.
//
// The helpers fall into two groups:
//
//   - Transformers – EscapeHTML, StripScripts, StripTags and LimitLength always
//     return a string. They never fail; non-string input handed over from
//     JavaScript is treated as empty (see EscapeHTMLValue).
//
//   - Validators – SanitizePhone, SanitizeName, SanitizeDate and SanitizeURL
//     return the normalised value and true, or "" and false when the input is
//     rejected. There is no partial or warning state.
//
// # Usage
//
//	phone, ok := sanitizer.SanitizePhone("+52 999 201 0898")
//	// phone == "+52 999 201 0898", ok == true
//
//	_, ok = sanitizer.SanitizePhone("555-1234")
//	// ok == false: only 7 digits
//
//	name, ok := sanitizer.SanitizeName("María O'Neil")
//	// name == "María O&#x27;Neil" (HTML escaped)
//
//	date, ok := sanitizer.SanitizeDate("2025-03-10", time.Now())
//
// # Error handling
//
// None of the helpers panics or returns an error. Malformed input always
// yields the rejection signal.
//
// The package is stateless; all regular expressions are compiled once in
// regex.go and are safe for concurrent use.
package sanitizer
