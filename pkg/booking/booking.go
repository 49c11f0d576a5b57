package booking

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/clinicsite/pkg/sanitizer"
)

const (
	DefaultBaseURL  = "https://wa.me"
	DefaultGreeting = "Hola, me gustaría agendar una cita."
	DateUndecided   = "Por definir"

	maxServiceLength = 100
)

// Request is the raw form submission.
type Request struct {
	Service string
	Name    string
	Phone   string
	Date    string
}

// Booking is a validated request, safe to embed in a plain-text message.
type Booking struct {
	Service string
	Name    string
	Phone   string
	Date    string // empty when no preference was given
}

// Builder builds deep links for one WhatsApp number.
type Builder struct {
	number   string
	greeting string
	baseURL  string
	now      func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithGreeting sets the first line of the message. Blank values are ignored.
func WithGreeting(greeting string) Option {
	return func(b *Builder) {
		if g := strings.TrimSpace(greeting); g != "" {
			b.greeting = g
		}
	}
}

// WithBaseURL overrides the deep link origin.
func WithBaseURL(base string) Option {
	return func(b *Builder) {
		if base != "" {
			b.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithClock sets the time source used to reject past dates.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBuilder creates a Builder for number, given in international format.
// Formatting characters are removed.
func NewBuilder(number string, opts ...Option) (*Builder, error) {
	digits, err := normalizeNumber(number)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		number:   digits,
		greeting: DefaultGreeting,
		baseURL:  DefaultBaseURL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Number returns the digits-only WhatsApp number.
func (b *Builder) Number() string { return b.number }

// Validate sanitizes every field of r. All failures are joined in the
// returned error.
func (b *Builder) Validate(r Request) (Booking, error) {
	var (
		bk   Booking
		errs []error
		ok   bool
	)

	bk.Service = sanitizer.LimitLength(
		strings.TrimSpace(sanitizer.StripTags(sanitizer.StripScripts(r.Service))),
		maxServiceLength,
	)
	if bk.Service == "" {
		errs = append(errs, ErrInvalidService)
	}

	if bk.Name, ok = sanitizer.CleanName(r.Name); !ok {
		errs = append(errs, ErrInvalidName)
	}

	if bk.Phone, ok = sanitizer.SanitizePhone(strings.TrimSpace(r.Phone)); !ok {
		errs = append(errs, ErrInvalidPhone)
	}
	bk.Phone = strings.TrimSpace(bk.Phone)

	if date := strings.TrimSpace(r.Date); date != "" {
		if bk.Date, ok = sanitizer.SanitizeDate(date, b.now()); !ok {
			errs = append(errs, ErrInvalidDate)
		}
	}

	if len(errs) > 0 {
		return Booking{}, errors.Join(errs...)
	}
	return bk, nil
}

// Message renders the plain-text message for bk.
func (b *Builder) Message(bk Booking) string {
	date := bk.Date
	if date == "" {
		date = DateUndecided
	}

	var sb strings.Builder
	sb.WriteString(b.greeting)
	sb.WriteString("\n\n*Nombre:* ")
	sb.WriteString(bk.Name)
	sb.WriteString("\n*Servicio:* ")
	sb.WriteString(bk.Service)
	sb.WriteString("\n*Teléfono:* ")
	sb.WriteString(bk.Phone)
	sb.WriteString("\n*Fecha preferente:* ")
	sb.WriteString(date)
	return sb.String()
}

// Link validates r and returns the deep link carrying its message.
func (b *Builder) Link(r Request) (string, error) {
	bk, err := b.Validate(r)
	if err != nil {
		return "", err
	}
	return b.link(b.Message(bk)), nil
}

// ContactLink returns a deep link that only carries greeting.
func (b *Builder) ContactLink() string {
	return b.link(b.greeting)
}

func (b *Builder) link(text string) string {
	return b.baseURL + "/" + b.number + "?text=" + Encode(text)
}

// ContactLink returns a wa.me link for number that opens a chat prefilled
// with greeting.
func ContactLink(number, greeting string) (string, error) {
	b, err := NewBuilder(number, WithGreeting(greeting))
	if err != nil {
		return "", err
	}
	return b.ContactLink(), nil
}

// Encode percent-encodes text for the text query parameter, with spaces as %20.
func Encode(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func normalizeNumber(number string) (string, error) {
	if strings.ContainsFunc(number, func(r rune) bool {
		return !strings.ContainsRune("0123456789+-() ", r)
	}) {
		return "", ErrInvalidNumber
	}
	digits := sanitizer.PhoneDigits(number)
	if len(digits) < 10 || len(digits) > 15 {
		return "", ErrInvalidNumber
	}
	return digits, nil
}
