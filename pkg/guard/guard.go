package guard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/clinicsite/pkg/logger"
	"github.com/dmitrymomot/clinicsite/pkg/ratelimiter"
	"github.com/dmitrymomot/clinicsite/pkg/sanitizer"
)

// Limits applied by the guards.
const (
	FormMaxAttempts  = 3
	FormWindow       = 30 * time.Second
	ClickMaxAttempts = 5
	ClickWindow      = 60 * time.Second

	SubmitCooldown = 2 * time.Second
	BannerTimeout  = 5 * time.Second

	DefaultMaxLength = 500
	MaxInputLength   = 1000

	anonymousForm = "anonymous-form"
)

// User facing messages.
const (
	MsgTooManyAttempts = "Demasiados intentos. Por favor espera un momento."
	MsgTooManyClicks   = "Demasiados clics. Por favor espera un momento antes de intentar nuevamente."
	MsgFramed          = "Este sitio no puede mostrarse en un iframe."
)

// ClickKind identifies a rate limited outbound link.
type ClickKind string

const (
	ClickPhone    ClickKind = "phone"
	ClickWhatsApp ClickKind = "whatsapp"
)

// Key returns the rate limiter key for k.
func (k ClickKind) Key() string { return "click-" + string(k) }

// Guard applies rate limits and logs suspicious input.
type Guard struct {
	limiter   *ratelimiter.Limiter
	logger    *slog.Logger
	formRule  ratelimiter.Rule
	clickRule ratelimiter.Rule
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.logger = log
		}
	}
}

// WithFormLimit overrides the submission limit per form.
func WithFormLimit(maxAttempts int, window time.Duration) Option {
	return func(g *Guard) {
		g.formRule = ratelimiter.Rule{MaxAttempts: maxAttempts, Window: window}
	}
}

// WithClickLimit overrides the click limit per link kind.
func WithClickLimit(maxAttempts int, window time.Duration) Option {
	return func(g *Guard) {
		g.clickRule = ratelimiter.Rule{MaxAttempts: maxAttempts, Window: window}
	}
}

// New creates a Guard backed by limiter.
func New(limiter *ratelimiter.Limiter, opts ...Option) (*Guard, error) {
	if limiter == nil {
		return nil, ErrLimiterRequired
	}
	g := &Guard{
		limiter:   limiter,
		logger:    slog.Default(),
		formRule:  ratelimiter.Rule{MaxAttempts: FormMaxAttempts, Window: FormWindow},
		clickRule: ratelimiter.Rule{MaxAttempts: ClickMaxAttempts, Window: ClickWindow},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(logger.Component("guard"))
	return g, nil
}

// Limiter returns the underlying rate limiter.
func (g *Guard) Limiter() *ratelimiter.Limiter { return g.limiter }

// FormKey returns the rate limiter key for a form id.
func FormKey(formID string) string {
	if formID == "" {
		formID = anonymousForm
	}
	return "form-" + formID
}

// AllowSubmit records a submission of the form with formID.
func (g *Guard) AllowSubmit(ctx context.Context, formID string) bool {
	return g.limiter.IsAllowed(ctx, FormKey(formID), g.formRule.MaxAttempts, g.formRule.Window)
}

// AllowClick records a click on an outbound link of kind k.
func (g *Guard) AllowClick(ctx context.Context, k ClickKind) bool {
	return g.limiter.IsAllowed(ctx, k.Key(), g.clickRule.MaxAttempts, g.clickRule.Window)
}

// ClassifyHref reports which rate limited link kind href is, if any.
func ClassifyHref(href string) (ClickKind, bool) {
	switch {
	case strings.HasPrefix(href, "tel:"):
		return ClickPhone, true
	case strings.HasPrefix(href, "https://wa.me"):
		return ClickWhatsApp, true
	default:
		return "", false
	}
}

// HoneypotTripped reports whether a bot filled the hidden trap field.
// A tripped honeypot is logged so the submission can be dropped silently.
func (g *Guard) HoneypotTripped(ctx context.Context, formID, value string) bool {
	if value == "" {
		return false
	}
	g.logger.WarnContext(ctx, "honeypot triggered, bot detected",
		slog.String("form", FormKey(formID)),
	)
	return true
}

// ScrubInput strips script vectors from a text field value when markup
// signatures are present. It reports whether the value was changed.
func (g *Guard) ScrubInput(ctx context.Context, field, value string) (string, bool) {
	if !sanitizer.ContainsMarkup(value) {
		return value, false
	}
	g.logger.WarnContext(ctx, "potential xss attempt blocked",
		slog.String("field", field),
	)
	return sanitizer.StripScripts(value), true
}

// IsTextInput reports whether an element with the given tag name and type
// attribute receives live scrubbing.
func IsTextInput(tagName, inputType string) bool {
	if strings.EqualFold(tagName, "textarea") {
		return true
	}
	return strings.EqualFold(tagName, "input") &&
		(inputType == "" || strings.EqualFold(inputType, "text"))
}

// ClampMaxLength returns the maxlength to enforce for a field whose current
// maxlength is n. Unset or excessive limits become DefaultMaxLength.
func ClampMaxLength(n int) int {
	if n <= 0 || n > MaxInputLength {
		return DefaultMaxLength
	}
	return n
}

// HardenRel adds noopener noreferrer to a rel attribute unless noopener is
// already present.
func HardenRel(rel string) string {
	if strings.Contains(rel, "noopener") {
		return rel
	}
	return strings.TrimSpace(rel + " noopener noreferrer")
}
