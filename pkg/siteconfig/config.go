package siteconfig

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/clinicsite/pkg/booking"
	"github.com/dmitrymomot/clinicsite/pkg/carousel"
)

//go:embed site.yaml
var defaultDocument []byte

// Config is the complete page configuration.
type Config struct {
	Locale   string   `yaml:"locale"`
	WhatsApp WhatsApp `yaml:"whatsapp"`
	Carousel Carousel `yaml:"carousel"`
	Limits   Limits   `yaml:"limits"`
	Header   Header   `yaml:"header"`
	Scroll   Scroll   `yaml:"scroll"`
	Reveal   Reveal   `yaml:"reveal"`
	Messages Messages `yaml:"messages"`
	Roles    Roles    `yaml:"roles"`
}

type WhatsApp struct {
	Number   string `yaml:"number"`
	Greeting string `yaml:"greeting"`
}

type Carousel struct {
	Mode           string        `yaml:"mode"`
	Interval       time.Duration `yaml:"interval"`
	SwipeThreshold float64       `yaml:"swipe_threshold"`
	// SettleDelay is how long after start the slide width is measured again.
	SettleDelay time.Duration `yaml:"settle_delay"`
}

// Limit is a rate limit: at most MaxAttempts per Window.
type Limit struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Window      time.Duration `yaml:"window"`
}

type Limits struct {
	Form           Limit         `yaml:"form"`
	Click          Limit         `yaml:"click"`
	SubmitCooldown time.Duration `yaml:"submit_cooldown"`
	BannerTimeout  time.Duration `yaml:"banner_timeout"`
}

type Header struct {
	ScrollThreshold float64 `yaml:"scroll_threshold"`
}

type Scroll struct {
	Offset float64 `yaml:"offset"`
}

type Reveal struct {
	Threshold  float64 `yaml:"threshold"`
	RootMargin string  `yaml:"root_margin"`
}

type Messages struct {
	TooManyAttempts string `yaml:"too_many_attempts"`
	TooManyClicks   string `yaml:"too_many_clicks"`
	Framed          string `yaml:"framed"`
	InvalidName     string `yaml:"invalid_name"`
	InvalidPhone    string `yaml:"invalid_phone"`
	InvalidDate     string `yaml:"invalid_date"`
	InvalidService  string `yaml:"invalid_service"`
}

// Roles maps each element role to a CSS selector. Fields ending in Class
// hold a bare class name instead.
type Roles struct {
	MenuButton         string `yaml:"menu_button"`
	MenuIcon           string `yaml:"menu_icon"`
	Nav                string `yaml:"nav"`
	Header             string `yaml:"header"`
	FAQItem            string `yaml:"faq_item"`
	FAQQuestion        string `yaml:"faq_question"`
	Anchors            string `yaml:"anchors"`
	Reveal             string `yaml:"reveal"`
	Modal              string `yaml:"modal"`
	ModalOpen          string `yaml:"modal_open"`
	ModalClose         string `yaml:"modal_close"`
	ModalBackdropClass string `yaml:"modal_backdrop_class"`
	BookingForm        string `yaml:"booking_form"`
	Service            string `yaml:"service"`
	Name               string `yaml:"name"`
	Phone              string `yaml:"phone"`
	Date               string `yaml:"date"`
	BookingErrorClass  string `yaml:"booking_error_class"`
	Slider             string `yaml:"slider"`
	Track              string `yaml:"track"`
	Slide              string `yaml:"slide"`
	Dots               string `yaml:"dots"`
	DotClass           string `yaml:"dot_class"`
	Prev               string `yaml:"prev"`
	Next               string `yaml:"next"`
	Forms              string `yaml:"forms"`
	FormFields         string `yaml:"form_fields"`
	Honeypot           string `yaml:"honeypot"`
	SubmitButtons      string `yaml:"submit_buttons"`
	ClickTargets       string `yaml:"click_targets"`
	ExternalLinks      string `yaml:"external_links"`
	SecurityErrorClass string `yaml:"security_error_class"`
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := decode(defaultDocument, &cfg); err != nil {
		panic(fmt.Sprintf("siteconfig: embedded site.yaml: %v", err))
	}
	return cfg
}

// Parse overlays data on the embedded defaults and validates the result.
// Empty data yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrDecode, err)
	}
	return Parse(data)
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

// Validate checks every field and returns all problems joined with
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if _, err := language.Parse(c.Locale); err != nil {
		add("locale %q: %w", c.Locale, err)
	}
	if _, err := booking.NewBuilder(c.WhatsApp.Number); err != nil {
		add("whatsapp.number %q: %w", c.WhatsApp.Number, err)
	}
	if _, err := carousel.ParseMode(c.Carousel.Mode); err != nil {
		add("carousel.mode: %w", err)
	}
	if c.Carousel.Interval <= 0 {
		add("carousel.interval must be positive")
	}
	if c.Carousel.SwipeThreshold <= 0 {
		add("carousel.swipe_threshold must be positive")
	}
	if c.Carousel.SettleDelay < 0 {
		add("carousel.settle_delay must not be negative")
	}
	if l := c.Limits.Form; l.MaxAttempts <= 0 || l.Window <= 0 {
		add("limits.form needs positive max_attempts and window")
	}
	if l := c.Limits.Click; l.MaxAttempts <= 0 || l.Window <= 0 {
		add("limits.click needs positive max_attempts and window")
	}
	if c.Limits.SubmitCooldown <= 0 || c.Limits.BannerTimeout <= 0 {
		add("limits.submit_cooldown and limits.banner_timeout must be positive")
	}
	if c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1 {
		add("reveal.threshold must be within [0, 1]")
	}
	for _, field := range emptyFields(c.Messages) {
		add("messages.%s is required", field)
	}
	for _, field := range emptyFields(c.Roles) {
		add("roles.%s is required", field)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// Tag returns the parsed locale, falling back to Spanish.
func (c Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// Lang returns the BCP 47 form of the locale for the html lang attribute.
func (c Config) Lang() string { return c.Tag().String() }

// Presentation returns the carousel variant.
func (c Config) Presentation() carousel.Presentation {
	p, err := carousel.ParseMode(c.Carousel.Mode)
	if err != nil {
		return carousel.PresentationContinuous
	}
	return p
}

// emptyFields lists the yaml names of the empty string fields of v.
func emptyFields(v any) []string {
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	var out []string
	for i := range rt.NumField() {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			out = append(out, rt.Field(i).Tag.Get("yaml"))
		}
	}
	return out
}
