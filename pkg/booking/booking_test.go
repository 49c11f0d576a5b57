package booking_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinicsite/pkg/booking"
)

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newBuilder(t *testing.T, opts ...booking.Option) *booking.Builder {
	t.Helper()
	opts = append([]booking.Option{booking.WithClock(func() time.Time { return fixedNow })}, opts...)
	b, err := booking.NewBuilder("529992010898", opts...)
	require.NoError(t, err)
	return b
}

func decodeText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestNewBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		want   string
		ok     bool
	}{
		{name: "digits", number: "529992010898", want: "529992010898", ok: true},
		{name: "formatted", number: "+52 (999) 201-0898", want: "529992010898", ok: true},
		{name: "too short", number: "12345", ok: false},
		{name: "letters", number: "52999abc0898", ok: false},
		{name: "empty", number: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := booking.NewBuilder(tt.number)
			if !tt.ok {
				assert.ErrorIs(t, err, booking.ErrInvalidNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Number())
		})
	}
}

func TestBuilder_Link(t *testing.T) {
	t.Parallel()

	b := newBuilder(t, booking.WithGreeting("Hola Dra. Gabriela, me gustaría agendar una cita."))
	link, err := b.Link(booking.Request{
		Service: "Consulta de Medicina Interna",
		Name:    "  Ana López ",
		Phone:   "+52 999 123 4567",
		Date:    "2025-03-12",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/529992010898?text="))
	assert.NotContains(t, link, "+", "spaces must be percent encoded")
	assert.NotContains(t, link, " ")

	want := "Hola Dra. Gabriela, me gustaría agendar una cita.\n\n" +
		"*Nombre:* Ana López\n" +
		"*Servicio:* Consulta de Medicina Interna\n" +
		"*Teléfono:* +52 999 123 4567\n" +
		"*Fecha preferente:* 2025-03-12"
	assert.Equal(t, want, decodeText(t, link))
}

func TestBuilder_LinkWithoutDate(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	link, err := b.Link(booking.Request{
		Service: "Chequeo",
		Name:    "Luis",
		Phone:   "9991234567",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(decodeText(t, link), "*Fecha preferente:* Por definir"))
	assert.True(t, strings.HasPrefix(decodeText(t, link), booking.DefaultGreeting))
}

func TestBuilder_Validate(t *testing.T) {
	t.Parallel()

	valid := booking.Request{Service: "Chequeo", Name: "Luis", Phone: "9991234567", Date: "2025-03-10"}

	tests := []struct {
		name   string
		mutate func(r *booking.Request)
		errs   []error
	}{
		{name: "script in name", mutate: func(r *booking.Request) { r.Name = "<script>alert(1)</script>" }, errs: []error{booking.ErrInvalidName}},
		{name: "short phone", mutate: func(r *booking.Request) { r.Phone = "555-1234" }, errs: []error{booking.ErrInvalidPhone}},
		{name: "past date", mutate: func(r *booking.Request) { r.Date = "2025-03-09" }, errs: []error{booking.ErrInvalidDate}},
		{name: "malformed date", mutate: func(r *booking.Request) { r.Date = "12/03/2025" }, errs: []error{booking.ErrInvalidDate}},
		{name: "empty service", mutate: func(r *booking.Request) { r.Service = "<b></b>" }, errs: []error{booking.ErrInvalidService}},
		{
			name: "several fields",
			mutate: func(r *booking.Request) {
				r.Name = "x"
				r.Phone = ""
			},
			errs: []error{booking.ErrInvalidName, booking.ErrInvalidPhone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newBuilder(t)
			r := valid
			tt.mutate(&r)

			bk, err := b.Validate(r)
			require.Error(t, err)
			for _, want := range tt.errs {
				assert.ErrorIs(t, err, want)
			}
			assert.Equal(t, booking.Booking{}, bk)

			link, err := b.Link(r)
			assert.Error(t, err)
			assert.Empty(t, link)
		})
	}
}

func TestBuilder_ValidateKeepsPlainText(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	bk, err := b.Validate(booking.Request{
		Service: `<script>x</script>Dermatología "general"`,
		Name:    "María O'Neil",
		Phone:   "(999) 123-4567",
	})
	require.NoError(t, err)
	assert.Equal(t, "María O'Neil", bk.Name)
	assert.Equal(t, `Dermatología "general"`, bk.Service)
	assert.Equal(t, "(999) 123-4567", bk.Phone)
	assert.Empty(t, bk.Date)
}

func TestContactLink(t *testing.T) {
	t.Parallel()

	link, err := booking.ContactLink("+52 999 201 0898", "Hola, quiero información")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/529992010898?text=Hola%2C%20quiero%20informaci%C3%B3n", link)

	_, err = booking.ContactLink("abc", "")
	assert.ErrorIs(t, err, booking.ErrInvalidNumber)
}

func TestEncode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a%20b%0A%0Ac", booking.Encode("a b\n\nc"))
	assert.Equal(t, "%2B52", booking.Encode("+52"))
}

func TestWithBaseURL(t *testing.T) {
	t.Parallel()
	b := newBuilder(t, booking.WithBaseURL("https://api.whatsapp.com/"))
	assert.True(t, strings.HasPrefix(b.ContactLink(), "https://api.whatsapp.com/529992010898?text="))
}
