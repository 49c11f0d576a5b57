package bridge_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinicsite/internal/bridge"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
	"github.com/dmitrymomot/clinicsite/pkg/ratelimiter"
	"github.com/dmitrymomot/clinicsite/pkg/sanitizer"
)

var start = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newUtils(t *testing.T) (*bridge.Utils, *clock) {
	t.Helper()
	c := &clock{now: start}
	l, err := ratelimiter.New(ratelimiter.NewMemoryStore(),
		ratelimiter.WithClock(c.Now),
		ratelimiter.WithLogger(logger.Discard()),
	)
	require.NoError(t, err)
	u, err := bridge.New(l, bridge.WithClock(c.Now))
	require.NoError(t, err)
	return u, c
}

func args(a ...bridge.Arg) []bridge.Arg { return a }

func TestNew(t *testing.T) {
	t.Parallel()
	_, err := bridge.New(nil)
	assert.ErrorIs(t, err, bridge.ErrNoLimiter)
}

func TestUtils_Escapers(t *testing.T) {
	t.Parallel()
	u, _ := newUtils(t)

	tests := []struct {
		name   string
		in     []bridge.Arg
		escape string
		strip  string
	}{
		{name: "string", in: args(bridge.String("<i>")), escape: "&lt;i&gt;", strip: sanitizer.StripScripts("<i>")},
		{name: "script block", in: args(bridge.String("<script>x</script>ok")), escape: sanitizer.EscapeHTML("<script>x</script>ok"), strip: "ok"},
		{name: "no arguments", in: nil},
		{name: "undefined", in: args(bridge.Undefined())},
		{name: "null", in: args(bridge.Null())},
		{name: "number", in: args(bridge.Number(5))},
		{name: "object", in: args(bridge.Arg{Kind: bridge.KindOther})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.escape, u.EscapeHTML(tt.in))
			assert.Equal(t, tt.strip, u.StripScripts(tt.in))
		})
	}
}

func TestUtils_Validators(t *testing.T) {
	t.Parallel()
	u, _ := newUtils(t)

	validators := map[string]func([]bridge.Arg) (string, bool){
		"phone": u.SanitizePhone,
		"name":  u.SanitizeName,
		"date":  u.SanitizeDate,
		"url":   u.SanitizeURL,
	}
	rejected := map[string][]bridge.Arg{
		"no arguments": nil,
		"undefined":    args(bridge.Undefined()),
		"null":         args(bridge.Null()),
		"number":       args(bridge.Number(5551234567890)),
	}

	for vname, fn := range validators {
		for aname, in := range rejected {
			t.Run(vname+" "+aname, func(t *testing.T) {
				t.Parallel()
				got, ok := fn(in)
				assert.False(t, ok)
				assert.Empty(t, got)
			})
		}
	}

	t.Run("strings pass through", func(t *testing.T) {
		t.Parallel()
		got, ok := u.SanitizePhone(args(bridge.String("+52 999 201 0898")))
		assert.True(t, ok)
		assert.Equal(t, "+52 999 201 0898", got)

		got, ok = u.SanitizeName(args(bridge.String("Ana López")))
		assert.True(t, ok)
		assert.Equal(t, "Ana López", got)

		_, ok = u.SanitizeDate(args(bridge.String("2025-03-09")))
		assert.False(t, ok)
		got, ok = u.SanitizeDate(args(bridge.String("2025-03-10")))
		assert.True(t, ok)
		assert.Equal(t, "2025-03-10", got)

		got, ok = u.SanitizeURL(args(bridge.String("HTTPS://wa.me/529992010898")))
		assert.True(t, ok)
		assert.Equal(t, "https://wa.me/529992010898", got)
	})
}

func TestUtils_IsAllowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	budget := func(t *testing.T, u *bridge.Utils, in []bridge.Arg) int {
		t.Helper()
		allowed := 0
		for range 10 {
			if u.IsAllowed(ctx, in) {
				allowed++
			}
		}
		return allowed
	}

	tests := []struct {
		name     string
		in       []bridge.Arg
		expected int
	}{
		{name: "key only uses defaults", in: args(bridge.String("k")), expected: ratelimiter.DefaultMaxAttempts},
		{name: "no arguments", in: nil, expected: ratelimiter.DefaultMaxAttempts},
		{name: "undefined limit", in: args(bridge.String("k"), bridge.Undefined(), bridge.Number(1000)), expected: ratelimiter.DefaultMaxAttempts},
		{name: "string limit", in: args(bridge.String("k"), bridge.String("3"), bridge.Number(1000)), expected: ratelimiter.DefaultMaxAttempts},
		{name: "NaN limit", in: args(bridge.String("k"), bridge.Number(math.NaN())), expected: ratelimiter.DefaultMaxAttempts},
		{name: "infinite limit", in: args(bridge.String("k"), bridge.Number(math.Inf(1))), expected: ratelimiter.DefaultMaxAttempts},
		{name: "negative limit", in: args(bridge.String("k"), bridge.Number(-2)), expected: ratelimiter.DefaultMaxAttempts},
		{name: "explicit limit", in: args(bridge.String("k"), bridge.Number(3), bridge.Number(1000)), expected: 3},
		{name: "fractional limit truncates", in: args(bridge.String("k"), bridge.Number(2.9)), expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u, _ := newUtils(t)
			assert.Equal(t, tt.expected, budget(t, u, tt.in))
		})
	}
}

func TestUtils_DefaultWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	u, c := newUtils(t)
	key := args(bridge.String("contact"))

	for range ratelimiter.DefaultMaxAttempts {
		require.True(t, u.IsAllowed(ctx, key))
	}
	assert.False(t, u.IsAllowed(ctx, key))

	c.now = c.now.Add(ratelimiter.DefaultWindow - time.Second)
	assert.False(t, u.IsAllowed(ctx, key))

	u.Reset(ctx, key)
	assert.True(t, u.IsAllowed(ctx, key))
}

func TestUtils_Reset_IgnoresBadArguments(t *testing.T) {
	t.Parallel()
	u, _ := newUtils(t)
	assert.NotPanics(t, func() {
		u.Reset(context.Background(), nil)
		u.Reset(context.Background(), args(bridge.Number(1)))
	})
}
