//go:build js && wasm

package main

import (
	"context"
	"log/slog"
	"syscall/js"

	"github.com/dmitrymomot/clinicsite/internal/bridge"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
)

// securityUtils builds the SecurityUtils global. Rejected input yields null.
func securityUtils(u *bridge.Utils, log *slog.Logger) map[string]any {
	ctx := context.Background()

	fn := func(name string, fallback any, call func([]bridge.Arg) any) js.Func {
		return js.FuncOf(func(_ js.Value, args []js.Value) (result any) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("security util panicked", slog.String("fn", name), slog.Any("panic", r))
					result = fallback
				}
			}()
			return call(toArgs(args))
		})
	}
	str := func(name string, f func([]bridge.Arg) string) js.Func {
		return fn(name, "", func(a []bridge.Arg) any { return f(a) })
	}
	checked := func(name string, f func([]bridge.Arg) (string, bool)) js.Func {
		return fn(name, js.Null(), func(a []bridge.Arg) any {
			if v, ok := f(a); ok {
				return v
			}
			return js.Null()
		})
	}

	log.Debug("security utils published", logger.Component("bridge"))

	return map[string]any{
		"sanitize": map[string]any{
			"escapeHTML":    str("escapeHTML", u.EscapeHTML),
			"stripScripts":  str("stripScripts", u.StripScripts),
			"sanitizePhone": checked("sanitizePhone", u.SanitizePhone),
			"sanitizeName":  checked("sanitizeName", u.SanitizeName),
			"sanitizeDate":  checked("sanitizeDate", u.SanitizeDate),
			"sanitizeURL":   checked("sanitizeURL", u.SanitizeURL),
		},
		"rateLimiter": map[string]any{
			"isAllowed": fn("isAllowed", true, func(a []bridge.Arg) any {
				return u.IsAllowed(ctx, a)
			}),
			"reset": fn("reset", nil, func(a []bridge.Arg) any {
				u.Reset(ctx, a)
				return nil
			}),
		},
	}
}

// toArgs converts script values without calling any accessor that can panic
// on a mismatched type.
func toArgs(values []js.Value) []bridge.Arg {
	out := make([]bridge.Arg, len(values))
	for i, v := range values {
		switch v.Type() {
		case js.TypeUndefined:
			out[i] = bridge.Undefined()
		case js.TypeNull:
			out[i] = bridge.Null()
		case js.TypeString:
			out[i] = bridge.String(v.String())
		case js.TypeNumber:
			out[i] = bridge.Number(v.Float())
		default:
			out[i] = bridge.Arg{Kind: bridge.KindOther}
		}
	}
	return out
}
