package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/clinicsite/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor that adds request_id.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		return logger.RequestID(id), id != ""
	}
}
