package verifier

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/badminton-draw-service/internal/logging"
)

// logWithVerifier emits a log entry if logger is non-nil and always includes verifier name.
func logWithVerifier(ctx context.Context, logger *slog.Logger, level slog.Level, verifier string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldVerifier, verifier))
	logger.Log(ctx, level, msg, args...)
}
