package auditlog

import (
	"io"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

// newLineHandler returns a JSON handler producing
// {"asctime":...,"message":...,"source":...,"log_type":...,"object":...}.
func newLineHandler(w io.Writer) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.String("asctime", a.Value.Time().Format(domain.AsctimeLayout))
			case slog.LevelKey:
				return slog.Attr{}
			case slog.MessageKey:
				a.Key = "message"
			}
			return a
		},
	})
}
