package audit

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// EventType defines the category of the audit log.
type EventType string

const (
	EventCheckAccepted EventType = "CHECK_ACCEPTED"
	EventCheckRejected EventType = "CHECK_REJECTED"
	EventCheckFailed   EventType = "CHECK_FAILED"
)

// AuditLogger defines the contract for immutable decision logging.
type AuditLogger interface {
	Log(ctx context.Context, action EventType, id uint64, metadata map[string]string)
}

// JSONAuditLogger writes structured logs to stdout, but with a specific "audit" key
// that can be filtered by log aggregators (Datadog, Splunk, Sentry) to go to a separate index.
type JSONAuditLogger struct {
	logger *slog.Logger
}

func NewJSONAuditLogger() *JSONAuditLogger {
	// Separate handler instance so the audit trail keeps a consistent
	// format independent of the main app logger.
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &JSONAuditLogger{
		logger: slog.New(handler),
	}
}

func (l *JSONAuditLogger) Log(ctx context.Context, action EventType, id uint64, metadata map[string]string) {
	fields := []interface{}{
		slog.String("log_type", "AUDIT_TRAIL"), // Marker for aggregators
		slog.String("decision_id", uuid.NewString()),
		slog.String("action", string(action)),
		slog.Uint64("identifier", id),
		slog.Time("timestamp_utc", time.Now().UTC()),
	}

	for k, v := range metadata {
		fields = append(fields, slog.String("meta_"+k, v))
	}

	l.logger.InfoContext(ctx, "audit_event", fields...)
}

// NopAuditLogger for testing
type NopAuditLogger struct{}

func (NopAuditLogger) Log(ctx context.Context, action EventType, id uint64, metadata map[string]string) {
	// No-op
}
