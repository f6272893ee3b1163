package audit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/staffdir/user-directory/internal/core/ports"
)

// LogSink writes audit events to the structured log. It is the sink of last
// resort when no Mongo database is configured.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Record(_ context.Context, event ports.AuthEventInput) error {
	entry := s.log.Info().
		Str("username", event.Username).
		Str("outcome", event.Outcome).
		Str("remote_ip", event.RemoteIP).
		Time("timestamp", event.Timestamp)
	if event.UserID != 0 {
		entry = entry.Int("user_id", event.UserID)
	}
	entry.Msg("login attempt")
	return nil
}
