package mailer

import (
	"context"

	"go.uber.org/zap"
)

// NoopSender logs sends without delivering anything
type NoopSender struct {
	Log *zap.Logger
}

func (s *NoopSender) Send(_ context.Context, to, subject, _ string) error {
	if s.Log != nil {
		s.Log.Info("noop email send", zap.String("to", to), zap.String("subject", subject))
	}
	return nil
}
