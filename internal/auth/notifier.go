package auth

import (
	"context"
	"time"

	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
)

// Notifier delivers password reset links out of band.
type Notifier interface {
	SendPasswordReset(ctx context.Context, email, link string, expires time.Time) error
}

// LogNotifier writes the reset link to the request log instead of mailing it.
type LogNotifier struct{}

func (LogNotifier) SendPasswordReset(ctx context.Context, email, link string, expires time.Time) error {
	logging.FromContext(ctx).Info("password reset requested",
		"email", email,
		"link", link,
		"expires_at", expires.Format(time.RFC3339),
	)
	return nil
}
