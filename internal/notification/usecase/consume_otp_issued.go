package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/godo/internal/pkg/mail"
)

type ConsumeOTPIssuedInput struct {
	Email            string
	Code             string
	ExpiresInSeconds int64
}

// ConsumeOTPIssued renders and sends the passcode email. Errors are
// logged and returned so the consumer can nack; they never reach the
// user who requested the code.
func (s *Usecase) ConsumeOTPIssued(ctx context.Context, in ConsumeOTPIssuedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOTPIssued")
	defer span.End()

	appName := s.cfg.GetString("app.name")
	expiresMinutes := in.ExpiresInSeconds / 60

	subject := fmt.Sprintf("Your OTP Code - %s", appName)
	body := fmt.Sprintf(`Hello,

Here is the one-time passcode you requested for %s:

    %s

The code expires in %d minutes. It can be used only once, and
requesting a new code invalidates this one.

If you did not request this code, you can safely ignore this email.
`, appName, in.Code, expiresMinutes)

	if err := s.repoEmail.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  subject,
		TextBody: body,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "email", in.Email, "error", err)
		return err
	}

	slog.InfoContext(ctx, "otp email sent", "email", in.Email)
	return nil
}
