package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
)

type OTPRequestInput struct {
	Email string `validate:"required,email"`
}

type OTPRequestOutput struct {
	Email string
	// Code and ExpiresInSeconds are echoed to the caller only outside
	// production, for development and testing without a mailbox.
	Code             string
	ExpiresInSeconds int64
	EchoCode         bool
}

// OTPRequest issues a one-time passcode for the email address. Issuing
// replaces any previously active code. The passcode is delivered by the
// notification module, which consumes the published event.
func (s *Usecase) OTPRequest(ctx context.Context, in OTPRequestInput) (*OTPRequestOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPRequest")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.WrapValidation(err, goerror.CodeUserValidation)
	}

	issued, err := s.otp.RequestCode(ctx, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue otp", "email", in.Email, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeUserStorage)
	}

	expiresIn := int64(issued.ExpiresIn.Seconds())
	if err := s.repoMessaging.PublishOTPIssued(ctx, OTPIssuedEvent{
		Email:            in.Email,
		Code:             issued.Code,
		ExpiresInSeconds: expiresIn,
	}); err != nil {
		// Delivery is best-effort; the code is already active and the
		// caller can resend.
		slog.ErrorContext(ctx, "failed to publish otp issued event", "email", in.Email, "error", err)
	}

	return &OTPRequestOutput{
		Email:            in.Email,
		Code:             issued.Code,
		ExpiresInSeconds: expiresIn,
		EchoCode:         s.cfg.GetString("app.env") != "production",
	}, nil
}
