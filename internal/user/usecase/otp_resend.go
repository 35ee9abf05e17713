package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
)

type OTPResendInput struct {
	Email string `validate:"required,email"`
}

// OTPResend invalidates any active passcode and issues a fresh one, so
// the previous code can never verify after a resend.
func (s *Usecase) OTPResend(ctx context.Context, in OTPResendInput) (*OTPRequestOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPResend")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.WrapValidation(err, goerror.CodeUserValidation)
	}

	issued, err := s.otp.ResendCode(ctx, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to reissue otp", "email", in.Email, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeUserStorage)
	}

	expiresIn := int64(issued.ExpiresIn.Seconds())
	if err := s.repoMessaging.PublishOTPIssued(ctx, OTPIssuedEvent{
		Email:            in.Email,
		Code:             issued.Code,
		ExpiresInSeconds: expiresIn,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp issued event", "email", in.Email, "error", err)
	}

	return &OTPRequestOutput{
		Email:            in.Email,
		Code:             issued.Code,
		ExpiresInSeconds: expiresIn,
		EchoCode:         s.cfg.GetString("app.env") != "production",
	}, nil
}
