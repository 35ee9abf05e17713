package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/pkg/otp"
)

type OTPVerifyInput struct {
	Email   string `validate:"required,email"`
	OTPCode string `validate:"required,len=4,numeric"`
}

type OTPVerifyOutput struct {
	Email string
}

// OTPVerify checks the submitted passcode. A match consumes the code so
// it can never verify twice; a mismatch leaves it active.
func (s *Usecase) OTPVerify(ctx context.Context, in OTPVerifyInput) (*OTPVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.WrapValidation(err, goerror.CodeUserValidation)
	}

	err := s.otp.VerifyCode(ctx, in.Email, in.OTPCode)
	if errors.Is(err, otp.ErrCodeNotFound) {
		return nil, goerror.New(goerror.KindOTPNotFound, goerror.CodeOTPNotFound, "otp not found or expired")
	}
	if errors.Is(err, otp.ErrCodeMismatch) {
		return nil, goerror.New(goerror.KindOTPMismatch, goerror.CodeOTPMismatch, "otp does not match")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to verify otp", "email", in.Email, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeUserStorage)
	}

	return &OTPVerifyOutput{Email: in.Email}, nil
}
