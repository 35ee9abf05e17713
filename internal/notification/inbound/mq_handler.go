package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/godo/internal/notification/usecase"
	"github.com/shandysiswandi/godo/internal/pkg/instrument"
	"github.com/shandysiswandi/godo/internal/pkg/messaging"
	"github.com/shandysiswandi/godo/internal/pkg/uid"
	"github.com/shandysiswandi/godo/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) OTPIssuedNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "OTPIssuedNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: otp issued notification", "subject", msg.Subject())

	var payload event.OTPIssuedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		// Poison message, do not redeliver.
		slog.ErrorContext(ctx, "failed to parse message body of otp issued notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeOTPIssued(ctx, usecase.ConsumeOTPIssuedInput{
		Email:            payload.Email,
		Code:             payload.Code,
		ExpiresInSeconds: payload.ExpiresInSeconds,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume otp issued", "email", payload.Email, "error", err)
		return err
	}

	return nil
}
