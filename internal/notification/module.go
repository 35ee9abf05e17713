// Package notification delivers OTP emails by consuming issuance events
// from the broker.
package notification

import (
	"context"

	"github.com/shandysiswandi/godo/internal/notification/inbound"
	"github.com/shandysiswandi/godo/internal/notification/outbound/email"
	"github.com/shandysiswandi/godo/internal/notification/usecase"
	"github.com/shandysiswandi/godo/internal/pkg/config"
	"github.com/shandysiswandi/godo/internal/pkg/goroutine"
	"github.com/shandysiswandi/godo/internal/pkg/instrument"
	"github.com/shandysiswandi/godo/internal/pkg/mail"
	"github.com/shandysiswandi/godo/internal/pkg/messaging"
	"github.com/shandysiswandi/godo/internal/pkg/uid"
	"github.com/shandysiswandi/godo/internal/pkg/validator"
)

type Dependency struct {
	Ctx        context.Context            `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoEmail:  repoMail,
		Config:     dep.Config,
		Instrument: dep.Instrument,
	})

	inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)

	return nil
}
