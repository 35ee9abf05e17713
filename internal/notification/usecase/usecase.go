package usecase

import (
	"context"

	"github.com/shandysiswandi/godo/internal/pkg/config"
	"github.com/shandysiswandi/godo/internal/pkg/instrument"
	"github.com/shandysiswandi/godo/internal/pkg/mail"
	"go.opentelemetry.io/otel/trace"
)

type repoEmail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoEmail repoEmail
	cfg       config.Config
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoEmail  repoEmail
	Config     config.Config
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoEmail: dep.RepoEmail,
		cfg:       dep.Config,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}
