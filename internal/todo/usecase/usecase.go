package usecase

import (
	"context"

	"github.com/shandysiswandi/godo/internal/pkg/clock"
	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/pkg/instrument"
	"github.com/shandysiswandi/godo/internal/pkg/jwt"
	"github.com/shandysiswandi/godo/internal/pkg/uid"
	"github.com/shandysiswandi/godo/internal/pkg/validator"
	"github.com/shandysiswandi/godo/internal/todo/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateTodo(ctx context.Context, todo entity.Todo) error
	GetTodoByID(ctx context.Context, id, userID int64) (*entity.Todo, error)
	GetTodoList(ctx context.Context, filter entity.TodoListFilterData) ([]entity.Todo, int64, error)
	UpdateTodo(ctx context.Context, todo entity.Todo) error
	DeleteTodo(ctx context.Context, id, userID int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("todo.usecase").Start(ctx, name)
}

// authenticated returns the claims of the requesting user. The router's
// authentication middleware populates them, so a miss means the route was
// wired as public by mistake.
func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewUnauthorized(goerror.CodeTodoUnauthorized, "authentication required")
	}

	return clm, nil
}
