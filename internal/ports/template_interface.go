package ports

import (
	"context"
	"time"

	"scheduling-web-server/internal/model"
)

// TemplateRepository : SQL слой шаблонов расписаний
type TemplateRepository interface {
	Create(ctx context.Context, template *model.TemplateSchedule) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.TemplateSchedule, error)
	List(ctx context.Context) ([]model.TemplateSchedule, error)
	GetByTeamID(ctx context.Context, teamID int64) ([]model.TemplateSchedule, error)
	Update(ctx context.Context, template *model.TemplateSchedule) error
	Delete(ctx context.Context, id int64) error
	CreateSchedule(ctx context.Context, schedule *model.Schedule) (int64, error)
}

type TemplateService interface {
	CreateTemplate(ctx context.Context, template *model.TemplateSchedule) (int64, error)
	GetTemplate(ctx context.Context, id int64) (*model.TemplateSchedule, error)
	ListTemplates(ctx context.Context) ([]model.TemplateSchedule, error)
	ListTemplatesByTeam(ctx context.Context, teamID int64) ([]model.TemplateSchedule, error)
	UpdateTemplate(ctx context.Context, template *model.TemplateSchedule) error
	DeleteTemplate(ctx context.Context, id int64) error
	CreateScheduleFromTemplate(ctx context.Context, templateID int64, startDate time.Time) (int64, error)
}
