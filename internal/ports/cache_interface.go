package ports

import (
	"context"

	"scheduling-web-server/internal/model"
)

// CacheRepository : Redis слой
type CacheRepository interface {
	SetTemplate(ctx context.Context, template *model.TemplateSchedule) error
	GetTemplate(ctx context.Context, id int64) (*model.TemplateSchedule, error)
	DeleteTemplate(ctx context.Context, id int64) error
}
