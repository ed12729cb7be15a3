package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"scheduling-web-server/config"
	"scheduling-web-server/internal/model"
	"scheduling-web-server/internal/util"
)

type TemplateRepository struct {
	*config.Database
}

func NewTemplateRepository(database *config.Database) *TemplateRepository {
	return &TemplateRepository{database}
}

// Create : сохраняет шаблон расписания, возвращает его id
func (r *TemplateRepository) Create(ctx context.Context, template *model.TemplateSchedule) (int64, error) {
	query := `
	INSERT INTO schedule_templates (team_id, name, data)
	VALUES ($1, $2, $3)
	RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, template.TeamID, template.Name, template.Data).Scan(&id)
	if err != nil {
		return 0, util.LogError("[TemplateRepo] ошибка вставки данных в БД", err)
	}

	return id, nil
}

// GetByID : ищет шаблон по id; (nil, nil) если шаблона нет
func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*model.TemplateSchedule, error) {
	query := `SELECT id, team_id, name, data, created_at FROM schedule_templates WHERE id = $1`

	var template model.TemplateSchedule
	err := r.DB.GetContext(ctx, &template, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("[TemplateRepo] ошибка при выполнении запроса", err)
	}
	return &template, nil
}

// List : возвращает все шаблоны
func (r *TemplateRepository) List(ctx context.Context) ([]model.TemplateSchedule, error) {
	query := `SELECT id, team_id, name, data, created_at FROM schedule_templates ORDER BY id`

	var templates []model.TemplateSchedule
	if err := r.DB.SelectContext(ctx, &templates, query); err != nil {
		return nil, util.LogError("[TemplateRepo] не удалось получить список шаблонов", err)
	}
	return templates, nil
}

// GetByTeamID : возвращает шаблоны одной команды
func (r *TemplateRepository) GetByTeamID(ctx context.Context, teamID int64) ([]model.TemplateSchedule, error) {
	query := `SELECT id, team_id, name, data, created_at FROM schedule_templates WHERE team_id = $1 ORDER BY id`

	var templates []model.TemplateSchedule
	if err := r.DB.SelectContext(ctx, &templates, query, teamID); err != nil {
		return nil, util.LogError("[TemplateRepo] не удалось получить шаблоны команды", err)
	}
	return templates, nil
}

// Update : обновляет шаблон целиком
func (r *TemplateRepository) Update(ctx context.Context, template *model.TemplateSchedule) error {
	query := `UPDATE schedule_templates SET team_id = $2, name = $3, data = $4 WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, template.ID, template.TeamID, template.Name, template.Data)
	if err != nil {
		return util.LogError("[TemplateRepo] не удалось обновить шаблон", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[TemplateRepo] не удалось проверить, обновлён ли шаблон", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("[TemplateRepo] шаблон %d не найден", template.ID)
	}

	return nil
}

// Delete : удаляет шаблон по id
func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM schedule_templates WHERE id = $1`

	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		return util.LogError("[TemplateRepo] не удалось удалить шаблон", err)
	}
	return nil
}

// CreateSchedule : создаёт расписание, построенное из шаблона
func (r *TemplateRepository) CreateSchedule(ctx context.Context, schedule *model.Schedule) (int64, error) {
	query := `
	INSERT INTO schedules (template_id, team_id, start_date, data)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		schedule.TemplateID,
		schedule.TeamID,
		schedule.StartDate,
		schedule.Data,
	).Scan(&id)

	if err != nil {
		return 0, util.LogError("[TemplateRepo] не удалось создать расписание", err)
	}

	return id, nil
}
