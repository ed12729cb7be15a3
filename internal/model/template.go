package model

import (
	"encoding/json"
	"time"
)

// TemplateSchedule : шаблон расписания команды.
// Поле Data хранит структуру смен как есть (jsonb), сервер её не трактует.
type TemplateSchedule struct {
	ID        int64           `db:"id" json:"id"`
	TeamID    int64           `db:"team_id" json:"team_id"`
	Name      string          `db:"name" json:"name"`
	Data      json.RawMessage `db:"data" json:"data"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// Schedule : конкретное расписание, созданное из шаблона на дату
type Schedule struct {
	ID         int64           `db:"id" json:"id"`
	TemplateID int64           `db:"template_id" json:"template_id"`
	TeamID     int64           `db:"team_id" json:"team_id"`
	StartDate  time.Time       `db:"start_date" json:"start_date"`
	Data       json.RawMessage `db:"data" json:"data"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
