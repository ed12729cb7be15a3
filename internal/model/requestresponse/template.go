package requestresponse

import "encoding/json"

// CreateTemplateRequest : тело запроса на создание шаблона расписания
type CreateTemplateRequest struct {
	TeamID int64           `json:"team_id" example:"7"`
	Name   string          `json:"name" example:"Weekly rotation"`
	Data   json.RawMessage `json:"data" swaggertype:"object"`
}

// CreateTemplateResponse : успешный ответ
type CreateTemplateResponse struct {
	Message string `json:"message" example:"Template schedule created"`
	ID      int64  `json:"id" example:"1"`
}

// UpdateTemplateRequest : тело запроса на обновление шаблона
type UpdateTemplateRequest struct {
	ID     int64           `json:"id" example:"1"`
	TeamID int64           `json:"team_id" example:"7"`
	Name   string          `json:"name" example:"Weekly rotation v2"`
	Data   json.RawMessage `json:"data" swaggertype:"object"`
}

// CreateScheduleRequest : создание расписания из шаблона
type CreateScheduleRequest struct {
	StartDate string `json:"startDate" example:"2025-09-01"`
}

// CreateScheduleResponse : успешный ответ
type CreateScheduleResponse struct {
	Message    string `json:"message" example:"Schedule created from template"`
	ScheduleID int64  `json:"scheduleId" example:"3"`
}
