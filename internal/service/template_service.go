package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"scheduling-web-server/internal/model"
	"scheduling-web-server/internal/ports"
	"scheduling-web-server/internal/util"
)

type TemplateService struct {
	templateRepository ports.TemplateRepository
	cacheRepository    ports.CacheRepository
}

func NewTemplateService(
	templateRepository ports.TemplateRepository,
	cacheRepository ports.CacheRepository,
) *TemplateService {
	return &TemplateService{
		templateRepository: templateRepository,
		cacheRepository:    cacheRepository,
	}
}

// CreateTemplate : создаёт шаблон расписания
func (s *TemplateService) CreateTemplate(ctx context.Context, template *model.TemplateSchedule) (int64, error) {
	id, err := s.templateRepository.Create(ctx, template)
	if err != nil {
		return 0, util.LogError("[TemplateService] не удалось сохранить шаблон в БД", err)
	}

	log.Printf("[TemplateService] шаблон %q успешно создан", template.Name)
	return id, nil
}

// GetTemplate : возвращает шаблон по id, сначала из кэша.
// Ошибки кэша не фатальны: логируются, данные берутся из БД.
func (s *TemplateService) GetTemplate(ctx context.Context, id int64) (*model.TemplateSchedule, error) {
	template, err := s.cacheRepository.GetTemplate(ctx, id)
	if err != nil {
		log.Printf("[TemplateService] ошибка кэширования: %v", err)
	}
	if template != nil {
		return template, nil
	}

	template, err = s.templateRepository.GetByID(ctx, id)
	if err != nil {
		return nil, util.LogError("[TemplateService] ошибка чтения шаблона", err)
	}
	if template == nil {
		return nil, nil
	}

	if err := s.cacheRepository.SetTemplate(ctx, template); err != nil {
		log.Printf("[TemplateService] ошибка кэширования шаблона: %v", err)
	}

	return template, nil
}

// ListTemplates : все шаблоны
func (s *TemplateService) ListTemplates(ctx context.Context) ([]model.TemplateSchedule, error) {
	templates, err := s.templateRepository.List(ctx)
	if err != nil {
		return nil, util.LogError("[TemplateService] не удалось получить список шаблонов", err)
	}
	return templates, nil
}

// ListTemplatesByTeam : шаблоны одной команды
func (s *TemplateService) ListTemplatesByTeam(ctx context.Context, teamID int64) ([]model.TemplateSchedule, error) {
	templates, err := s.templateRepository.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, util.LogError("[TemplateService] не удалось получить шаблоны команды", err)
	}
	return templates, nil
}

// UpdateTemplate : обновляет шаблон и сбрасывает его кэш
func (s *TemplateService) UpdateTemplate(ctx context.Context, template *model.TemplateSchedule) error {
	if err := s.templateRepository.Update(ctx, template); err != nil {
		return util.LogError("[TemplateService] не удалось обновить шаблон", err)
	}

	if err := s.cacheRepository.DeleteTemplate(ctx, template.ID); err != nil {
		log.Printf("[TemplateService] ошибка сброса кэша шаблона: %v", err)
	}

	return nil
}

// DeleteTemplate : удаляет шаблон и сбрасывает его кэш
func (s *TemplateService) DeleteTemplate(ctx context.Context, id int64) error {
	if err := s.templateRepository.Delete(ctx, id); err != nil {
		return util.LogError("[TemplateService] не удалось удалить шаблон", err)
	}

	if err := s.cacheRepository.DeleteTemplate(ctx, id); err != nil {
		log.Printf("[TemplateService] ошибка сброса кэша шаблона: %v", err)
	}

	return nil
}

// CreateScheduleFromTemplate : разворачивает шаблон в расписание на дату
func (s *TemplateService) CreateScheduleFromTemplate(ctx context.Context, templateID int64, startDate time.Time) (int64, error) {
	template, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return 0, err
	}
	if template == nil {
		return 0, fmt.Errorf("[TemplateService] шаблон %d не найден", templateID)
	}

	scheduleID, err := s.templateRepository.CreateSchedule(ctx, &model.Schedule{
		TemplateID: template.ID,
		TeamID:     template.TeamID,
		StartDate:  startDate,
		Data:       template.Data,
	})
	if err != nil {
		return 0, util.LogError("[TemplateService] не удалось создать расписание из шаблона", err)
	}

	return scheduleID, nil
}
