package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"scheduling-web-server/internal/model"
	"scheduling-web-server/internal/model/requestresponse"
	"scheduling-web-server/internal/ports"
	"scheduling-web-server/internal/util"
)

type TemplateHandler struct {
	templateService ports.TemplateService
}

func NewTemplateHandler(templateService ports.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// CreateTemplate godoc
// @Summary Создание шаблона расписания
// @Tags Templates
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateTemplateRequest true "Тело запроса"
// @Success 200 {object} requestresponse.CreateTemplateResponse
// @Failure 400 {object} requestresponse.MessageResponse
// @Security ApiKeyAuth
// @Router /api/templates [post]
func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req requestresponse.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.SendMessage(w, http.StatusBadRequest, "Failed to create template schedule")
		return
	}

	id, err := h.templateService.CreateTemplate(ctx, &model.TemplateSchedule{
		TeamID: req.TeamID,
		Name:   req.Name,
		Data:   req.Data,
	})
	if err != nil {
		log.Println(err)
		util.SendMessage(w, http.StatusBadRequest, "Failed to create template schedule")
		return
	}

	util.SendJSON(w, http.StatusOK, requestresponse.CreateTemplateResponse{
		Message: "Template schedule created",
		ID:      id,
	})
}

// GetTemplate godoc
// @Summary Получение шаблона по id
// @Tags Templates
// @Produce json
// @Param id path int true "ID шаблона"
// @Success 200 {object} model.TemplateSchedule
// @Failure 404 {object} requestresponse.MessageResponse
// @Security ApiKeyAuth
// @Router /api/templates/{id} [get]
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		util.SendMessage(w, http.StatusNotFound, "Template schedule not found")
		return
	}

	template, err := h.templateService.GetTemplate(ctx, id)
	if err != nil {
		log.Println(err)
		util.SendMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if template == nil {
		util.SendMessage(w, http.StatusNotFound, "Template schedule not found")
		return
	}

	util.SendJSON(w, http.StatusOK, template)
}

// ListTemplates godoc
// @Summary Список всех шаблонов
// @Tags Templates
// @Produce json
// @Success 200 {array} model.TemplateSchedule
// @Failure 404 {object} requestresponse.MessageResponse
// @Security ApiKeyAuth
// @Router /api/templates [get]
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templates, err := h.templateService.ListTemplates(ctx)
	if err != nil {
		log.Println(err)
		util.SendMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(templates) == 0 {
		util.SendMessage(w, http.StatusNotFound, "No template schedules exist")
		return
	}

	util.SendJSON(w, http.StatusOK, templates)
}

// ListTemplatesByTeam godoc
// @Summary Шаблоны команды
// @Tags Templates
// @Produce json
// @Param teamId path int true "ID команды"
// @Success 200 {array} model.TemplateSchedule
// @Failure 404 {object} requestresponse.MessageResponse
// @Security ApiKeyAuth
// @Router /api/templates/team/{teamId} [get]
func (h *TemplateHandler) ListTemplatesByTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	teamID, err := strconv.ParseInt(chi.URLParam(r, "teamId"), 10, 64)
	if err != nil {
		util.SendMessage(w, http.StatusNotFound, "No template schedules found for this team")
		return
	}

	templates, err := h.templateService.ListTemplatesByTeam(ctx, teamID)
	if err != nil {
		log.Println(err)
		util.SendMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(templates) == 0 {
		util.SendMessage(w, http.StatusNotFound, "No template schedules found for this team")
		return
	}

	util.SendJSON(w, http.StatusOK, templates)
}

// UpdateTemplate godoc
// @Summary Обновление шаблона
// @Tags Templates
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateTemplateRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Security ApiKeyAuth
// @Router /api/templates [put]
func (h *TemplateHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req requestresponse.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.SendMessage(w, http.StatusBadRequest, "Could not update template schedule")
		return
	}

	existing, err := h.templateService.GetTemplate(ctx, req.ID)
	if err != nil {
		log.Println(err)
		util.SendMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		util.SendMessage(w, http.StatusNotFound, "Template schedule not found")
		return
	}

	updated := *existing
	if req.TeamID != 0 {
		updated.TeamID = req.TeamID
	}
	if req.Name != "" {
		updated.Name = req.Name
	}
	if len(req.Data) > 0 {
		updated.Data = req.Data
	}

	if err := h.templateService.UpdateTemplate(ctx, &updated); err != nil {
		log.Println(err)
		util.SendMessage(w, http.StatusBadRequest, "Could not update template schedule")
		return
	}

	util.SendMessage(w, http.StatusOK, "Template schedule updated")
}

// DeleteTemplate godoc
// @Summary Удаление шаблона
// @Tags Templates
// @Produce json
// @Param id path int true "ID шаблона"
// @Success 200 {object} requestresponse.MessageResponse
// @Security ApiKeyAuth
// @Router /api/templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		util.SendMessage(w, http.StatusNotFound, "Template schedule not found")
		return
	}

	if err := h.templateService.DeleteTemplate(ctx, id); err != nil {
		log.Println(err)
		util.SendMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	util.SendMessage(w, http.StatusOK, "Template schedule deleted")
}

// CreateScheduleFromTemplate godoc
// @Summary Создание расписания из шаблона
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path int true "ID шаблона"
// @Param body body requestresponse.CreateScheduleRequest true "Дата начала"
// @Success 200 {object} requestresponse.CreateScheduleResponse
// @Failure 400 {object} requestresponse.MessageResponse
// @Security ApiKeyAuth
// @Router /api/templates/{id}/schedule [post]
func (h *TemplateHandler) CreateScheduleFromTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		util.SendMessage(w, http.StatusBadRequest, "Failed to create schedule from template")
		return
	}

	var req requestresponse.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.SendMessage(w, http.StatusBadRequest, "Failed to create schedule from template")
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		util.SendMessage(w, http.StatusBadRequest, "Failed to create schedule from template")
		return
	}

	scheduleID, err := h.templateService.CreateScheduleFromTemplate(ctx, id, startDate)
	if err != nil {
		log.Println(err)
		util.SendMessage(w, http.StatusBadRequest, "Failed to create schedule from template")
		return
	}

	util.SendJSON(w, http.StatusOK, requestresponse.CreateScheduleResponse{
		Message:    "Schedule created from template",
		ScheduleID: scheduleID,
	})
}
