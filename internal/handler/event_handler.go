package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pokecreche/pokecreche-api/internal/models"
	"github.com/pokecreche/pokecreche-api/internal/service"
	appErrors "github.com/pokecreche/pokecreche-api/pkg/errors"
	"github.com/pokecreche/pokecreche-api/pkg/response"
)

type calendarService interface {
	List(ctx context.Context, year, month int, teacherID string) ([]models.CalendarEvent, error)
	Create(ctx context.Context, teacherID string, req service.CreateEventRequest) (string, error)
	Update(ctx context.Context, id, teacherID string, req service.UpdateEventRequest) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Export(ctx context.Context, year, month int, teacherID, format string) ([]byte, string, error)
}

// EventHandler exposes the calendar endpoints. Reads are public; writes
// sit behind the JWT middleware and attribute the event to whatever
// subject id the token carries.
type EventHandler struct {
	service calendarService
}

// NewEventHandler constructs the handler.
func NewEventHandler(svc calendarService) *EventHandler {
	return &EventHandler{service: svc}
}

// List godoc
// @Summary List month events
// @Tags Events
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param teacher_id query string false "Teacher filter"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Fail
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	events, err := h.service.List(c.Request.Context(), year, month, c.Query("teacher_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "events": events})
}

// Create godoc
// @Summary Create or overwrite an event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateEventRequest true "Event payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Fail
// @Failure 401 {object} response.Fail
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "date, title e color são obrigatórios"))
		return
	}

	id, err := h.service.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"success": true, "message": "Evento criado", "id": id})
}

// Update godoc
// @Summary Replace an event by id
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param payload body service.UpdateEventRequest true "Event payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Fail
// @Failure 401 {object} response.Fail
// @Router /api/events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "id, date, title e color são obrigatórios"))
		return
	}

	affected, err := h.service.Update(c.Request.Context(), c.Param("id"), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "Evento atualizado", "affectedRows": affected})
}

// Delete godoc
// @Summary Remove an event by id
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Fail
// @Failure 401 {object} response.Fail
// @Router /api/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	affected, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "Evento removido", "affectedRows": affected})
}

// Export godoc
// @Summary Export month events as CSV or PDF
// @Tags Events
// @Produce text/csv
// @Produce application/pdf
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param teacher_id query string false "Teacher filter"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Fail
// @Router /api/events/export [get]
func (h *EventHandler) Export(c *gin.Context) {
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	data, contentType, err := h.service.Export(c.Request.Context(), year, month, c.Query("teacher_id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("eventos-%04d-%02d.%s", year, month, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

func yearMonthParams(c *gin.Context) (int, int, bool) {
	year, yearErr := strconv.Atoi(c.Query("year"))
	month, monthErr := strconv.Atoi(c.Query("month"))
	if yearErr != nil || monthErr != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Parâmetros year e month (1-12) são obrigatórios"))
		return 0, 0, false
	}
	return year, month, true
}
