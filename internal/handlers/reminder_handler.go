package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	remdomain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/reminder"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httpresp"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/reminder"
)

type ReminderHandler struct {
	rems   remdomain.Repository
	engine *reminder.Engine
}

func NewReminderHandler(rems remdomain.Repository, engine *reminder.Engine) *ReminderHandler {
	return &ReminderHandler{rems: rems, engine: engine}
}

func (h *ReminderHandler) ListForAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	rems, err := h.rems.ListForAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list reminders")
		return
	}

	httpresp.List(c, rems)
}

// Resend re-runs delivery for a reminder that already reached a terminal
// state. Operator-triggered only.
func (h *ReminderHandler) Resend(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	state, err := h.engine.Resend(c.Request.Context(), uint(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state})
}
