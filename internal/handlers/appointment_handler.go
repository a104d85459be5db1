package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httpresp"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/middleware"
	ucAppointment "github.com/YigitSelcuk/appoinment-backend-sub000/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC    *ucAppointment.CreateAppointment
	updateUC    *ucAppointment.UpdateAppointment
	cancelUC    *ucAppointment.CancelAppointment
	completeUC  *ucAppointment.CompleteAppointment
	confirmUC   *ucAppointment.ConfirmAppointment
	deleteUC    *ucAppointment.DeleteAppointment
	listUC      *ucAppointment.ListAppointmentsByDate
	conflictsUC *ucAppointment.FindConflicts
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointmentsByDate,
	conflictsUC *ucAppointment.FindConflicts,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		cancelUC:    cancelUC,
		completeUC:  completeUC,
		confirmUC:   confirmUC,
		deleteUC:    deleteUC,
		listUC:      listUC,
		conflictsUC: conflictsUC,
	}
}

// --------- Requests ---------

type AppointmentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`

	Date  string `json:"date" binding:"required"`
	Start string `json:"start_time" binding:"required"`
	End   string `json:"end_time" binding:"required"`

	Visibility    string `json:"visibility"`
	ContactIDs    []uint `json:"contact_ids"`
	SharedUserIDs []uint `json:"shared_user_ids"`

	RemindByEmail bool `json:"remind_by_email"`
	RemindBySMS   bool `json:"remind_by_sms"`

	ReminderOffsetValue int    `json:"reminder_offset_value"`
	ReminderOffsetUnit  string `json:"reminder_offset_unit"`
	DisableReminder     bool   `json:"disable_reminder"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ownerID := c.GetUint(middleware.ContextUserID)

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		OwnerID:             ownerID,
		Title:               req.Title,
		Description:         req.Description,
		Date:                req.Date,
		Start:               req.Start,
		End:                 req.End,
		Visibility:          req.Visibility,
		ContactIDs:          req.ContactIDs,
		SharedUserIDs:       req.SharedUserIDs,
		RemindByEmail:       req.RemindByEmail,
		RemindBySMS:         req.RemindBySMS,
		ReminderOffsetValue: req.ReminderOffsetValue,
		ReminderOffsetUnit:  req.ReminderOffsetUnit,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ownerID := c.GetUint(middleware.ContextUserID)

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID:                  id,
		OwnerID:             ownerID,
		Title:               req.Title,
		Description:         req.Description,
		Date:                req.Date,
		Start:               req.Start,
		End:                 req.End,
		Visibility:          req.Visibility,
		RemindByEmail:       req.RemindByEmail,
		RemindBySMS:         req.RemindBySMS,
		ReminderOffsetValue: req.ReminderOffsetValue,
		ReminderOffsetUnit:  req.ReminderOffsetUnit,
		DisableReminder:     req.DisableReminder,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}

	ownerID := c.GetUint(middleware.ContextUserID)

	ap, err := h.cancelUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}

	ownerID := c.GetUint(middleware.ContextUserID)

	ap, err := h.completeUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}

	ownerID := c.GetUint(middleware.ContextUserID)

	ap, err := h.confirmUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}

	ownerID := c.GetUint(middleware.ContextUserID)

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, id); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	ownerID := c.GetUint(middleware.ContextUserID)

	apps, err := h.listUC.Execute(c.Request.Context(), ownerID, date)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.List(c, apps)
}

// Conflicts is the read-side conflict query, scoped to the calling owner.
func (h *AppointmentHandler) Conflicts(c *gin.Context) {
	ownerID := c.GetUint(middleware.ContextUserID)

	q := domain.ConflictQuery{
		Date:       c.Query("date"),
		Start:      c.Query("start_time"),
		End:        c.Query("end_time"),
		ScopeOwner: ownerID,
	}
	if v := c.Query("exclude_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			q.ExcludeID = uint(id)
		}
	}

	conflicts, err := h.conflictsUC.Execute(c.Request.Context(), q)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.List(c, conflicts)
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return 0, err
	}
	return uint(id), nil
}
