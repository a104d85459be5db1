package appointment

import (
	"context"
	"fmt"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/audit"
	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/realtime"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/reminder"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	ID      uint
	OwnerID uint

	Title       string
	Description string

	Date  string
	Start string
	End   string

	Visibility string

	RemindByEmail bool
	RemindBySMS   bool

	// Zero offset value leaves reminders untouched unless DisableReminder
	// is set.
	ReminderOffsetValue int
	ReminderOffsetUnit  string
	DisableReminder     bool
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo      domain.Repository
	conflicts *FindConflicts
	scheduler *reminder.Scheduler
	audit     *audit.Dispatcher
	rt        *realtime.Publisher
}

func NewUpdateAppointment(
	repo domain.Repository,
	conflicts *FindConflicts,
	scheduler *reminder.Scheduler,
	auditDisp *audit.Dispatcher,
	rt *realtime.Publisher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:      repo,
		conflicts: conflicts,
		scheduler: scheduler,
		audit:     auditDisp,
		rt:        rt,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetForOwner(ctx, in.ID, in.OwnerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if st := domain.Status(ap.Status); st == domain.StatusCancelled || st == domain.StatusCompleted {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if err := validateInterval(in.Date, in.Start, in.End); err != nil {
		return nil, err
	}

	// Re-run the conflict check against everyone but ourselves; an
	// appointment must never conflict with its own slot.
	clashes, err := uc.conflicts.Execute(ctx, domain.ConflictQuery{
		Date:      in.Date,
		Start:     in.Start,
		End:       in.End,
		ExcludeID: ap.ID,
	})
	if err != nil {
		return nil, err
	}
	if len(clashes) > 0 {
		return nil, &domain.ConflictError{Conflicts: clashes}
	}

	rescheduled := ap.Date != in.Date || ap.StartTime != in.Start || ap.EndTime != in.End

	ap.Title = in.Title
	ap.Description = in.Description
	ap.Date = in.Date
	ap.StartTime = in.Start
	ap.EndTime = in.End
	ap.RemindByEmail = in.RemindByEmail
	ap.RemindBySMS = in.RemindBySMS
	if in.Visibility != "" {
		ap.Visibility = in.Visibility
	}
	if rescheduled {
		ap.Status = string(domain.StatusRescheduled)
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	// A moved appointment retracts its pending reminders; a new one is
	// registered only when the caller asked for it.
	if rescheduled || in.DisableReminder {
		if err := uc.scheduler.CancelReminders(ctx, ap.ID); err != nil {
			return nil, err
		}
	}
	if !in.DisableReminder && in.ReminderOffsetValue > 0 {
		if _, err := uc.scheduler.Schedule(ctx, ap.ID, in.ReminderOffsetValue, in.ReminderOffsetUnit); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.OwnerID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.rt.Publish(ctx, fmt.Sprintf("user:%d", in.OwnerID), "appointment:updated", ap.ID)

	return ap, nil
}
