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
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	OwnerID uint

	Title       string
	Description string

	Date  string
	Start string
	End   string

	Visibility    string
	ContactIDs    []uint
	SharedUserIDs []uint

	RemindByEmail bool
	RemindBySMS   bool

	// Zero offset value means no reminder.
	ReminderOffsetValue int
	ReminderOffsetUnit  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	conflicts *FindConflicts
	scheduler *reminder.Scheduler
	audit     *audit.Dispatcher
	rt        *realtime.Publisher
}

func NewCreateAppointment(
	repo domain.Repository,
	conflicts *FindConflicts,
	scheduler *reminder.Scheduler,
	auditDisp *audit.Dispatcher,
	rt *realtime.Publisher,
) *CreateAppointment {
	return &CreateAppointment{
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

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := validateInterval(in.Date, in.Start, in.End); err != nil {
		return nil, err
	}

	// Reminder options are checked up front so a bad lead time rejects the
	// whole booking instead of leaving an appointment without its reminder.
	if in.ReminderOffsetValue > 0 {
		offset, err := reminder.OffsetDuration(in.ReminderOffsetValue, in.ReminderOffsetUnit)
		if err != nil {
			return nil, err
		}
		start, err := timezone.At(in.Date, in.Start)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		if !start.Add(-offset).After(timezone.Now()) {
			return nil, httperr.ErrBusiness("reminder_in_past")
		}
	}

	// The conflict check is global and blocks commit. Fail closed: if it
	// could not be completed the booking is not confirmed.
	clashes, err := uc.conflicts.Execute(ctx, domain.ConflictQuery{
		Date:  in.Date,
		Start: in.Start,
		End:   in.End,
	})
	if err != nil {
		return nil, err
	}
	if len(clashes) > 0 {
		return nil, &domain.ConflictError{Conflicts: clashes}
	}

	visibility := in.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	ap := &models.Appointment{
		OwnerID:       in.OwnerID,
		Title:         in.Title,
		Description:   in.Description,
		Date:          in.Date,
		StartTime:     in.Start,
		EndTime:       in.End,
		Status:        string(domain.InitialStatus()),
		Visibility:    visibility,
		RemindByEmail: in.RemindByEmail,
		RemindBySMS:   in.RemindBySMS,
		Contacts:      contactRefs(in.ContactIDs),
		SharedWith:    userRefs(in.SharedUserIDs),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	if in.ReminderOffsetValue > 0 {
		if _, err := uc.scheduler.Schedule(ctx, ap.ID, in.ReminderOffsetValue, in.ReminderOffsetUnit); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.OwnerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.rt.Publish(ctx, fmt.Sprintf("user:%d", in.OwnerID), "appointment:created", ap.ID)

	return ap, nil
}

func contactRefs(ids []uint) []models.Contact {
	out := make([]models.Contact, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Contact{ID: id})
	}
	return out
}

func userRefs(ids []uint) []models.User {
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.User{ID: id})
	}
	return out
}
