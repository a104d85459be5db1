package reminder

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apptdomain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/reminder"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/timezone"
)

// Offset units accepted for "N <unit> before the appointment".
const (
	UnitMinutes = "minutes"
	UnitHours   = "hours"
	UnitDays    = "days"
	UnitWeeks   = "weeks"
)

type Scheduler struct {
	appts apptdomain.Repository
	rems  domain.Repository
	now   func() time.Time
}

func NewScheduler(
	appts apptdomain.Repository,
	rems domain.Repository,
) *Scheduler {
	return &Scheduler{
		appts: appts,
		rems:  rems,
		now:   timezone.Now,
	}
}

func OffsetDuration(value int, unit string) (time.Duration, error) {
	if value <= 0 {
		return 0, httperr.ErrBusiness("invalid_offset_value")
	}

	switch unit {
	case UnitMinutes:
		return time.Duration(value) * time.Minute, nil
	case UnitHours:
		return time.Duration(value) * time.Hour, nil
	case UnitDays:
		return time.Duration(value) * 24 * time.Hour, nil
	case UnitWeeks:
		return time.Duration(value) * 7 * 24 * time.Hour, nil
	}
	return 0, httperr.ErrBusiness("invalid_offset_unit")
}

// Schedule registers a reminder firing offsetValue offsetUnits before the
// appointment start. A reminder whose computed fire time is not strictly in
// the future is rejected, never clamped. Any previously scheduled reminder
// for the same appointment is superseded, so at most one live reminder
// exists per appointment.
func (s *Scheduler) Schedule(
	ctx context.Context,
	appointmentID uint,
	offsetValue int,
	offsetUnit string,
) (*models.Reminder, error) {

	offset, err := OffsetDuration(offsetValue, offsetUnit)
	if err != nil {
		return nil, err
	}

	ap, err := s.appts.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	start, err := timezone.At(ap.Date, ap.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	fireAt := start.Add(-offset)
	if !fireAt.After(s.now()) {
		// pick a shorter lead time or a later appointment
		return nil, httperr.ErrBusiness("reminder_in_past")
	}

	if _, err := s.rems.CancelForAppointment(ctx, appointmentID); err != nil {
		return nil, err
	}

	rem := &models.Reminder{
		AppointmentID: appointmentID,
		FireAt:        fireAt,
		State:         string(domain.StateScheduled),
	}
	if err := s.rems.Insert(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// CancelReminders retracts every not-yet-fired reminder of an appointment.
// Invoked on delete, on cancellation, on reschedule and on reminder-option
// disable. Idempotent: nothing to cancel is a no-op.
func (s *Scheduler) CancelReminders(ctx context.Context, appointmentID uint) error {
	_, err := s.rems.CancelForAppointment(ctx, appointmentID)
	return err
}
