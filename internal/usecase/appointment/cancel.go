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

type CancelAppointment struct {
	repo      domain.Repository
	scheduler *reminder.Scheduler
	audit     *audit.Dispatcher
	rt        *realtime.Publisher
}

func NewCancelAppointment(
	repo domain.Repository,
	scheduler *reminder.Scheduler,
	auditDisp *audit.Dispatcher,
	rt *realtime.Publisher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:      repo,
		scheduler: scheduler,
		audit:     auditDisp,
		rt:        rt,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetForOwner(ctx, appointmentID, ownerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	// Retract reminders that have not fired yet.
	if err := uc.scheduler.CancelReminders(ctx, ap.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &ownerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.rt.Publish(ctx, fmt.Sprintf("user:%d", ownerID), "appointment:cancelled", ap.ID)

	return ap, nil
}
