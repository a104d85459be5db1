package appointment

import (
	"context"
	"fmt"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/audit"
	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/realtime"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/reminder"
)

type DeleteAppointment struct {
	repo      domain.Repository
	scheduler *reminder.Scheduler
	audit     *audit.Dispatcher
	rt        *realtime.Publisher
}

func NewDeleteAppointment(
	repo domain.Repository,
	scheduler *reminder.Scheduler,
	auditDisp *audit.Dispatcher,
	rt *realtime.Publisher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:      repo,
		scheduler: scheduler,
		audit:     auditDisp,
		rt:        rt,
	}
}

// Execute hard-deletes the appointment. Reminders are retracted first so a
// scan racing the delete cannot fire for a row about to disappear.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetForOwner(ctx, appointmentID, ownerID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.scheduler.CancelReminders(ctx, ap.ID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &ownerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})
	uc.rt.Publish(ctx, fmt.Sprintf("user:%d", ownerID), "appointment:deleted", appointmentID)

	return nil
}
