package appointment

import (
	"context"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/audit"
	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetForOwner(ctx, appointmentID, ownerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Complete(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &ownerID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
