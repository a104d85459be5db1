package appointment

import (
	"context"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/audit"
	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

// Confirming an appointment resolves its slot: confirmed appointments no
// longer participate in conflict scanning, so the slot reopens for new
// bookings. That mirrors the observed production behavior.
type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetForOwner(ctx, appointmentID, ownerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &ownerID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
