package appointment

import (
	"context"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	ownerID uint,
	date string,
) ([]models.Appointment, error) {

	if _, err := timezone.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListForOwnerByDate(ctx, ownerID, date)
}
