package appointment

import (
	"context"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

type Repository interface {
	// -------- Appointment (read) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetForOwner(
		ctx context.Context,
		id uint,
		ownerID uint,
	) (*models.Appointment, error)

	ListForOwnerByDate(
		ctx context.Context,
		ownerID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Conflict check --------
	// FindConflicts returns every appointment in a conflict-participating
	// status whose interval overlaps the queried one. Read-only; the caller
	// decides what a non-empty result means.
	FindConflicts(
		ctx context.Context,
		q ConflictQuery,
	) ([]models.Appointment, error)
}
