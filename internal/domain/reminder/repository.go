package reminder

import (
	"context"
	"time"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

type Repository interface {
	Insert(
		ctx context.Context,
		rem *models.Reminder,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Reminder, error)

	ListForAppointment(
		ctx context.Context,
		appointmentID uint,
	) ([]models.Reminder, error)

	// DueScheduled returns scheduled reminders with fire_at <= now, with the
	// owning appointment and its recipients preloaded.
	DueScheduled(
		ctx context.Context,
		now time.Time,
	) ([]models.Reminder, error)

	// Claim flips one reminder scheduled -> pending only if it is still
	// scheduled at update time, and reports whether the row was affected.
	// A false result means another scan already took it.
	Claim(
		ctx context.Context,
		id uint,
	) (bool, error)

	// FinalizeFrom conditionally moves a reminder from one state to another,
	// recording sent_at and the joined attempt errors. Affected-row count
	// semantics match Claim.
	FinalizeFrom(
		ctx context.Context,
		id uint,
		from State,
		to State,
		sentAt time.Time,
		errMsg string,
	) (bool, error)

	// MarkCancelled force-cancels a single reminder regardless of claim
	// state. Used when the owning appointment is found cancelled during a
	// scan.
	MarkCancelled(
		ctx context.Context,
		id uint,
	) error

	// CancelForAppointment transitions every non-terminal reminder of the
	// appointment to cancelled and returns how many were affected. Calling
	// it with nothing to cancel is a no-op.
	CancelForAppointment(
		ctx context.Context,
		appointmentID uint,
	) (int64, error)
}
