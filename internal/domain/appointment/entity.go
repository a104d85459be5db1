package appointment

import (
	"time"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Confirm(ap *models.Appointment) error {
	if Status(ap.Status) != StatusScheduled && Status(ap.Status) != StatusRescheduled {
		return CanCancel(Status(ap.Status))
	}

	ap.Status = string(StatusConfirmed)
	return nil
}
