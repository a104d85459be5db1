package appointment

import "github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

// ConflictStatuses are the statuses that block new bookings. Confirmed and
// completed appointments are treated as resolved slots and deliberately do
// not participate in conflict scanning.
var ConflictStatuses = []string{
	string(StatusScheduled),
	string(StatusRescheduled),
}

// ===============================
// Visibility
// ===============================

const (
	VisibilityPrivate = "private"
	VisibilityShared  = "shared"
	VisibilityPublic  = "public"
)

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	switch current {
	case StatusScheduled, StatusConfirmed, StatusRescheduled:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

func CanComplete(current Status) error {
	switch current {
	case StatusScheduled, StatusConfirmed, StatusRescheduled:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

func InitialStatus() Status {
	return StatusScheduled
}
