package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	reminderdomain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/reminder"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

func updateInput(ap *models.Appointment) UpdateAppointmentInput {
	return UpdateAppointmentInput{
		ID:      ap.ID,
		OwnerID: ap.OwnerID,
		Title:   ap.Title,
		Date:    ap.Date,
		Start:   ap.StartTime,
		End:     ap.EndTime,
	}
}

func TestUpdate_OwnSlotDoesNotConflictWithItself(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, bookingInput(1, "2030-01-10", "14:00", "14:30"))
	require.NoError(t, err)

	in := updateInput(ap)
	in.Title = "Permit review (room 2)"

	got, err := f.update().Execute(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "Permit review (room 2)", got.Title)

	// Unchanged slot keeps its status.
	require.Equal(t, string(domain.StatusScheduled), got.Status)
}

func TestUpdate_MoveIntoOccupiedSlotRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.create().Execute(ctx, bookingInput(1, "2030-01-10", "14:00", "14:30"))
	require.NoError(t, err)
	second, err := f.create().Execute(ctx, bookingInput(1, "2030-01-10", "15:00", "15:30"))
	require.NoError(t, err)

	in := updateInput(second)
	in.Start, in.End = "14:15", "14:45"

	_, err = f.update().Execute(ctx, in)
	var ce *domain.ConflictError
	require.True(t, errors.As(err, &ce))
	require.Len(t, ce.Conflicts, 1)
}

func TestUpdate_MovedSlotBecomesRescheduledAndRetractsReminder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := bookingInput(1, "2030-01-10", "14:00", "14:30")
	in.ReminderOffsetValue = 1
	in.ReminderOffsetUnit = "hours"
	ap, err := f.create().Execute(ctx, in)
	require.NoError(t, err)

	up := updateInput(ap)
	up.Start, up.End = "16:00", "16:30"

	got, err := f.update().Execute(ctx, up)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusRescheduled), got.Status)

	// The old reminder targets the abandoned start time and is retracted.
	rems, err := f.rems.ListForAppointment(ctx, ap.ID)
	require.NoError(t, err)
	require.Len(t, rems, 1)
	require.Equal(t, string(reminderdomain.StateCancelled), rems[0].State)
}

func TestUpdate_RescheduleWithNewOffsetRegistersFreshReminder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := bookingInput(1, "2030-01-10", "14:00", "14:30")
	in.ReminderOffsetValue = 1
	in.ReminderOffsetUnit = "hours"
	ap, err := f.create().Execute(ctx, in)
	require.NoError(t, err)

	up := updateInput(ap)
	up.Start, up.End = "16:00", "16:30"
	up.ReminderOffsetValue = 30
	up.ReminderOffsetUnit = "minutes"

	_, err = f.update().Execute(ctx, up)
	require.NoError(t, err)

	rems, err := f.rems.ListForAppointment(ctx, ap.ID)
	require.NoError(t, err)
	require.Len(t, rems, 2)

	live := 0
	for _, rem := range rems {
		if rem.State == string(reminderdomain.StateScheduled) {
			live++
		}
	}
	require.Equal(t, 1, live)
}

func TestUpdate_DisableReminderRetracts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := bookingInput(1, "2030-01-10", "14:00", "14:30")
	in.ReminderOffsetValue = 1
	in.ReminderOffsetUnit = "hours"
	ap, err := f.create().Execute(ctx, in)
	require.NoError(t, err)

	up := updateInput(ap)
	up.DisableReminder = true

	_, err = f.update().Execute(ctx, up)
	require.NoError(t, err)

	rems, err := f.rems.ListForAppointment(ctx, ap.ID)
	require.NoError(t, err)
	require.Len(t, rems, 1)
	require.Equal(t, string(reminderdomain.StateCancelled), rems[0].State)
}

func TestUpdate_CancelledAppointmentRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, bookingInput(1, "2030-01-10", "14:00", "14:30"))
	require.NoError(t, err)

	_, err = f.cancel().Execute(ctx, ap.OwnerID, ap.ID)
	require.NoError(t, err)

	in := updateInput(ap)
	_, err = f.update().Execute(ctx, in)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdate_WrongOwnerIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, bookingInput(1, "2030-01-10", "14:00", "14:30"))
	require.NoError(t, err)

	in := updateInput(ap)
	in.OwnerID = 99

	_, err = f.update().Execute(ctx, in)
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
