package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	reminderdomain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/reminder"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

func TestCancel_FreesSlotAndRetractsReminder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := bookingInput(1, "2030-01-10", "14:00", "14:30")
	in.ReminderOffsetValue = 1
	in.ReminderOffsetUnit = "hours"
	ap, err := f.create().Execute(ctx, in)
	require.NoError(t, err)

	got, err := f.cancel().Execute(ctx, ap.OwnerID, ap.ID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCancelled), got.Status)
	require.NotNil(t, got.CancelledAt)

	rems, err := f.rems.ListForAppointment(ctx, ap.ID)
	require.NoError(t, err)
	require.Len(t, rems, 1)
	require.Equal(t, string(reminderdomain.StateCancelled), rems[0].State)

	// The slot is open again.
	_, err = f.create().Execute(ctx, bookingInput(2, "2030-01-10", "14:00", "14:30"))
	require.NoError(t, err)
}

func TestCancel_AlreadyCancelledRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, bookingInput(1, "2030-01-10", "14:00", "14:30"))
	require.NoError(t, err)

	_, err = f.cancel().Execute(ctx, ap.OwnerID, ap.ID)
	require.NoError(t, err)

	_, err = f.cancel().Execute(ctx, ap.OwnerID, ap.ID)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestDelete_RemovesRowAndRetractsReminder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := bookingInput(1, "2030-01-10", "14:00", "14:30")
	in.ReminderOffsetValue = 1
	in.ReminderOffsetUnit = "hours"
	ap, err := f.create().Execute(ctx, in)
	require.NoError(t, err)

	require.NoError(t, f.del().Execute(ctx, ap.OwnerID, ap.ID))

	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&count).Error)
	require.Zero(t, count)

	// Retraction happened before the row went away.
	var rem models.Reminder
	require.NoError(t, f.db.Where("appointment_id = ?", ap.ID).First(&rem).Error)
	require.Equal(t, string(reminderdomain.StateCancelled), rem.State)
}

func TestDelete_UnknownAppointment(t *testing.T) {
	f := newFixture(t)

	err := f.del().Execute(context.Background(), 1, 999)
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
