package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/reminder"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/infra/repository"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/timezone"
)

func newTestScheduler(t *testing.T) (*Scheduler, *gorm.DB, *repository.ReminderGormRepository) {
	t.Helper()
	db := testDB(t)
	rems := repository.NewReminderGormRepository(db)
	s := NewScheduler(repository.NewAppointmentGormRepository(db), rems)
	return s, db, rems
}

func seedSlot(t *testing.T, db *gorm.DB, date, start, end string) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{
		OwnerID:   1,
		Title:     "Hearing",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    "scheduled",
	}
	require.NoError(t, db.Create(ap).Error)
	return ap
}

func clockAt(t *testing.T, date, clock string) func() time.Time {
	t.Helper()
	at, err := timezone.At(date, clock)
	require.NoError(t, err)
	return func() time.Time { return at }
}

func TestSchedule_FireAtIsOffsetBeforeStart(t *testing.T) {
	s, db, _ := newTestScheduler(t)
	ap := seedSlot(t, db, "2024-06-10", "14:00", "14:30")
	s.now = clockAt(t, "2024-06-10", "13:00")

	rem, err := s.Schedule(context.Background(), ap.ID, 30, UnitMinutes)
	require.NoError(t, err)

	want, err := timezone.At("2024-06-10", "13:30")
	require.NoError(t, err)
	require.True(t, rem.FireAt.Equal(want))
	require.Equal(t, string(domain.StateScheduled), rem.State)
}

func TestSchedule_PastFireTimeRejected(t *testing.T) {
	s, db, _ := newTestScheduler(t)
	ap := seedSlot(t, db, "2024-06-10", "14:00", "14:30")
	s.now = clockAt(t, "2024-06-10", "13:35")

	_, err := s.Schedule(context.Background(), ap.ID, 30, UnitMinutes)
	require.True(t, httperr.IsBusiness(err, "reminder_in_past"))
}

func TestSchedule_FireTimeEqualToNowRejected(t *testing.T) {
	s, db, _ := newTestScheduler(t)
	ap := seedSlot(t, db, "2024-06-10", "14:00", "14:30")

	// Strictly-in-the-future rule: exactly now is already too late.
	s.now = clockAt(t, "2024-06-10", "13:30")

	_, err := s.Schedule(context.Background(), ap.ID, 30, UnitMinutes)
	require.True(t, httperr.IsBusiness(err, "reminder_in_past"))
}

func TestSchedule_InvalidOffset(t *testing.T) {
	s, db, _ := newTestScheduler(t)
	ap := seedSlot(t, db, "2024-06-10", "14:00", "14:30")
	s.now = clockAt(t, "2024-06-10", "08:00")

	_, err := s.Schedule(context.Background(), ap.ID, 30, "fortnights")
	require.True(t, httperr.IsBusiness(err, "invalid_offset_unit"))

	_, err = s.Schedule(context.Background(), ap.ID, 0, UnitMinutes)
	require.True(t, httperr.IsBusiness(err, "invalid_offset_value"))

	_, err = s.Schedule(context.Background(), ap.ID, -5, UnitHours)
	require.True(t, httperr.IsBusiness(err, "invalid_offset_value"))
}

func TestSchedule_AppointmentNotFound(t *testing.T) {
	s, _, _ := newTestScheduler(t)

	_, err := s.Schedule(context.Background(), 999, 30, UnitMinutes)
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestSchedule_SupersedesPreviousReminder(t *testing.T) {
	s, db, rems := newTestScheduler(t)
	ap := seedSlot(t, db, "2024-06-10", "14:00", "14:30")
	s.now = clockAt(t, "2024-06-10", "08:00")

	first, err := s.Schedule(context.Background(), ap.ID, 2, UnitHours)
	require.NoError(t, err)

	second, err := s.Schedule(context.Background(), ap.ID, 30, UnitMinutes)
	require.NoError(t, err)

	all, err := rems.ListForAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Only the latest registration stays live.
	for _, rem := range all {
		switch rem.ID {
		case first.ID:
			require.Equal(t, string(domain.StateCancelled), rem.State)
		case second.ID:
			require.Equal(t, string(domain.StateScheduled), rem.State)
		}
	}
}

func TestOffsetDuration_Units(t *testing.T) {
	cases := []struct {
		value int
		unit  string
		want  time.Duration
	}{
		{45, UnitMinutes, 45 * time.Minute},
		{2, UnitHours, 2 * time.Hour},
		{3, UnitDays, 72 * time.Hour},
		{1, UnitWeeks, 7 * 24 * time.Hour},
	}
	for _, tc := range cases {
		got, err := OffsetDuration(tc.value, tc.unit)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestCancelReminders_NothingToCancelIsNoop(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	require.NoError(t, s.CancelReminders(context.Background(), 42))
}
