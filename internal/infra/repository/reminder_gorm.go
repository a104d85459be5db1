package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/reminder"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

func (r *ReminderGormRepository) Insert(
	ctx context.Context,
	rem *models.Reminder,
) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *ReminderGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Reminder, error) {

	var rem models.Reminder
	if err := r.db.WithContext(ctx).
		Preload("Appointment").
		Preload("Appointment.Owner").
		Preload("Appointment.Contacts").
		Preload("Appointment.SharedWith").
		First(&rem, id).Error; err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *ReminderGormRepository) ListForAppointment(
	ctx context.Context,
	appointmentID uint,
) ([]models.Reminder, error) {

	var rems []models.Reminder
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&rems).Error; err != nil {
		return nil, err
	}
	return rems, nil
}

func (r *ReminderGormRepository) DueScheduled(
	ctx context.Context,
	now time.Time,
) ([]models.Reminder, error) {

	var rems []models.Reminder
	if err := r.db.WithContext(ctx).
		Where("state = ? AND fire_at <= ?", string(domain.StateScheduled), now).
		Preload("Appointment").
		Preload("Appointment.Owner").
		Preload("Appointment.Contacts").
		Preload("Appointment.SharedWith").
		Find(&rems).Error; err != nil {
		return nil, err
	}
	return rems, nil
}

// Claim is the concurrency contract of the scan loop: a single conditional
// update that only applies while the row is still scheduled. RowsAffected
// of zero means a concurrent or restarted scan got there first and this
// invocation must skip the reminder.
func (r *ReminderGormRepository) Claim(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND state = ?", id, string(domain.StateScheduled)).
		Update("state", string(domain.StatePending))

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ReminderGormRepository) FinalizeFrom(
	ctx context.Context,
	id uint,
	from domain.State,
	to domain.State,
	sentAt time.Time,
	errMsg string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND state = ?", id, string(from)).
		Updates(map[string]any{
			"state":   string(to),
			"sent_at": sentAt,
			"error":   errMsg,
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ReminderGormRepository) MarkCancelled(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ?", id).
		Update("state", string(domain.StateCancelled)).Error
}

func (r *ReminderGormRepository) CancelForAppointment(
	ctx context.Context,
	appointmentID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where(
			"appointment_id = ? AND state IN ?",
			appointmentID,
			[]string{string(domain.StateScheduled), string(domain.StatePending)},
		).
		Update("state", string(domain.StateCancelled))

	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.Repository = (*ReminderGormRepository)(nil)
