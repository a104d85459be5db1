package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Contacts").
		Preload("SharedWith").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetForOwner(
	ctx context.Context,
	id uint,
	ownerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Preload("Contacts").
		Preload("SharedWith").
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListForOwnerByDate(
	ctx context.Context,
	ownerID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND date = ?", ownerID, date).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Conflict check
// --------------------------------------------------

// FindConflicts scans same-date appointments in a conflict-participating
// status for half-open interval overlap: a candidate conflicts unless it
// ends at or before the queried start, or starts at or after the queried
// end. Times are zero-padded "15:04" strings, so the string comparison is
// chronological. Scan order is whatever the store returns; callers must not
// depend on it.
func (r *AppointmentGormRepository) FindConflicts(
	ctx context.Context,
	q domain.ConflictQuery,
) ([]models.Appointment, error) {

	tx := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"date = ? AND status IN ? AND start_time < ? AND end_time > ?",
			q.Date,
			domain.ConflictStatuses,
			q.End,
			q.Start,
		)

	if q.ExcludeID != 0 {
		tx = tx.Where("id <> ?", q.ExcludeID)
	}
	if q.ScopeOwner != 0 {
		tx = tx.Where("owner_id = ?", q.ScopeOwner)
	}

	var conflicts []models.Appointment
	if err := tx.Find(&conflicts).Error; err != nil {
		return nil, err
	}
	return conflicts, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
