package appointment

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/audit"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/infra/repository"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/reminder"
)

type fixture struct {
	db        *gorm.DB
	repo      *repository.AppointmentGormRepository
	rems      *repository.ReminderGormRepository
	conflicts *FindConflicts
	scheduler *reminder.Scheduler
	audit     *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Appointment{},
		&models.Reminder{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{db: db}
	f.repo = repository.NewAppointmentGormRepository(db)
	f.rems = repository.NewReminderGormRepository(db)
	f.conflicts = NewFindConflicts(f.repo)
	f.scheduler = reminder.NewScheduler(f.repo, f.rems)
	f.audit = audit.NewDispatcher(audit.New(db))
	return f
}

func (f *fixture) create() *CreateAppointment {
	return NewCreateAppointment(f.repo, f.conflicts, f.scheduler, f.audit, nil)
}

func (f *fixture) update() *UpdateAppointment {
	return NewUpdateAppointment(f.repo, f.conflicts, f.scheduler, f.audit, nil)
}

func (f *fixture) cancel() *CancelAppointment {
	return NewCancelAppointment(f.repo, f.scheduler, f.audit, nil)
}

func (f *fixture) del() *DeleteAppointment {
	return NewDeleteAppointment(f.repo, f.scheduler, f.audit, nil)
}
