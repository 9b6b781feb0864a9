package db

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/dental-clinic/internal/config"
	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

// NewDB opens the pool with gorm's logger writing through log.
func NewDB(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.IsDev() && log.IsLevelEnabled(logrus.DebugLevel) {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Ping checks the connection, used by /health.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Models lists every table the service owns, in dependency order.
func Models() []any {
	return []any{
		&models.Patient{},
		&models.MedicalHistory{},
		&models.Visit{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.AuditEventLog{},
	}
}

const overlapConstraint = "appointments_no_overlap"

// Migrate creates or alters the tables and adds the appointment overlap
// exclusion constraint. A database that rejects the constraint only
// logs a warning; the transactional check in the repository still holds.
func Migrate(db *gorm.DB, log *logrus.Logger) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if err := db.Exec(overlapConstraintSQL()).Error; err != nil {
		log.WithError(err).Warn("appointment overlap constraint not created")
	}

	return nil
}

func overlapConstraintSQL() string {
	statuses := ""
	for i, s := range appointment.BlockingStatuses {
		if i > 0 {
			statuses += ", "
		}
		statuses += "'" + s + "'"
	}

	return fmt.Sprintf(`
DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
		ALTER TABLE appointments ADD CONSTRAINT %[1]s
			EXCLUDE USING gist (tstzrange(start_time, end_time, '[)') WITH &&)
			WHERE (status IN (%[2]s));
	END IF;
END
$$;`, overlapConstraint, statuses)
}
