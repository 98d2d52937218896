package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"table_reservations/pkg/models"
)

const (
	maxConnectRetries = 10
	connectRetryDelay = 5 * time.Second
)

// GormStore keeps reservations in a SQL database through gorm.
type GormStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) a sqlite database file. ":memory:" is accepted.
func OpenSQLite(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; an in-memory database also lives on one connection.
	sqlDB.SetMaxOpenConns(1)

	return NewGormStore(db)
}

// OpenPostgres connects with retries, the database container may still be starting.
func OpenPostgres(ctx context.Context, dsn string, log *slog.Logger) (*GormStore, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < maxConnectRetries; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
		if err == nil {
			break
		}
		log.Warn("database connection attempt failed", "attempt", i+1, "max", maxConnectRetries, "error", err)
		if i < maxConnectRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(connectRetryDelay):
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return NewGormStore(db)
}

// NewGormStore migrates the reservations table on db and wraps it.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.Reservation{}); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) CreateReservation(ctx context.Context, reservation *models.Reservation) (uint, error) {
	ctx, span := tracer.Start(ctx, "GormStore.CreateReservation")
	defer span.End()

	if err := s.db.WithContext(ctx).Create(reservation).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return reservation.ID, nil
}

func (s *GormStore) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	ctx, span := tracer.Start(ctx, "GormStore.ListReservations")
	defer span.End()

	reservations := make([]models.Reservation, 0)
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&reservations).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return reservations, nil
}

func (s *GormStore) DeleteReservation(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "GormStore.DeleteReservation")
	defer span.End()

	result := s.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		span.RecordError(result.Error)
		span.SetStatus(codes.Error, result.Error.Error())
		return result.Error
	}
	if result.RowsAffected == 0 {
		span.AddEvent("no rows affected")
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
