package counter

import (
	"context"
	"database/sql"
	"time"

	"go-onboarding/internal/shared/connection"

	"gorm.io/gorm"
)

const TypeEmployeeCode = "employee_code"

// SequenceCounter menyimpan nilai terakhir per jenis counter.
type SequenceCounter struct {
	CounterType string `gorm:"primaryKey;size:64"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

func (SequenceCounter) TableName() string {
	return "sequence_counters"
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	// Upsert atomik supaya dua request paralel tidak mendapat nilai yang sama
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (counter_type, last_value, updated_at)
		VALUES (?, 1, ?)
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = sequence_counters.last_value + 1, updated_at = excluded.updated_at
		RETURNING last_value
	`, counterType, time.Now().UTC()).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
