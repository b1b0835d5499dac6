package activitylog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=activitylog_repo.go -destination=mock/activitylog_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, log *ActivityLog) error
	FindAll(ctx context.Context, filter ListFilter, offset, limit int) ([]ActivityView, int64, error)
	FindRecent(ctx context.Context, limit int) ([]ActivityView, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, log *ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("activity_logs AS al").
		Joins("LEFT JOIN users u ON u.id = al.user_id")
	if filter.UserID != "" {
		q = q.Where("al.user_id = ?", filter.UserID)
	}
	if filter.Action != "" {
		q = q.Where("al.action = ?", filter.Action)
	}
	if filter.EntityType != "" {
		q = q.Where("al.entity_type = ?", filter.EntityType)
	}
	if filter.From != nil {
		q = q.Where("al.created_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("al.created_at <= ?", filter.To.UTC())
	}
	return q
}

const viewColumns = "al.id, al.user_id, al.action, al.entity_type, al.entity_id, al.details, al.ip_address, al.user_agent, al.created_at, u.name AS user_name, u.email AS user_email"

func (r *repository) FindAll(ctx context.Context, filter ListFilter, offset, limit int) ([]ActivityView, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ActivityView
	err := r.filtered(ctx, filter).
		Select(viewColumns).
		Order("al.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]ActivityView, error) {
	var rows []ActivityView
	err := r.filtered(ctx, ListFilter{}).
		Select(viewColumns).
		Order("al.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", before.UTC()).
		Delete(&ActivityLog{})
	return res.RowsAffected, res.Error
}
