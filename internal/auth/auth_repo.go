package auth

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-onboarding/internal/shared/connection"
	"go-onboarding/internal/user"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *user.User) error
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
	RecordLoginFailure(ctx context.Context, id string, attempts int, lockedUntil *time.Time) error
	RecordLoginSuccess(ctx context.Context, id string, at time.Time) error
	SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateProfile(ctx context.Context, id string, values map[string]any) error
	SetProfilePicture(ctx context.Context, id, picture string) error
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

func (r *repository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Omit("Department").Create(u).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) RecordLoginFailure(ctx context.Context, id string, attempts int, lockedUntil *time.Time) error {
	return r.updates(ctx, id, map[string]any{
		"login_attempts":       attempts,
		"account_locked_until": lockedUntil,
	})
}

func (r *repository) RecordLoginSuccess(ctx context.Context, id string, at time.Time) error {
	return r.updates(ctx, id, map[string]any{
		"login_attempts":       0,
		"account_locked_until": nil,
		"last_login":           at,
	})
}

func (r *repository) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	return r.updates(ctx, id, map[string]any{
		"reset_password_token":   tokenHash,
		"reset_password_expires": expires,
	})
}

// UpdatePassword juga menghapus OTP reset dan membuka lock akun.
func (r *repository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.updates(ctx, id, map[string]any{
		"password":               passwordHash,
		"reset_password_token":   nil,
		"reset_password_expires": nil,
		"login_attempts":         0,
		"account_locked_until":   nil,
	})
}

func (r *repository) UpdateProfile(ctx context.Context, id string, values map[string]any) error {
	return r.updates(ctx, id, values)
}

func (r *repository) SetProfilePicture(ctx context.Context, id, picture string) error {
	return r.updates(ctx, id, map[string]any{"profile_picture": picture})
}

func (r *repository) updates(ctx context.Context, id string, values map[string]any) error {
	values["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
