package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-onboarding/internal/admin"
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/database"
	"go-onboarding/internal/shared/counter"
	"go-onboarding/internal/shared/metrics"
	"go-onboarding/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Jobs menjalankan pekerjaan terjadwal/CLI tanpa HTTP server.
type Jobs struct {
	infra *Infra
	mods  *modules
}

func NewJobs(i *Infra) (*Jobs, error) {
	mods, err := buildModules(i, metrics.New(), map[string]admin.Check{})
	if err != nil {
		return nil, err
	}
	return &Jobs{infra: i, mods: mods}, nil
}

func (j *Jobs) MarkOverdue(ctx context.Context) (assignment.OverdueSweepResponse, error) {
	return j.mods.admin.MarkOverdue(ctx)
}

func (j *Jobs) SendReminders(ctx context.Context) (assignment.ReminderResponse, error) {
	return j.mods.admin.SendReminders(ctx)
}

func (j *Jobs) PruneActivity(ctx context.Context, olderThanDays int) (admin.PruneResponse, error) {
	return j.mods.admin.PruneActivity(ctx, olderThanDays)
}

// Migrate menjalankan auto-migration untuk semua model.
func Migrate(i *Infra) error {
	start := time.Now()
	if err := database.Migrate(i.GormDB); err != nil {
		return err
	}
	i.Logger.Info("database migrated", zap.Duration("took", time.Since(start)))
	return nil
}

type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// CreateAdmin membuat akun admin pertama. Email yang sudah terdaftar ditolak.
func CreateAdmin(ctx context.Context, i *Infra, acc AdminAccount) (*user.User, error) {
	acc.Email = strings.ToLower(strings.TrimSpace(acc.Email))
	if acc.Email == "" || len(acc.Password) < 8 {
		return nil, errors.New("email and a password of at least 8 characters are required")
	}

	users := user.NewRepository(i.GormDB)
	if _, err := users.FindByEmail(ctx, acc.Email); err == nil {
		return nil, fmt.Errorf("user %s already exists", acc.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	tx, err := i.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	seq, err := counter.NewRepository(i.GormDB).WithTx(tx).GetNextValue(ctx, counter.TypeEmployeeCode)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(acc.Name),
		Email:            acc.Email,
		Password:         string(hashed),
		Role:             user.RoleAdmin,
		EmployeeCode:     user.FormatEmployeeCode(seq),
		OnboardingStatus: user.OnboardingNotStarted,
		IsActive:         true,
		EmailVerified:    true,
	}
	if err := users.WithTx(tx).Create(ctx, u); err != nil {
		return nil, user.MapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	i.Logger.Info("admin account created", zap.String("user_id", u.ID.String()), zap.String("email", u.Email))
	return u, nil
}
