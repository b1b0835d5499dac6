package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	autherrors "go-onboarding/internal/auth/errors"
	"go-onboarding/internal/config"
	"go-onboarding/internal/email"
	"go-onboarding/internal/events"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/shared/contextutil"
	"go-onboarding/internal/shared/counter"
	"go-onboarding/internal/shared/storage"
	"go-onboarding/internal/user"
	usererrors "go-onboarding/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (user.UserResponse, error)
	GetProfile(ctx context.Context, userID string) (user.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (user.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	UploadProfilePicture(ctx context.Context, userID, filename string, src io.Reader, size int64) (user.UserResponse, error)
	DeleteProfilePicture(ctx context.Context, userID string) (user.UserResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	outbox   kafka.OutboxRepository
	mailer   email.Service
	pictures storage.FileStorage
	jwt      config.JWTConfig
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	mailer email.Service,
	pictures storage.FileStorage,
	jwtCfg config.JWTConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counterRepo,
		outbox:   outboxRepo,
		mailer:   mailer,
		pictures: pictures,
		jwt:      jwtCfg,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.GetByEmail(ctx, emailAddr); err == nil {
		s.logger.Warn("register email already used", zap.String("request_id", rid))
		return AuthResult{}, usererrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("register lookup failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResult{}, err
	}

	dob, err := user.ParseDate(req.DateOfBirth)
	if err != nil {
		return AuthResult{}, autherrors.ErrInvalidDate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResult{}, err
	}
	defer tx.Rollback()

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypeEmployeeCode)
	if err != nil {
		s.logger.Error("register generate employee code failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResult{}, err
	}

	// Registrasi publik selalu membuat akun employee; role lain diatur admin.
	u := &user.User{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(req.Name),
		Email:            emailAddr,
		Password:         string(hashed),
		Role:             user.RoleEmployee,
		EmployeeCode:     user.FormatEmployeeCode(seq),
		Phone:            req.Phone,
		DateOfBirth:      dob,
		Address:          req.Address,
		OnboardingStatus: user.OnboardingNotStarted,
		IsActive:         true,
		EmailVerified:    true,
	}
	if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
		s.logger.Error("register persist failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResult{}, user.MapRepositoryError(err)
	}

	if s.outbox != nil {
		evt, err := events.NewOutboxEvent(rid, "user", u.ID.String(), events.EventUserRegistered, events.UserRegisteredEvent{
			EventType:  events.EventUserRegistered,
			RequestID:  rid,
			UserID:     u.ID.String(),
			Email:      u.Email,
			Name:       u.Name,
			OccurredAt: s.now(),
		})
		if err != nil {
			return AuthResult{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			s.logger.Error("register outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return AuthResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResult{}, err
	}

	if s.outbox == nil && s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, u.Email, u.Name); err != nil {
			s.logger.Warn("send welcome email failed", zap.String("request_id", rid), zap.Error(err))
		}
	}

	result, err := s.issueTokens(u)
	if err != nil {
		return AuthResult{}, err
	}

	s.logger.Info("user registered",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
		zap.String("employee_code", u.EmployeeCode),
	)
	return result, nil
}

func (s *service) Login(ctx context.Context, emailAddr, password string) (AuthResult, error) {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login unknown email", zap.String("request_id", rid))
			return AuthResult{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResult{}, err
	}

	now := s.now()
	if u.IsLocked(now) {
		s.logger.Warn("login on locked account", zap.String("request_id", rid), zap.String("user_id", u.ID.String()))
		return AuthResult{}, autherrors.ErrAccountLocked
	}
	if !u.IsActive {
		s.logger.Warn("login on inactive account", zap.String("request_id", rid), zap.String("user_id", u.ID.String()))
		return AuthResult{}, autherrors.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		attempts := u.LoginAttempts + 1
		var lockedUntil *time.Time
		if attempts >= MaxLoginAttempts {
			until := now.Add(LockoutDuration)
			lockedUntil = &until
		}
		if err := s.repo.RecordLoginFailure(ctx, u.ID.String(), attempts, lockedUntil); err != nil {
			s.logger.Error("record login failure failed", zap.String("request_id", rid), zap.Error(err))
		}
		s.logger.Warn("login wrong password",
			zap.String("request_id", rid),
			zap.String("user_id", u.ID.String()),
			zap.Int("attempts", attempts),
			zap.Bool("locked", lockedUntil != nil),
		)
		return AuthResult{}, autherrors.ErrInvalidCredentials
	}

	if err := s.repo.RecordLoginSuccess(ctx, u.ID.String(), now); err != nil {
		s.logger.Error("record login success failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResult{}, err
	}
	u.LoginAttempts = 0
	u.AccountLockedUntil = nil
	u.LastLogin = &now

	result, err := s.issueTokens(u)
	if err != nil {
		return AuthResult{}, err
	}

	s.logger.Info("user logged in", zap.String("request_id", rid), zap.String("user_id", u.ID.String()))
	return result, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (AuthResult, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(s.refreshSecret()), nil
	})
	if err != nil || !token.Valid {
		return AuthResult{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AuthResult{}, autherrors.ErrInvalidRefreshToken
	}
	if typ, _ := claims["typ"].(string); typ != TokenTypeRefresh {
		return AuthResult{}, autherrors.ErrInvalidRefreshToken
	}
	userID, _ := claims["user_id"].(string)
	if _, err := uuid.Parse(userID); err != nil {
		return AuthResult{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResult{}, autherrors.ErrInvalidRefreshToken
		}
		return AuthResult{}, err
	}
	if !u.IsActive {
		return AuthResult{}, autherrors.ErrAccountInactive
	}

	return s.issueTokens(u)
}

func (s *service) ForgotPassword(ctx context.Context, emailAddr string) error {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Tidak membocorkan apakah email terdaftar.
			s.logger.Info("forgot password for unknown email", zap.String("request_id", rid))
			return nil
		}
		return err
	}

	otp, err := GenerateOTP()
	if err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.SetResetToken(ctx, u.ID.String(), string(hashed), s.now().Add(OTPTTL)); err != nil {
		s.logger.Error("store reset otp failed", zap.String("request_id", rid), zap.Error(err))
		return user.MapRepositoryError(err)
	}

	if s.mailer == nil {
		s.logger.Warn("mailer not configured, otp not delivered", zap.String("request_id", rid))
		return autherrors.ErrOTPEmailFailed
	}
	if err := s.mailer.SendPasswordReset(ctx, u.Email, u.Name, otp, OTPTTL); err != nil {
		s.logger.Error("send otp email failed", zap.String("request_id", rid), zap.Error(err))
		return autherrors.ErrOTPEmailFailed
	}

	s.logger.Info("password reset otp sent", zap.String("request_id", rid), zap.String("user_id", u.ID.String()))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) (user.UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, autherrors.ErrInvalidOTP
		}
		return user.UserResponse{}, err
	}

	if u.ResetPasswordToken == nil || u.ResetPasswordExpires == nil || !u.ResetPasswordExpires.After(s.now()) {
		s.logger.Warn("reset password with missing or expired otp", zap.String("request_id", rid))
		return user.UserResponse{}, autherrors.ErrInvalidOTP
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.ResetPasswordToken), []byte(req.OTP)); err != nil {
		s.logger.Warn("reset password with wrong otp", zap.String("request_id", rid))
		return user.UserResponse{}, autherrors.ErrInvalidOTP
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := s.repo.UpdatePassword(ctx, u.ID.String(), string(hashed)); err != nil {
		s.logger.Error("reset password persist failed", zap.String("request_id", rid), zap.Error(err))
		return user.UserResponse{}, user.MapRepositoryError(err)
	}

	u.ResetPasswordToken = nil
	u.ResetPasswordExpires = nil
	u.LoginAttempts = 0
	u.AccountLockedUntil = nil

	s.logger.Info("password reset", zap.String("request_id", rid), zap.String("user_id", u.ID.String()))
	return user.MapToResponse(*u), nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, user.MapRepositoryError(err)
	}
	return user.MapToResponse(*u), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (user.UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	values := map[string]any{}
	if req.Name != nil {
		values["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		values["phone"] = *req.Phone
	}
	if req.Address != nil {
		values["address"] = *req.Address
	}
	if req.DateOfBirth != nil {
		dob, err := user.ParseDate(*req.DateOfBirth)
		if err != nil {
			return user.UserResponse{}, autherrors.ErrInvalidDate
		}
		values["date_of_birth"] = dob
	}
	if len(values) == 0 {
		return user.UserResponse{}, autherrors.ErrNoProfileFields
	}

	if err := s.repo.UpdateProfile(ctx, userID, values); err != nil {
		s.logger.Error("update profile failed", zap.String("request_id", rid), zap.Error(err))
		return user.UserResponse{}, user.MapRepositoryError(err)
	}

	s.logger.Info("profile updated", zap.String("request_id", rid), zap.String("user_id", userID))
	return s.GetProfile(ctx, userID)
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return user.MapRepositoryError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("change password wrong current password", zap.String("request_id", rid), zap.String("user_id", userID))
		return autherrors.ErrCurrentPasswordIncorrect
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.NewPassword)) == nil {
		return autherrors.ErrSamePassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		s.logger.Error("change password persist failed", zap.String("request_id", rid), zap.Error(err))
		return user.MapRepositoryError(err)
	}

	s.logger.Info("password changed", zap.String("request_id", rid), zap.String("user_id", userID))
	return nil
}

func (s *service) UploadProfilePicture(ctx context.Context, userID, filename string, src io.Reader, size int64) (user.UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, user.MapRepositoryError(err)
	}

	stored, err := s.pictures.Save(ctx, ProfilePictureDir, filename, src, size)
	if err != nil {
		s.logger.Warn("store profile picture failed", zap.String("request_id", rid), zap.Error(err))
		return user.UserResponse{}, err
	}

	url := ProfilePictureURLPrefix + stored.Filename
	if err := s.repo.SetProfilePicture(ctx, userID, url); err != nil {
		_ = s.pictures.Remove(stored.Path)
		s.logger.Error("persist profile picture failed", zap.String("request_id", rid), zap.Error(err))
		return user.UserResponse{}, user.MapRepositoryError(err)
	}

	if old := s.picturePath(u.ProfilePicture); old != "" {
		if err := s.pictures.Remove(old); err != nil {
			s.logger.Warn("remove old profile picture failed", zap.String("request_id", rid), zap.Error(err))
		}
	}

	u.ProfilePicture = url
	s.logger.Info("profile picture updated", zap.String("request_id", rid), zap.String("user_id", userID))
	return user.MapToResponse(*u), nil
}

func (s *service) DeleteProfilePicture(ctx context.Context, userID string) (user.UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, user.MapRepositoryError(err)
	}
	if u.ProfilePicture == "" {
		return user.UserResponse{}, autherrors.ErrNoProfilePicture
	}

	if err := s.repo.SetProfilePicture(ctx, userID, ""); err != nil {
		return user.UserResponse{}, user.MapRepositoryError(err)
	}
	if err := s.pictures.Remove(s.picturePath(u.ProfilePicture)); err != nil {
		s.logger.Warn("remove profile picture file failed", zap.String("request_id", rid), zap.Error(err))
	}

	u.ProfilePicture = ""
	s.logger.Info("profile picture deleted", zap.String("request_id", rid), zap.String("user_id", userID))
	return user.MapToResponse(*u), nil
}

// picturePath menerjemahkan URL publik foto profil menjadi path relatif
// terhadap root storage.
func (s *service) picturePath(url string) string {
	name, ok := strings.CutPrefix(url, ProfilePictureURLPrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return ""
	}
	return s.pictures.PathFor(ProfilePictureDir, name)
}

func (s *service) issueTokens(u *user.User) (AuthResult, error) {
	access, err := s.generateToken(jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    u.Role,
		"typ":     TokenTypeAccess,
	}, s.jwt.Secret, s.jwt.Expire)
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return AuthResult{}, autherrors.ErrTokenGenerationFailed
	}

	refresh, err := s.generateToken(jwt.MapClaims{
		"user_id": u.ID.String(),
		"typ":     TokenTypeRefresh,
	}, s.refreshSecret(), s.jwt.RefreshExpire)
	if err != nil {
		s.logger.Error("sign refresh token failed", zap.Error(err))
		return AuthResult{}, autherrors.ErrTokenGenerationFailed
	}

	return AuthResult{
		User:         user.MapToResponse(*u),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *service) generateToken(claims jwt.MapClaims, secret string, ttl time.Duration) (string, error) {
	now := s.now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *service) refreshSecret() string {
	if s.jwt.RefreshSecret != "" {
		return s.jwt.RefreshSecret
	}
	return s.jwt.Secret
}

// GenerateOTP menghasilkan kode numerik OTPLength digit dari crypto/rand.
func GenerateOTP() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < OTPLength; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", OTPLength, n.Int64()), nil
}
