package auth

import (
	"net/http"
	"time"

	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/shared/response"
	"go-onboarding/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type Handler struct {
	service       Service
	secureCookies bool
	accessTTL     time.Duration
	refreshTTL    time.Duration
	logger        *zap.Logger
}

// HandlerOption mengatur perilaku cookie untuk web client.
type HandlerOption func(*Handler)

func WithSecureCookies(secure bool) HandlerOption {
	return func(h *Handler) { h.secureCookies = secure }
}

func WithCookieTTL(access, refresh time.Duration) HandlerOption {
	return func(h *Handler) {
		if access > 0 {
			h.accessTTL = access
		}
		if refresh > 0 {
			h.refreshTTL = refresh
		}
	}
}

func NewHandler(s Service, logger *zap.Logger, opts ...HandlerOption) *Handler {
	if logger == nil {
		logger = zap.L()
	}
	h := &Handler{
		service:    s,
		accessTTL:  24 * time.Hour,
		refreshTTL: 7 * 24 * time.Hour,
		logger:     logger.Named("auth.handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) isWeb(c *gin.Context) bool {
	clientType := request.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))
	return request.IsWebClient(clientType)
}

func (h *Handler) setAuthCookies(c *gin.Context, access, refresh string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessCookie,
		Value:    access,
		Path:     "/",
		MaxAge:   int(h.accessTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     refreshCookie,
		Value:    refresh,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearAuthCookies(c *gin.Context) {
	for _, name := range []string{accessCookie, refreshCookie} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register validation failed", zap.Error(err))
		response.ValidationError(c, err)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.isWeb(c) {
		h.setAuthCookies(c, res.AccessToken, res.RefreshToken)
	}
	response.SuccessWithMessage(c, http.StatusCreated, "User registered successfully", res)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http login validation failed", zap.Error(err))
		response.ValidationError(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.isWeb(c) {
		h.setAuthCookies(c, res.AccessToken, res.RefreshToken)
	}
	response.SuccessWithMessage(c, http.StatusOK, "Login successful", res)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var refreshToken string

	// web client mengirim refresh token lewat cookie, client lain lewat body
	if h.isWeb(c) {
		if v, err := c.Cookie(refreshCookie); err == nil {
			refreshToken = v
		}
	}
	if refreshToken == "" {
		var req RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("http refresh token validation failed", zap.Error(err))
			response.ValidationError(c, err)
			return
		}
		refreshToken = req.RefreshToken
	}

	res, err := h.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.isWeb(c) {
		h.setAuthCookies(c, res.AccessToken, res.RefreshToken)
	}
	response.SuccessWithMessage(c, http.StatusOK, "Token refreshed", res)
}

func (h *Handler) Logout(c *gin.Context) {
	h.clearAuthCookies(c)
	response.SuccessWithMessage(c, http.StatusOK, "Logged out successfully", nil)
}

// Verify dipakai frontend untuk mengecek apakah token masih valid.
func (h *Handler) Verify(c *gin.Context) {
	res, err := h.service.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"valid": true, "user": res}, nil)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "If an account exists with this email, an OTP has been sent", nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	res, err := h.service.ResetPassword(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Password reset successful", res)
}

func (h *Handler) GetProfile(c *gin.Context) {
	res, err := h.service.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update profile validation failed", zap.Error(err))
		response.ValidationError(c, err)
		return
	}

	res, err := h.service.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Profile updated successfully", res)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Password changed successfully", nil)
}

func (h *Handler) UploadProfilePicture(c *gin.Context) {
	fh, err := c.FormFile("profilePicture")
	if err != nil {
		h.writeServiceError(c, storage.ErrFileRequired)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer f.Close()

	res, err := h.service.UploadProfilePicture(c.Request.Context(), c.GetString("user_id"), fh.Filename, f, fh.Size)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Profile picture uploaded successfully", res)
}

func (h *Handler) DeleteProfilePicture(c *gin.Context) {
	res, err := h.service.DeleteProfilePicture(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Profile picture deleted successfully", res)
}
