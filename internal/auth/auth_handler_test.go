package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	autherrors "go-onboarding/internal/auth/errors"
	"go-onboarding/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	registerFn      func(req RegisterRequest) (AuthResult, error)
	loginFn         func(email, password string) (AuthResult, error)
	refreshFn       func(token string) (AuthResult, error)
	forgotFn        func(email string) error
	resetFn         func(req ResetPasswordRequest) (user.UserResponse, error)
	getProfileFn    func(userID string) (user.UserResponse, error)
	updateProfileFn func(userID string, req UpdateProfileRequest) (user.UserResponse, error)
	changePassFn    func(userID string, req ChangePasswordRequest) error
	uploadFn        func(userID, filename string, src io.Reader, size int64) (user.UserResponse, error)
	deletePicFn     func(userID string) (user.UserResponse, error)
}

func (f *fakeService) Register(_ context.Context, req RegisterRequest) (AuthResult, error) {
	return f.registerFn(req)
}

func (f *fakeService) Login(_ context.Context, email, password string) (AuthResult, error) {
	return f.loginFn(email, password)
}

func (f *fakeService) RefreshToken(_ context.Context, token string) (AuthResult, error) {
	return f.refreshFn(token)
}

func (f *fakeService) ForgotPassword(_ context.Context, email string) error {
	return f.forgotFn(email)
}

func (f *fakeService) ResetPassword(_ context.Context, req ResetPasswordRequest) (user.UserResponse, error) {
	return f.resetFn(req)
}

func (f *fakeService) GetProfile(_ context.Context, userID string) (user.UserResponse, error) {
	return f.getProfileFn(userID)
}

func (f *fakeService) UpdateProfile(_ context.Context, userID string, req UpdateProfileRequest) (user.UserResponse, error) {
	return f.updateProfileFn(userID, req)
}

func (f *fakeService) ChangePassword(_ context.Context, userID string, req ChangePasswordRequest) error {
	return f.changePassFn(userID, req)
}

func (f *fakeService) UploadProfilePicture(_ context.Context, userID, filename string, src io.Reader, size int64) (user.UserResponse, error) {
	return f.uploadFn(userID, filename, src, size)
}

func (f *fakeService) DeleteProfilePicture(_ context.Context, userID string) (user.UserResponse, error) {
	return f.deletePicFn(userID)
}

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.RefreshToken)
	r.POST("/auth/forgot-password", h.ForgotPassword)

	private := r.Group("/auth", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	private.POST("/logout", h.Logout)
	private.GET("/profile", h.GetProfile)
	private.PUT("/change-password", h.ChangePassword)
	private.POST("/profile/picture", h.UploadProfilePicture)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func cookieByName(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHandler_Login(t *testing.T) {
	svc := &fakeService{
		loginFn: func(email, password string) (AuthResult, error) {
			if password != "password123" {
				return AuthResult{}, autherrors.ErrInvalidCredentials
			}
			return AuthResult{
				User:         user.UserResponse{ID: "user-1", Email: email},
				AccessToken:  "access",
				RefreshToken: "refresh",
			}, nil
		},
	}
	router := newTestRouter(NewHandler(svc, nil))

	t.Run("web client gets cookies", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/auth/login",
			LoginRequest{Email: "a@example.com", Password: "password123"},
			map[string]string{"X-Client-Type": "web"},
		)

		assert.Equal(t, http.StatusOK, w.Code)
		access := cookieByName(w, "access_token")
		require.NotNil(t, access)
		assert.Equal(t, "access", access.Value)
		assert.True(t, access.HttpOnly)
		assert.NotNil(t, cookieByName(w, "refresh_token"))

		var data AuthResult
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, "access", data.AccessToken)
		assert.Equal(t, "refresh", data.RefreshToken)
	})

	t.Run("api client gets tokens in body only", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/auth/login",
			LoginRequest{Email: "a@example.com", Password: "password123"},
			map[string]string{"User-Agent": "curl/8.0"},
		)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, cookieByName(w, "access_token"))
		assert.Contains(t, w.Body.String(), `"token":"access"`)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/auth/login",
			LoginRequest{Email: "a@example.com", Password: "wrong-pass"}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "error", decode(t, w).Status)
	})

	t.Run("invalid email", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/auth/login",
			map[string]string{"email": "nope", "password": "x"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Code)
	})
}

func TestHandler_Register(t *testing.T) {
	var got RegisterRequest
	svc := &fakeService{
		registerFn: func(req RegisterRequest) (AuthResult, error) {
			got = req
			return AuthResult{User: user.UserResponse{Email: req.Email, Role: user.RoleEmployee}, AccessToken: "a", RefreshToken: "r"}, nil
		},
	}
	router := newTestRouter(NewHandler(svc, nil))

	w := doJSON(router, http.MethodPost, "/auth/register", map[string]string{
		"name":     "Siti",
		"email":    "siti@example.com",
		"password": "password123",
		"role":     "admin",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "siti@example.com", got.Email)
	assert.Contains(t, w.Body.String(), `"role":"employee"`)

	w = doJSON(router, http.MethodPost, "/auth/register", map[string]string{
		"name": "Siti", "email": "siti@example.com", "password": "short",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RefreshToken(t *testing.T) {
	var got string
	svc := &fakeService{
		refreshFn: func(token string) (AuthResult, error) {
			got = token
			if token == "expired" {
				return AuthResult{}, autherrors.ErrInvalidRefreshToken
			}
			return AuthResult{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
		},
	}
	router := newTestRouter(NewHandler(svc, nil))

	t.Run("web client uses cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
		req.Header.Set("X-Client-Type", "web")
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "from-cookie"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "from-cookie", got)
		assert.Equal(t, "new-access", cookieByName(w, "access_token").Value)
	})

	t.Run("api client uses body", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/auth/refresh", RefreshTokenRequest{RefreshToken: "from-body"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "from-body", got)
	})

	t.Run("missing token", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/auth/refresh", map[string]string{}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/auth/refresh", RefreshTokenRequest{RefreshToken: "expired"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	router := newTestRouter(NewHandler(&fakeService{}, nil, WithSecureCookies(true)))

	w := doJSON(router, http.MethodPost, "/auth/logout", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	access := cookieByName(w, "access_token")
	require.NotNil(t, access)
	assert.Equal(t, "", access.Value)
	assert.True(t, access.Secure)
	assert.Less(t, access.MaxAge, 0)
}

func TestHandler_ForgotPassword(t *testing.T) {
	called := false
	svc := &fakeService{forgotFn: func(email string) error {
		called = true
		return nil
	}}
	router := newTestRouter(NewHandler(svc, nil))

	w := doJSON(router, http.MethodPost, "/auth/forgot-password", ForgotPasswordRequest{Email: "x@example.com"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestHandler_ProfileUsesAuthenticatedUser(t *testing.T) {
	svc := &fakeService{
		getProfileFn: func(userID string) (user.UserResponse, error) {
			return user.UserResponse{ID: userID}, nil
		},
		changePassFn: func(userID string, req ChangePasswordRequest) error {
			assert.Equal(t, "user-1", userID)
			return autherrors.ErrCurrentPasswordIncorrect
		},
	}
	router := newTestRouter(NewHandler(svc, nil))

	w := doJSON(router, http.MethodGet, "/auth/profile", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"user-1"`)

	w = doJSON(router, http.MethodPut, "/auth/change-password", ChangePasswordRequest{CurrentPassword: "a", NewPassword: "newpassword"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Message, "Current password is incorrect")
}

func TestHandler_UploadProfilePicture(t *testing.T) {
	svc := &fakeService{
		uploadFn: func(userID, filename string, src io.Reader, size int64) (user.UserResponse, error) {
			b, _ := io.ReadAll(src)
			assert.Equal(t, "me.png", filename)
			assert.Equal(t, "pixels", string(b))
			return user.UserResponse{ID: userID, ProfilePicture: ProfilePictureURLPrefix + "x.png"}, nil
		},
	}
	router := newTestRouter(NewHandler(svc, nil))

	t.Run("multipart upload", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		fw, err := mw.CreateFormFile("profilePicture", "me.png")
		require.NoError(t, err)
		_, _ = fw.Write([]byte("pixels"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/auth/profile/picture", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), ProfilePictureURLPrefix)
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/profile/picture", strings.NewReader(""))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
