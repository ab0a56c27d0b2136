package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"performx/internal/auth"
	autherrors "performx/internal/auth/errors"
	"performx/internal/employee"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	loginFn    func(ctx context.Context, username, password, claimedRole string) (string, string, auth.AuthResponse, error)
	refreshFn  func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error)
	getMeFn    func(ctx context.Context, userID string) (*auth.AuthResponse, error)
	registerFn func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, u, p, r string) (string, string, auth.AuthResponse, error) {
	return f.loginFn(ctx, u, p, r)
}
func (f *fakeAuthService) RefreshToken(ctx context.Context, rt string) (string, string, auth.AuthResponse, error) {
	return f.refreshFn(ctx, rt)
}
func (f *fakeAuthService) GetMe(ctx context.Context, id string) (*auth.AuthResponse, error) {
	return f.getMeFn(ctx, id)
}
func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	return f.registerFn(ctx, req)
}

func TestHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, u, p, r string) (string, string, auth.AuthResponse, error) {
			assert.Equal(t, "ksmith", u)
			assert.Equal(t, "Employee", r)
			return "access", "refresh", auth.AuthResponse{
				UserID:   "uid",
				Role:     "Employee",
				Employee: employee.EmployeeResponse{Employee: employee.Employee{ID: "3", Name: "Kevin Smith"}, Revision: 1},
			}, nil
		},
	}
	h := auth.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"ksmith","password":"password123","role":"Employee"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accessToken")
	assert.NotContains(t, w.Body.String(), "password123")
}

func TestHandler_Login_UniformDenial(t *testing.T) {
	gin.SetMode(gin.TestMode)
	denials := []error{
		autherrors.ErrInvalidCredentials,
		autherrors.ErrAccountInactive,
	}
	for _, denial := range denials {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, u, p, r string) (string, string, auth.AuthResponse, error) {
				return "", "", auth.AuthResponse{}, denial
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"username":"ksmith","password":"wrong","role":"Admin"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_FAILED")
	}
}

func TestHandler_Login_RejectsUnknownRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := auth.NewHandler(&fakeAuthService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"x","password":"y","role":"Superuser"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeAuthService{
		getMeFn: func(ctx context.Context, id string) (*auth.AuthResponse, error) {
			return &auth.AuthResponse{UserID: id, Role: "Admin"}, nil
		},
	}
	h := auth.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", "uid-1")
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uid-1")
}
