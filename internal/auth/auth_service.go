package auth

import (
	"context"
	"os"
	"time"

	autherrors "performx/internal/auth/errors"
	"performx/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Login checks the (username, password, claimedRole) triple. All three
	// must match one credential; the caller learns only pass or fail.
	Login(ctx context.Context, username, password, claimedRole string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Login(ctx context.Context, username, password, claimedRole string) (string, string, AuthResponse, error) {
	cred, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// A valid password with the wrong claimed role is still a denial, and
	// indistinguishable from one.
	if cred.RoleAccess != claimedRole {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !cred.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	rec, err := s.employeeRepo.Get(ctx, cred.EmployeeID)
	if err != nil {
		s.logger.Error("login employee lookup failed",
			zap.String("employee_id", cred.EmployeeID),
			zap.Error(err),
		)
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(cred, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(cred, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("user_id", cred.ID.String()),
		zap.String("role", cred.RoleAccess),
	)

	return accessToken, refreshToken, AuthResponse{
		UserID:   cred.ID.String(),
		Role:     cred.RoleAccess,
		Employee: toEmployeeResponse(rec),
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	cred, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if !cred.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	rec, err := s.employeeRepo.Get(ctx, cred.EmployeeID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	newAccess, err := s.generateToken(cred, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefresh, err := s.generateToken(cred, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccess, newRefresh, AuthResponse{
		UserID:   cred.ID.String(),
		Role:     cred.RoleAccess,
		Employee: toEmployeeResponse(rec),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	cred, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrCredentialNotFound
	}

	rec, err := s.employeeRepo.Get(ctx, cred.EmployeeID)
	if err != nil {
		return nil, autherrors.ErrCredentialNotFound
	}

	return &AuthResponse{
		UserID:   cred.ID.String(),
		Role:     cred.RoleAccess,
		Employee: toEmployeeResponse(rec),
	}, nil
}

// Register creates a credential for an existing employee. Admin only, routed
// through the allow-list.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	rec, err := s.employeeRepo.Get(ctx, req.EmployeeID)
	if err != nil {
		return AuthResponse{}, employee.MapStoreError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	cred := &Credential{
		ID:           uuid.New(),
		EmployeeID:   req.EmployeeID,
		Username:     req.Username,
		PasswordHash: string(hashed),
		RoleAccess:   req.RoleAccess,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, cred); err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("credential registered",
		zap.String("user_id", cred.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return AuthResponse{
		UserID:   cred.ID.String(),
		Role:     cred.RoleAccess,
		Employee: toEmployeeResponse(rec),
	}, nil
}

func (s *service) generateToken(cred *Credential, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     cred.ID.String(),
		"employee_id": cred.EmployeeID,
		"role":        cred.RoleAccess,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func toEmployeeResponse(rec *employee.Record) employee.EmployeeResponse {
	return employee.EmployeeResponse{Employee: rec.Doc, Revision: rec.Revision}
}
