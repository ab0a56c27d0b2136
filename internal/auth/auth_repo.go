package auth

import (
	"context"
	"errors"

	autherrors "performx/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, cred *Credential) error
	GetByUsername(ctx context.Context, username string) (*Credential, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Credential, error)
	Update(ctx context.Context, cred *Credential) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cred *Credential) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(cred).Error)
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).First(&cred, "username = ?", username).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &cred, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).First(&cred, "id = ?", id).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &cred, nil
}

func (r *repository) Update(ctx context.Context, cred *Credential) error {
	return mapRepositoryError(r.db.WithContext(ctx).Save(cred).Error)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrCredentialNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrUsernameTaken
	}
	return err
}
