package auth

import (
	"context"
	"testing"

	autherrors "performx/internal/auth/errors"
	"performx/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeCredRepo struct {
	byUsername map[string]*Credential
	byID       map[uuid.UUID]*Credential
}

func newFakeCredRepo(creds ...*Credential) *fakeCredRepo {
	f := &fakeCredRepo{
		byUsername: make(map[string]*Credential),
		byID:       make(map[uuid.UUID]*Credential),
	}
	for _, c := range creds {
		f.byUsername[c.Username] = c
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCredRepo) Create(_ context.Context, cred *Credential) error {
	if _, taken := f.byUsername[cred.Username]; taken {
		return autherrors.ErrUsernameTaken
	}
	f.byUsername[cred.Username] = cred
	f.byID[cred.ID] = cred
	return nil
}

func (f *fakeCredRepo) GetByUsername(_ context.Context, username string) (*Credential, error) {
	cred, ok := f.byUsername[username]
	if !ok {
		return nil, autherrors.ErrCredentialNotFound
	}
	return cred, nil
}

func (f *fakeCredRepo) GetByID(_ context.Context, id uuid.UUID) (*Credential, error) {
	cred, ok := f.byID[id]
	if !ok {
		return nil, autherrors.ErrCredentialNotFound
	}
	return cred, nil
}

func (f *fakeCredRepo) Update(_ context.Context, cred *Credential) error {
	f.byUsername[cred.Username] = cred
	f.byID[cred.ID] = cred
	return nil
}

type fakeEmployeeRepo struct {
	recs map[string]*employee.Record
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Record, error) { return nil, nil }
func (f *fakeEmployeeRepo) Get(_ context.Context, id string) (*employee.Record, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, autherrors.ErrCredentialNotFound
	}
	return rec, nil
}
func (f *fakeEmployeeRepo) Insert(_ context.Context, doc employee.Employee) (*employee.Record, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Save(_ context.Context, doc employee.Employee, rev int64) (*employee.Record, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Mutate(_ context.Context, id string, fn func(doc *employee.Employee) error) (*employee.Record, error) {
	return nil, nil
}

func testFixtures(t *testing.T) (*fakeCredRepo, *fakeEmployeeRepo, *Credential) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)

	cred := &Credential{
		ID:           uuid.New(),
		EmployeeID:   "3",
		Username:     "ksmith",
		PasswordHash: string(hash),
		RoleAccess:   "Employee",
		IsActive:     true,
	}
	employees := &fakeEmployeeRepo{recs: map[string]*employee.Record{
		"3": {Doc: employee.Employee{ID: "3", Name: "Kevin Smith", RoleAccess: employee.AccessEmployee, IsActive: true}, Revision: 2},
	}}
	return newFakeCredRepo(cred), employees, cred
}

func TestService_Login(t *testing.T) {
	repo, employees, cred := testFixtures(t)
	svc := NewService(repo, employees)

	access, refresh, resp, err := svc.Login(context.Background(), "ksmith", "password123", "Employee")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, cred.ID.String(), resp.UserID)
	assert.Equal(t, "Kevin Smith", resp.Employee.Name)
	assert.Equal(t, int64(2), resp.Employee.Revision)

	token, err := jwt.Parse(access, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "3", claims["employee_id"])
	assert.Equal(t, "Employee", claims["role"])
}

func TestService_Login_Denials(t *testing.T) {
	repo, employees, cred := testFixtures(t)
	svc := NewService(repo, employees)
	ctx := context.Background()

	// Wrong password, unknown user and wrong claimed role all surface the
	// same denial.
	_, _, _, err := svc.Login(ctx, "ksmith", "wrong", "Employee")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	_, _, _, err = svc.Login(ctx, "ghost", "password123", "Employee")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	_, _, _, err = svc.Login(ctx, "ksmith", "password123", "Admin")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	cred.IsActive = false
	_, _, _, err = svc.Login(ctx, "ksmith", "password123", "Employee")
	assert.Error(t, err)
	// An inactive account reads the same as a bad password from outside.
	assert.Equal(t, autherrors.ErrInvalidCredentials.Error(), err.Error())
}

func TestService_RefreshToken(t *testing.T) {
	repo, employees, _ := testFixtures(t)
	svc := NewService(repo, employees)
	ctx := context.Background()

	_, refresh, _, err := svc.Login(ctx, "ksmith", "password123", "Employee")
	assert.NoError(t, err)

	access2, refresh2, resp, err := svc.RefreshToken(ctx, refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, access2)
	assert.NotEmpty(t, refresh2)
	assert.Equal(t, "Employee", resp.Role)

	_, _, _, err = svc.RefreshToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestService_Register(t *testing.T) {
	repo, employees, _ := testFixtures(t)
	svc := NewService(repo, employees)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{
		EmployeeID: "3",
		Username:   "ksmith2",
		Password:   "password123",
		RoleAccess: "Employee",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.UserID)

	// The new credential can log in; the hash is never the raw password.
	stored, _ := repo.GetByUsername(ctx, "ksmith2")
	assert.NotEqual(t, "password123", stored.PasswordHash)
	_, _, _, err = svc.Login(ctx, "ksmith2", "password123", "Employee")
	assert.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		EmployeeID: "3",
		Username:   "ksmith",
		Password:   "password123",
		RoleAccess: "Employee",
	})
	assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
}
