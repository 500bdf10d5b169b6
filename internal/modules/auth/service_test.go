package auth

import (
	"context"
	"testing"

	"clubadmin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	args := m.Called(ctx, a)
	if a != nil && args.Error(0) == nil {
		a.ID = 5
	}
	return args.Error(0)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(adminID int64, role string) (string, error) {
	args := m.Called(adminID, role)
	return args.String(0), args.Error(1)
}

func hashedAdmin(password string) *domain.Admin {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.Admin{
		ID:           2,
		Email:        "front.desk@club.test",
		PasswordHash: string(hash),
		Name:         "Front Desk",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
}

func TestService_Login_Success(t *testing.T) {
	admins := new(MockAdminRepository)
	issuer := new(MockTokenIssuer)
	svc := NewService(admins, issuer)

	admins.On("GetByEmail", mock.Anything, "front.desk@club.test").Return(hashedAdmin("let-me-in-1"), nil)
	issuer.On("GenerateToken", int64(2), "admin").Return("token-abc", nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Front.Desk@club.test ",
		Password: "let-me-in-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", result.AccessToken)
	assert.Empty(t, result.Admin.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	admins := new(MockAdminRepository)
	svc := NewService(admins, new(MockTokenIssuer))

	admins.On("GetByEmail", mock.Anything, "front.desk@club.test").Return(hashedAdmin("let-me-in-1"), nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "front.desk@club.test",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	admins := new(MockAdminRepository)
	svc := NewService(admins, new(MockTokenIssuer))

	admins.On("GetByEmail", mock.Anything, "nobody@club.test").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@club.test",
		Password: "whatever",
	})

	// same sentinel as a wrong password, no account enumeration
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_DisabledAccount(t *testing.T) {
	admins := new(MockAdminRepository)
	svc := NewService(admins, new(MockTokenIssuer))

	disabled := hashedAdmin("let-me-in-1")
	disabled.IsActive = false
	admins.On("GetByEmail", mock.Anything, "front.desk@club.test").Return(disabled, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "front.desk@club.test",
		Password: "let-me-in-1",
	})

	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestService_CreateAdmin_DuplicateEmail(t *testing.T) {
	admins := new(MockAdminRepository)
	svc := NewService(admins, new(MockTokenIssuer))

	admins.On("GetByEmail", mock.Anything, "front.desk@club.test").Return(hashedAdmin("x"), nil)

	_, err := svc.CreateAdmin(context.Background(), CreateAdminRequest{
		Email:    "front.desk@club.test",
		Password: "strong-enough",
		Name:     "Duplicate",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_CreateAdmin_HashesPassword(t *testing.T) {
	admins := new(MockAdminRepository)
	svc := NewService(admins, new(MockTokenIssuer))

	admins.On("GetByEmail", mock.Anything, "new@club.test").Return(nil, gorm.ErrRecordNotFound)
	admins.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
		return a.PasswordHash != "" && a.PasswordHash != "plain-text-pass" &&
			bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("plain-text-pass")) == nil
	})).Return(nil)

	admin, err := svc.CreateAdmin(context.Background(), CreateAdminRequest{
		Email:    "new@club.test",
		Password: "plain-text-pass",
		Name:     "New Admin",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Empty(t, admin.PasswordHash)
}
