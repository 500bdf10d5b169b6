package auth

import (
	"context"
	"errors"
	"strings"

	"clubadmin/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	admins AdminRepository
	jwt    TokenIssuer
}

type LoginResult struct {
	Admin       *domain.Admin
	AccessToken string
}

func NewService(admins AdminRepository, jwt TokenIssuer) *Service {
	return &Service{admins: admins, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin.ID, string(admin.Role))
	if err != nil {
		return nil, err
	}

	admin.PasswordHash = ""
	return &LoginResult{Admin: admin, AccessToken: token}, nil
}

func (s *Service) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*domain.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleAdmin
	}
	admin := &domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		IsActive:     true,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	admin.PasswordHash = ""
	return admin, nil
}

func (s *Service) CurrentAdmin(ctx context.Context, adminID int64) (*domain.Admin, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	admin.PasswordHash = ""
	return admin, nil
}
