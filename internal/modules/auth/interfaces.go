package auth

import (
	"context"

	"clubadmin/internal/domain"
)

type AdminRepository interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
}

type TokenIssuer interface {
	GenerateToken(adminID int64, role string) (string, error)
}
