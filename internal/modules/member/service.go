package member

import (
	"context"
	"errors"
	"strings"

	"clubadmin/internal/domain"
	"clubadmin/internal/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("member not found")
	ErrDuplicate  = errors.New("membership number already registered")
)

type Repository interface {
	Create(ctx context.Context, mb *domain.Member) error
	Update(ctx context.Context, mb *domain.Member) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	GetByMembershipNo(ctx context.Context, no string) (*domain.Member, error)
	Search(ctx context.Context, query string, limit, offset int) ([]domain.Member, error)
}

type Service struct {
	members Repository
}

func NewService(members Repository) *Service {
	return &Service{members: members}
}

func (s *Service) Register(ctx context.Context, mb *domain.Member) (*domain.Member, error) {
	if err := validateMember(mb); err != nil {
		return nil, err
	}

	if _, err := s.members.GetByMembershipNo(ctx, mb.MembershipNo); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if mb.Tier == "" {
		mb.Tier = domain.TierMember
	}
	mb.IsActive = true
	if err := s.members.Create(ctx, mb); err != nil {
		return nil, err
	}
	return mb, nil
}

func (s *Service) UpdateProfile(ctx context.Context, mb *domain.Member) (*domain.Member, error) {
	if err := validateMember(mb); err != nil {
		return nil, err
	}
	if _, err := s.members.GetByID(ctx, mb.ID); err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.members.Update(ctx, mb); err != nil {
		return nil, err
	}
	return s.members.GetByID(ctx, mb.ID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	mb, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mb, nil
}

func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]domain.Member, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.members.Search(ctx, query, limit, offset)
}

func validateMember(mb *domain.Member) error {
	if strings.TrimSpace(mb.Name) == "" || strings.TrimSpace(mb.MembershipNo) == "" {
		return ErrValidation
	}
	if fields := validator.Validate(mb); fields != nil {
		return ErrValidation
	}
	switch mb.Tier {
	case "", domain.TierMember, domain.TierAffiliated, domain.TierGuest:
		return nil
	default:
		return ErrValidation
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
