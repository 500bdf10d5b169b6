package repository

import (
	"context"
	"strings"
	"time"

	"clubadmin/internal/domain"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

type memberModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	MembershipNo string    `gorm:"column:membership_no;uniqueIndex"`
	Name         string    `gorm:"column:name;index"`
	Email        string    `gorm:"column:email"`
	Phone        string    `gorm:"column:phone"`
	Tier         string    `gorm:"column:tier"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (memberModel) TableName() string { return "members" }

func toDomainMember(m memberModel) *domain.Member {
	return &domain.Member{
		ID:           m.ID,
		MembershipNo: m.MembershipNo,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Tier:         domain.PricingTier(m.Tier),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toMemberModel(mb *domain.Member) memberModel {
	return memberModel{
		ID:           mb.ID,
		MembershipNo: mb.MembershipNo,
		Name:         mb.Name,
		Email:        mb.Email,
		Phone:        mb.Phone,
		Tier:         string(mb.Tier),
		IsActive:     mb.IsActive,
		CreatedAt:    mb.CreatedAt,
		UpdatedAt:    mb.UpdatedAt,
	}
}

func (r *MemberRepository) Create(ctx context.Context, mb *domain.Member) error {
	m := toMemberModel(mb)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	mb.ID = m.ID
	mb.CreatedAt = m.CreatedAt
	mb.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *MemberRepository) Update(ctx context.Context, mb *domain.Member) error {
	m := toMemberModel(mb)
	return r.db.WithContext(ctx).Model(&memberModel{}).Where("id = ?", mb.ID).Updates(map[string]any{
		"name":      m.Name,
		"email":     m.Email,
		"phone":     m.Phone,
		"tier":      m.Tier,
		"is_active": m.IsActive,
	}).Error
}

func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	var m memberModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainMember(m), nil
}

func (r *MemberRepository) GetByMembershipNo(ctx context.Context, no string) (*domain.Member, error) {
	var m memberModel
	if err := r.db.WithContext(ctx).First(&m, "membership_no = ?", no).Error; err != nil {
		return nil, err
	}
	return toDomainMember(m), nil
}

// Search matches name or membership number, case-insensitive prefix on the
// number and substring on the name.
func (r *MemberRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Member, error) {
	q := r.db.WithContext(ctx).Order("name")
	if s := strings.TrimSpace(query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(membership_no) LIKE ?", like, strings.ToLower(s)+"%")
	}

	var models []memberModel
	if err := q.Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Member, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainMember(m))
	}
	return out, nil
}
