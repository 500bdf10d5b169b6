package repository

import (
	"context"
	"time"

	"clubadmin/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

type resourceModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Category     string    `gorm:"column:category;index"`
	Description  string    `gorm:"column:description"`
	Capacity     int       `gorm:"column:capacity"`
	IsActive     bool      `gorm:"column:is_active"`
	OutOfService bool      `gorm:"column:out_of_service"`
	IsExclusive  bool      `gorm:"column:is_exclusive"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`

	Rates []resourceRateModel `gorm:"foreignKey:ResourceID"`
}

func (resourceModel) TableName() string { return "resources" }

type resourceRateModel struct {
	ID         int64   `gorm:"column:id;primaryKey"`
	ResourceID int64   `gorm:"column:resource_id;uniqueIndex:idx_resource_tier"`
	Tier       string  `gorm:"column:tier;uniqueIndex:idx_resource_tier"`
	UnitPrice  float64 `gorm:"column:unit_price"`
}

func (resourceRateModel) TableName() string { return "resource_rates" }

func toDomainResource(m resourceModel) *domain.Resource {
	rateCard := make(map[domain.PricingTier]float64, len(m.Rates))
	for _, r := range m.Rates {
		rateCard[domain.PricingTier(r.Tier)] = r.UnitPrice
	}

	return &domain.Resource{
		ID:           m.ID,
		Name:         m.Name,
		Category:     domain.ResourceCategory(m.Category),
		Description:  m.Description,
		Capacity:     m.Capacity,
		IsActive:     m.IsActive,
		OutOfService: m.OutOfService,
		IsExclusive:  m.IsExclusive,
		RateCard:     rateCard,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toResourceModel(r *domain.Resource) resourceModel {
	m := resourceModel{
		ID:           r.ID,
		Name:         r.Name,
		Category:     string(r.Category),
		Description:  r.Description,
		Capacity:     r.Capacity,
		IsActive:     r.IsActive,
		OutOfService: r.OutOfService,
		IsExclusive:  r.IsExclusive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	for tier, price := range r.RateCard {
		m.Rates = append(m.Rates, resourceRateModel{
			ResourceID: r.ID,
			Tier:       string(tier),
			UnitPrice:  price,
		})
	}
	return m
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	m := toResourceModel(res)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	res.ID = m.ID
	res.CreatedAt = m.CreatedAt
	res.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toResourceModel(res)
		rates := m.Rates
		m.Rates = nil

		if err := tx.Model(&resourceModel{}).Where("id = ?", res.ID).Updates(map[string]any{
			"name":           m.Name,
			"description":    m.Description,
			"capacity":       m.Capacity,
			"is_active":      m.IsActive,
			"out_of_service": m.OutOfService,
			"is_exclusive":   m.IsExclusive,
		}).Error; err != nil {
			return err
		}

		if err := tx.Where("resource_id = ?", res.ID).Delete(&resourceRateModel{}).Error; err != nil {
			return err
		}
		for i := range rates {
			rates[i].ID = 0
			rates[i].ResourceID = res.ID
		}
		if len(rates) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rates).Error
	})
}

func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	var m resourceModel
	err := r.db.WithContext(ctx).Preload("Rates").First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return toDomainResource(m), nil
}

func (r *ResourceRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Resource, error) {
	var models []resourceModel
	err := r.db.WithContext(ctx).Preload("Rates").Where("id IN ?", ids).Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Resource, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainResource(m))
	}
	return out, nil
}

func (r *ResourceRepository) List(ctx context.Context, category domain.ResourceCategory, activeOnly bool) ([]domain.Resource, error) {
	q := r.db.WithContext(ctx).Preload("Rates").Order("name")
	if category != "" {
		q = q.Where("category = ?", string(category))
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var models []resourceModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Resource, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainResource(m))
	}
	return out, nil
}
