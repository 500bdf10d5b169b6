package repository

import (
	"context"
	"time"

	"clubadmin/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

type maintenanceModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ResourceID int64     `gorm:"column:resource_id;index"`
	StartDate  time.Time `gorm:"column:start_date;index"`
	EndDate    time.Time `gorm:"column:end_date;index"`
	Reason     string    `gorm:"column:reason"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (maintenanceModel) TableName() string { return "maintenance_periods" }

func toDomainMaintenance(m maintenanceModel) *domain.MaintenancePeriod {
	return &domain.MaintenancePeriod{
		ID:         m.ID,
		ResourceID: m.ResourceID,
		StartDate:  domain.Day(m.StartDate),
		EndDate:    domain.Day(m.EndDate),
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, p *domain.MaintenancePeriod) error {
	m := maintenanceModel{
		ResourceID: p.ResourceID,
		StartDate:  domain.Day(p.StartDate),
		EndDate:    domain.Day(p.EndDate),
		Reason:     p.Reason,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	return nil
}

func (r *MaintenanceRepository) ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.MaintenancePeriod, error) {
	q := r.db.WithContext(ctx).Where("resource_id = ?", resourceID)
	if !to.IsZero() {
		q = q.Where("start_date <= ?", domain.Day(to))
	}
	if !from.IsZero() {
		q = q.Where("end_date >= ?", domain.Day(from))
	}

	var models []maintenanceModel
	if err := q.Order("start_date").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.MaintenancePeriod, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainMaintenance(m))
	}
	return out, nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&maintenanceModel{}, "id = ?", id).Error
}
