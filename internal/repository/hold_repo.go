package repository

import (
	"context"
	"time"

	"clubadmin/internal/domain"

	"gorm.io/gorm"
)

type HoldRepository struct {
	db *gorm.DB
}

func NewHoldRepository(db *gorm.DB) *HoldRepository {
	return &HoldRepository{db: db}
}

type holdModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ResourceID int64     `gorm:"column:resource_id;index"`
	StartDate  time.Time `gorm:"column:start_date;index"`
	EndDate    time.Time `gorm:"column:end_date;index"`
	Slot       string    `gorm:"column:slot"`
	Remarks    string    `gorm:"column:remarks"`
	CreatedBy  int64     `gorm:"column:created_by"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (holdModel) TableName() string { return "holds" }

func toDomainHold(m holdModel) *domain.Hold {
	return &domain.Hold{
		ID:         m.ID,
		ResourceID: m.ResourceID,
		StartDate:  domain.Day(m.StartDate),
		EndDate:    domain.Day(m.EndDate),
		Slot:       domain.TimeSlot(m.Slot),
		Remarks:    m.Remarks,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *HoldRepository) Create(ctx context.Context, h *domain.Hold) error {
	m := holdModel{
		ResourceID: h.ResourceID,
		StartDate:  domain.Day(h.StartDate),
		EndDate:    domain.Day(h.EndDate),
		Slot:       string(h.Slot),
		Remarks:    h.Remarks,
		CreatedBy:  h.CreatedBy,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	h.ID = m.ID
	h.CreatedAt = m.CreatedAt
	return nil
}

func (r *HoldRepository) GetByID(ctx context.Context, id int64) (*domain.Hold, error) {
	var m holdModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainHold(m), nil
}

// ListByResourceWindow returns holds whose interval intersects [from, to].
// Zero bounds leave that side open.
func (r *HoldRepository) ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Hold, error) {
	q := r.db.WithContext(ctx).Where("resource_id = ?", resourceID)
	if !to.IsZero() {
		q = q.Where("start_date <= ?", domain.Day(to))
	}
	if !from.IsZero() {
		q = q.Where("end_date >= ?", domain.Day(from))
	}

	var models []holdModel
	if err := q.Order("start_date").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Hold, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainHold(m))
	}
	return out, nil
}

func (r *HoldRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&holdModel{}, "id = ?", id).Error
}

// DeleteExpired removes holds that ended before the given day. Run by the
// hold_cleanup binary.
func (r *HoldRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("end_date < ?", domain.Day(before)).Delete(&holdModel{})
	return res.RowsAffected, res.Error
}
