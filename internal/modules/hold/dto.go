package hold

import (
	"time"

	"clubadmin/internal/domain"
)

type CreateHoldRequest struct {
	ResourceID int64           `json:"resource_id" binding:"required"`
	StartDate  time.Time       `json:"start_date" binding:"required"`
	EndDate    time.Time       `json:"end_date" binding:"required"`
	Slot       domain.TimeSlot `json:"slot"`
	Remarks    string          `json:"remarks"`
}
