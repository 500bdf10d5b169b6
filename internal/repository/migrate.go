package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the repositories own. The row
// models are private to this package, so migration lives here too.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&resourceModel{},
		&resourceRateModel{},
		&bookingModel{},
		&bookingResourceModel{},
		&commitmentRowModel{},
		&extraChargeModel{},
		&bookingSlotLockModel{},
		&holdModel{},
		&maintenanceModel{},
		&memberModel{},
		&adminModel{},
	)
}
