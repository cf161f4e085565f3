package wifi

import "gorm.io/gorm"

// Init creates or updates the catalogue tables. Idempotent.
func Init(d *gorm.DB) error {
	return d.AutoMigrate(&WifiPoint{}, &ImportControl{})
}
