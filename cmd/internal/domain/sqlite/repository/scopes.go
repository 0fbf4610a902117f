package repository

import "gorm.io/gorm"

// active is the tombstone filter every default query goes through.
// Soft-deleted rows stay addressable by id through the Find*ByID
// variants that skip this scope.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}
