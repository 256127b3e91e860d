package database

import (
	"gorm.io/gorm"
)

// Window applies skip/limit offset windowing to a GORM query
func Window(skip, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(skip).Limit(limit)
	}
}
