package db

import "gorm.io/gorm"

var DB *gorm.DB

// Init binds the package to the shared connection pool.
func Init(db *gorm.DB) {
	DB = db
}
