package db

import "gorm.io/gorm"

// Database hands repositories the shared gorm handle. It is built once
// at startup and injected; there is no package-level singleton.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
