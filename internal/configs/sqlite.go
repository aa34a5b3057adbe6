package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "taskboard.com/taskboard/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.TeamMember{},
		&model.PrivateBoard{},
		&model.TeamBoard{},
		&model.List{},
		&model.Task{},
		&model.Milestone{},
		&model.Log{},
		&model.Timer{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
