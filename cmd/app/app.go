package app

import (
	"log"

	"autoquotes/internal/config"
	"autoquotes/internal/database"
	"autoquotes/internal/repository"
	"autoquotes/internal/service"
	"autoquotes/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, storage.Storage) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	if err := db.RunMigrations("migrations/001_create_tables.sql"); err != nil {
		log.Fatalf("Не удалось применить миграции: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services, minioClient
}
