package app

import (
	"log"

	"socialnet/internal/config"
	"socialnet/internal/database"
	"socialnet/internal/repository"
	"socialnet/internal/service"
	"socialnet/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// media storage: локальный диск по умолчанию, MinIO по конфигу
	var mediaStorage storage.Storage
	switch cfg.MediaStorage {
	case "minio":
		mediaStorage, err = storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("Не удалось инициализировать MinIO: %v", err)
		}
	default:
		mediaStorage, err = storage.NewLocalStorage(cfg)
		if err != nil {
			log.Fatalf("Не удалось инициализировать локальное хранилище: %v", err)
		}
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, mediaStorage)

	return db, repo, services
}
