package handlers

import (
	"github.com/go-playground/validator/v10"

	"autoquotes/internal/catalog"
	"autoquotes/internal/config"
	"autoquotes/internal/database"
	"autoquotes/internal/service"
	"autoquotes/internal/storage"
)

type Handlers struct {
	RequestService service.RequestService
	Storage        storage.Storage
	Catalog        *catalog.Catalog
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, st storage.Storage, cat *catalog.Catalog, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		RequestService: services.Request,
		Storage:        st,
		Catalog:        cat,
		DB:             db,
		Cfg:            cfg,
		Validate:       validator.New(),
	}
}
