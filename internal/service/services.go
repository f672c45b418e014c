package service

import (
	"github.com/MKhiriev/go-apollo-env/internal/adapter"
	"github.com/MKhiriev/go-apollo-env/internal/logger"
	"github.com/MKhiriev/go-apollo-env/internal/store"
)

type Services struct {
	FetchService  FetchService
	ConfigService ConfigService
}

func NewServices(configServerAdapter adapter.ConfigServerAdapter, storages *store.Storages, logger *logger.Logger) *Services {
	fetchService := NewFetchService(configServerAdapter, logger)
	configService := NewConfigService(fetchService, storages.EnvFileStorage, logger)

	return &Services{
		FetchService:  fetchService,
		ConfigService: NewConfigValidationService().Wrap(configService),
	}
}
