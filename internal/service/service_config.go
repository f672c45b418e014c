package service

import (
	"context"

	"github.com/MKhiriev/go-apollo-env/internal/logger"
	"github.com/MKhiriev/go-apollo-env/internal/store"
	"github.com/MKhiriev/go-apollo-env/models"
)

type configService struct {
	fetchService   FetchService
	envFileStorage store.EnvFileStorage

	logger *logger.Logger
}

func NewConfigService(fetchService FetchService, envFileStorage store.EnvFileStorage, log *logger.Logger) ConfigService {
	if log == nil {
		log = logger.Nop()
	}

	return &configService{
		fetchService:   fetchService,
		envFileStorage: envFileStorage,
		logger:         log,
	}
}

func (s *configService) FetchConfig(ctx context.Context, req models.ConfigRequest) (*models.Configurations, error) {
	urls, err := BuildRemoteURLs(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Strs("urls", urls).Msg("remote urls built")

	cfgs, err := s.fetchService.Fetch(ctx, urls)
	if err != nil {
		return nil, err
	}

	envFile, ok := req.EnvFileOutput()
	if !ok {
		return cfgs, nil
	}

	if err = s.envFileStorage.CreateEnvFile(ctx, envFile.Name, cfgs, envFile.BeforeClear); err != nil {
		return nil, err
	}
	if envFile.SetEnv {
		if err = s.envFileStorage.SetEnv(ctx, envFile.Name); err != nil {
			return nil, err
		}
	}

	s.logger.Info().
		Str("path", s.envFileStorage.Path(envFile.Name)).
		Bool("set_env", envFile.SetEnv).
		Msg("env file materialized")

	return cfgs, nil
}

func (s *configService) CreateEnvFile(ctx context.Context, fileName string, cfgs *models.Configurations, clear bool) error {
	return s.envFileStorage.CreateEnvFile(ctx, fileName, cfgs, clear)
}

func (s *configService) SetEnv(ctx context.Context, fileName string) error {
	return s.envFileStorage.SetEnv(ctx, fileName)
}
