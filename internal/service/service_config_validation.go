package service

import (
	"context"

	"github.com/MKhiriev/go-apollo-env/internal/validators"
	"github.com/MKhiriev/go-apollo-env/models"
)

// ConfigValidationService rejects malformed requests before the wrapped
// service performs any I/O.
type ConfigValidationService struct {
	inner     ConfigService
	validator validators.Validator
}

func NewConfigValidationService() ConfigServiceWrapper {
	return &ConfigValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ConfigValidationService) FetchConfig(ctx context.Context, req models.ConfigRequest) (*models.Configurations, error) {
	// app id, cluster and server url first, then the env file name when an
	// env file is requested
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	return v.inner.FetchConfig(ctx, req)
}

func (v *ConfigValidationService) CreateEnvFile(ctx context.Context, fileName string, cfgs *models.Configurations, clear bool) error {
	return v.inner.CreateEnvFile(ctx, fileName, cfgs, clear)
}

func (v *ConfigValidationService) SetEnv(ctx context.Context, fileName string) error {
	return v.inner.SetEnv(ctx, fileName)
}

func (v *ConfigValidationService) Wrap(wrapped ConfigService) ConfigService {
	v.inner = wrapped
	return v
}
