package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-apollo-env/models"
)

// Field names reported by [MissingFieldError]. They double as field scopes
// for [RequestValidator.Validate].
const (
	FieldAppID           = "appId"
	FieldClusterName     = "clusterName"
	FieldConfigServerURL = "configServerUrl"
	FieldEnvFileName     = "envFileName"
)

// defaultRequestFields is checked when Validate is called without scoping.
var defaultRequestFields = []string{
	FieldAppID,
	FieldClusterName,
	FieldConfigServerURL,
	FieldEnvFileName,
}

// RequestValidator validates [models.ConfigRequest] values.
type RequestValidator struct{}

// NewRequestValidator returns a [Validator] for config requests.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate checks the required fields of a [models.ConfigRequest] in the
// order appId, clusterName, configServerUrl, envFileName and returns the first
// violation. The env file name is only required when the request asks for an
// env file.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConfigRequest:
		return v.validateRequest(value, fields...)
	case *models.ConfigRequest:
		if value == nil {
			return fmt.Errorf("%w: nil request", ErrUnsupportedType)
		}
		return v.validateRequest(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateRequest(req models.ConfigRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultRequestFields
	}

	for _, field := range fields {
		switch field {
		case FieldAppID:
			if isBlank(req.AppID) {
				return &MissingFieldError{Field: FieldAppID}
			}
		case FieldClusterName:
			if isBlank(req.ClusterName) {
				return &MissingFieldError{Field: FieldClusterName}
			}
		case FieldConfigServerURL:
			if isBlank(req.ConfigServerURL) {
				return &MissingFieldError{Field: FieldConfigServerURL}
			}
		case FieldEnvFileName:
			if envFile, ok := req.EnvFileOutput(); ok && isBlank(envFile.Name) {
				return &MissingFieldError{Field: FieldEnvFileName}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
