package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-apollo-env/internal/logger"
	"github.com/MKhiriev/go-apollo-env/internal/service"
	"github.com/MKhiriev/go-apollo-env/models"
)

// ErrNoServices is returned by NewApp when no services are supplied.
var ErrNoServices = errors.New("no services provided")

type App struct {
	services *service.Services
	request  models.ConfigRequest
	out      io.Writer
}

// NewApp returns an App that runs req once. When req asks for no env file the
// merged configuration is printed to out as KEY=VALUE lines.
func NewApp(services *service.Services, req models.ConfigRequest, out io.Writer) (*App, error) {
	if services == nil || services.ConfigService == nil {
		return nil, ErrNoServices
	}

	return &App{
		services: services,
		request:  req,
		out:      out,
	}, nil
}

// Run logs through the logger attached to ctx, if any.
func (a *App) Run(ctx context.Context) error {
	cfgs, err := a.services.ConfigService.FetchConfig(ctx, a.request)
	if err != nil {
		return fmt.Errorf("fetch config: %w", err)
	}

	if envFile, ok := a.request.EnvFileOutput(); ok {
		logger.FromContext(ctx).Info().
			Str("env_file", envFile.Name).
			Int("keys", cfgs.Len()).
			Msg("configuration written")
		return nil
	}

	return writeLines(a.out, cfgs)
}

func writeLines(out io.Writer, cfgs *models.Configurations) error {
	w := bufio.NewWriter(out)
	for key, value := range cfgs.All() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, value); err != nil {
			return fmt.Errorf("print configuration: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("print configuration: %w", err)
	}
	return nil
}
