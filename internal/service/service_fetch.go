package service

import (
	"context"

	"github.com/MKhiriev/go-apollo-env/internal/adapter"
	"github.com/MKhiriev/go-apollo-env/internal/logger"
	"github.com/MKhiriev/go-apollo-env/models"
	"golang.org/x/sync/errgroup"
)

type fetchService struct {
	adapter adapter.ConfigServerAdapter

	logger *logger.Logger
}

func NewFetchService(configServerAdapter adapter.ConfigServerAdapter, log *logger.Logger) FetchService {
	if log == nil {
		log = logger.Nop()
	}

	return &fetchService{
		adapter: configServerAdapter,
		logger:  log,
	}
}

// Fetch requests every URL concurrently. The first failing request fails the
// whole call and cancels the requests still in flight; no partial result is
// returned. Namespaces that contribute nothing are left out of the merge.
func (f *fetchService) Fetch(ctx context.Context, urls []string) (*models.Configurations, error) {
	results := make([]*models.Configurations, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	for i, namespaceURL := range urls {
		g.Go(func() error {
			cfgs, ok, err := f.adapter.FetchNamespace(gctx, namespaceURL)
			if err != nil {
				return err
			}
			if ok {
				results[i] = cfgs
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &models.Configurations{}
	for _, cfgs := range results {
		merged.Merge(cfgs)
	}

	f.logger.Debug().
		Int("namespaces", len(urls)).
		Int("keys", merged.Len()).
		Msg("namespaces merged")

	return merged, nil
}
