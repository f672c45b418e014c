package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-apollo-env/internal/config"
	"github.com/MKhiriev/go-apollo-env/internal/logger"
	"github.com/MKhiriev/go-apollo-env/internal/utils"
	"github.com/MKhiriev/go-apollo-env/models"
)

type httpConfigServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPConfigServerAdapter constructs the resty-backed implementation of
// [ConfigServerAdapter]. Requests time out after
// adapterCfg.RequestTimeout, or after [utils.DefaultRequestTimeout] when it
// is not set.
func NewHTTPConfigServerAdapter(adapterCfg config.Adapter, log *logger.Logger) ConfigServerAdapter {
	if log == nil {
		log = logger.Nop()
	}

	return &httpConfigServerAdapter{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		logger: log,
	}
}

// FetchNamespace implements [ConfigServerAdapter].
func (h *httpConfigServerAdapter) FetchNamespace(ctx context.Context, namespaceURL string) (*models.Configurations, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(namespaceURL)
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %w", ErrRemoteFetch, namespaceURL, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, false, fmt.Errorf("get %s: %w", namespaceURL, err)
	}

	if resp.StatusCode() != http.StatusOK || len(bytes.TrimSpace(resp.Body())) == 0 {
		h.logger.Debug().
			Str("url", namespaceURL).
			Int("status", resp.StatusCode()).
			Msg("namespace skipped: no content")
		return nil, false, nil
	}

	cfgs, err := models.ParseConfigResponse(resp.Body())
	if errors.Is(err, models.ErrNotJSONObject) {
		h.logger.Debug().
			Str("url", namespaceURL).
			Err(err).
			Msg("namespace skipped: not a json object")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrInvalidResponse, namespaceURL, err)
	}

	h.logger.Debug().
		Str("url", namespaceURL).
		Int("keys", cfgs.Len()).
		Msg("namespace fetched")

	return cfgs, true, nil
}
