package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-apollo-env/internal/validators"
	"github.com/MKhiriev/go-apollo-env/models"
)

// Query parameter names understood by the config server.
const (
	releaseKeyParam = "releaseKey"
	clientIPParam   = "ip"
)

var urlValidator = validators.NewRequestValidator()

// BuildRemoteURLs returns one URL per namespace of req, in namespace order:
//
//	{configServerUrl}/configs/{appId}/{clusterName}/{namespace}[?releaseKey=R&ip=IP]
//
// releaseKey is added only when req.IsCache is set and a release key is
// given, ip only when a client IP is given. The app id, cluster name and
// config server URL are validated first, in that order.
func BuildRemoteURLs(ctx context.Context, req models.ConfigRequest) ([]string, error) {
	err := urlValidator.Validate(ctx, req,
		validators.FieldAppID,
		validators.FieldClusterName,
		validators.FieldConfigServerURL,
	)
	if err != nil {
		return nil, err
	}

	baseURL, err := normalizeBaseURL(req.ConfigServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfigServerURL, err)
	}

	prefix := baseURL + "/configs/" + url.PathEscape(req.AppID) + "/" + url.PathEscape(req.ClusterName) + "/"
	query := buildQuery(req)

	namespaces := req.NamespaceList()
	urls := make([]string, 0, len(namespaces))
	for _, namespace := range namespaces {
		u := prefix + url.PathEscape(namespace)
		if query != "" {
			u += "?" + query
		}
		urls = append(urls, u)
	}

	return urls, nil
}

// buildQuery keeps the parameter order fixed, which url.Values.Encode would
// not.
func buildQuery(req models.ConfigRequest) string {
	var params []string
	if req.IsCache && req.ReleaseKey != "" {
		params = append(params, releaseKeyParam+"="+url.QueryEscape(req.ReleaseKey))
	}
	if req.ClientIP != "" {
		params = append(params, clientIPParam+"="+url.QueryEscape(req.ClientIP))
	}
	return strings.Join(params, "&")
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
