package chec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/commercekit/storefront/internal/config"
	appErrors "github.com/commercekit/storefront/internal/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// apiClient is a thin JSON client for the hosted commerce API. The auth token
// is injected into every request; the client itself holds no other state and
// is safe to share across requests.
type apiClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func newAPIClient(cfg config.Commerce) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *apiClient) get(ctx context.Context, path string, params map[string]string, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *apiClient) post(ctx context.Context, path string, body, out any) error {
	if body == nil {
		body = struct{}{}
	}

	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *apiClient) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *apiClient) do(ctx context.Context, method, path string, params map[string]string, body, out any) error {
	reqURL := c.baseURL + path

	if len(params) > 0 {
		values := url.Values{}

		// Absent filters impose no constraint; empty values are dropped
		// before serializing.
		for key, val := range params {
			if val != "" {
				values.Set(key, val)
			}
		}

		if encoded := values.Encode(); encoded != "" {
			reqURL += "?" + encoded
		}
	}

	var reqBody *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.InternalError("failed to encode request body").WithError(err)
		}

		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return appErrors.InternalError("failed to build backend request").WithError(err)
	}

	req.Header.Set("X-Authorization", c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return appErrors.BackendError("commerce backend unreachable").WithError(err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return appErrors.NotFoundError("resource not found").WithDetail(method + " " + path)
	}

	if res.StatusCode >= 400 {
		return appErrors.BackendError(fmt.Sprintf("commerce backend returned status %d", res.StatusCode)).WithDetail(method + " " + path)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return appErrors.BackendError("failed to decode backend response").WithError(err)
	}

	return nil
}
