package store

import (
	"context"
	"encoding/json"
	"fmt"
	gohttp "net/http"
	"net/url"

	"github.com/yama6a/zip-tax-rates/internal/pkg/http"
	"go.uber.org/zap"
)

var _ Store = &DaprStore{}

// DaprStore talks to a Dapr sidecar's state API over HTTP.
// Values are stored as JSON strings.
type DaprStore struct {
	httpClient http.Client
	baseURL    string
	logger     *zap.Logger
}

type daprStateItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewDaprStore creates a DaprStore for the sidecar reachable at baseURL, e.g. "http://localhost:3501".
func NewDaprStore(httpClient http.Client, baseURL string, logger *zap.Logger) *DaprStore {
	return &DaprStore{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (s *DaprStore) Put(ctx context.Context, storeName, key, value string) error {
	body, err := json.Marshal([]daprStateItem{{Key: key, Value: value}})
	if err != nil {
		return fmt.Errorf("failed to marshal state item: %w", err)
	}

	resp, err := s.httpClient.Do(ctx, http.Request{
		Method: gohttp.MethodPost,
		URL:    s.stateURL(storeName),
		Body:   body,
	})
	if err != nil {
		return fmt.Errorf("failed to save key %q: %w", key, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to save key %q: sidecar returned %d: %s", key, resp.StatusCode, resp.Body)
	}

	return nil
}

func (s *DaprStore) Get(ctx context.Context, storeName, key string) (string, error) {
	// The sidecar has no route for an empty key segment.
	if key == "" {
		return "", ErrNotFound
	}

	resp, err := s.httpClient.Do(ctx, http.Request{
		Method: gohttp.MethodGet,
		URL:    s.stateURL(storeName) + "/" + url.PathEscape(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}

	switch {
	case resp.StatusCode == gohttp.StatusNoContent:
		return "", ErrNotFound
	case resp.StatusCode != gohttp.StatusOK:
		return "", fmt.Errorf("failed to get key %q: sidecar returned %d: %s", key, resp.StatusCode, resp.Body)
	case len(resp.Body) == 0:
		return "", ErrNotFound
	}

	if !json.Valid(resp.Body) {
		return "", fmt.Errorf("failed to get key %q: sidecar returned invalid json", key)
	}

	var value *string
	if err := json.Unmarshal(resp.Body, &value); err != nil || value == nil {
		// Anything other than a JSON string was not written by us.
		s.logger.Debug("ignoring non-string state value", zap.String("key", key), zap.ByteString("value", resp.Body))
		return "", ErrNotFound
	}

	return *value, nil
}

func (s *DaprStore) stateURL(storeName string) string {
	return s.baseURL + "/v1.0/state/" + url.PathEscape(storeName)
}
