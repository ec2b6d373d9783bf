package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/davidbz/unitecon/internal/domain"
	"github.com/davidbz/unitecon/internal/observability"
)

// maxErrorBody caps how much of a failed response is quoted in the error.
const maxErrorBody = 4096

// Client reads the pricing catalog and usage statistics from the admin backend.
type Client struct {
	baseURL      string
	apiToken     string
	adaptersPath string
	pricesPath   string
	statsPath    string
	httpClient   *http.Client
}

// NewClient creates a new backend HTTP client.
func NewClient(config *Config) *Client {
	return &Client{
		baseURL:      strings.TrimRight(config.BaseURL, "/"),
		apiToken:     config.APIToken,
		adaptersPath: config.AdaptersPath,
		pricesPath:   config.PricesPath,
		statsPath:    config.StatsPath,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}
}

// FetchAdapters returns the adapter catalog. Malformed adapters are skipped.
func (c *Client) FetchAdapters(ctx context.Context) ([]domain.AdapterRecord, error) {
	var raw []json.RawMessage
	if err := c.getJSON(ctx, c.adaptersPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch adapters: %w", err)
	}
	return decodeRecords[domain.AdapterRecord](ctx, c.adaptersPath, raw), nil
}

// FetchProviderPrices returns the provider price list. Malformed rows are skipped.
func (c *Client) FetchProviderPrices(ctx context.Context) ([]domain.ProviderPriceRecord, error) {
	var raw []json.RawMessage
	if err := c.getJSON(ctx, c.pricesPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch provider prices: %w", err)
	}
	return decodeRecords[domain.ProviderPriceRecord](ctx, c.pricesPath, raw), nil
}

// FetchStats returns usage aggregates keyed by "source:model". Malformed entries are skipped.
func (c *Client) FetchStats(ctx context.Context) (map[string]domain.HistoricalStat, error) {
	raw := map[string]json.RawMessage{}
	if err := c.getJSON(ctx, c.statsPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}

	logger := observability.FromContext(ctx)
	stats := make(map[string]domain.HistoricalStat, len(raw))
	for key, value := range raw {
		var stat domain.HistoricalStat
		if err := json.Unmarshal(value, &stat); err != nil {
			logger.Warn("skipping malformed backend record",
				observability.String("path", c.statsPath),
				observability.String("key", key),
				observability.Error(err))
			continue
		}
		stats[key] = stat
	}
	return stats, nil
}

// decodeRecords decodes each element on its own so one bad record does not
// drop the rest of the list.
func decodeRecords[T any](ctx context.Context, path string, raw []json.RawMessage) []T {
	logger := observability.FromContext(ctx)

	records := make([]T, 0, len(raw))
	for i, value := range raw {
		var record T
		if err := json.Unmarshal(value, &record); err != nil {
			logger.Warn("skipping malformed backend record",
				observability.String("path", path),
				observability.Int("index", i),
				observability.Error(err))
			continue
		}
		records = append(records, record)
	}
	return records
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	logger := observability.FromContext(ctx)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	if requestID := observability.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	logger.Debug("backend request completed",
		observability.String("path", path),
		observability.Int("status", resp.StatusCode),
		observability.Duration("duration", time.Since(start)))

	return nil
}
