package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/medicare-app/backend/internal/domain/providers"
	"github.com/medicare-app/backend/pkg/config"
)

const summaryCacheTTLSeconds = 24 * 60 * 60

// WikipediaAdapter fetches short condition summaries from the MediaWiki
// page-summary endpoint. It is a best-effort collaborator: every failure
// maps onto ErrSummaryUnavailable and the caller proceeds without a summary.
type WikipediaAdapter struct {
	baseURL    string
	httpClient *http.Client
	cache      providers.CacheProvider
}

// NewWikipediaAdapter creates a new Wikipedia summary adapter. cache may be
// nil, in which case every lookup goes to the network.
func NewWikipediaAdapter(cfg *config.EnrichmentConfig, cache providers.CacheProvider) *WikipediaAdapter {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	return &WikipediaAdapter{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
	}
}

type summaryResponse struct {
	Extract string `json:"extract"`
}

// Summarize returns the encyclopedia extract for a condition label.
func (a *WikipediaAdapter) Summarize(ctx context.Context, label string) (string, error) {
	if strings.TrimSpace(label) == "" {
		return "", providers.ErrSummaryUnavailable
	}

	cacheKey := "enrichment:summary:" + strings.ToLower(label)
	if a.cache != nil {
		if cached, err := a.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			return string(cached), nil
		}
	}

	title := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(label), " ", "_"))
	endpoint := fmt.Sprintf("%s/page/summary/%s", a.baseURL, title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", providers.ErrSummaryUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", providers.ErrSummaryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", providers.ErrSummaryUnavailable, resp.StatusCode)
	}

	var payload summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", providers.ErrSummaryUnavailable, err)
	}

	extract := strings.TrimSpace(payload.Extract)
	if extract == "" {
		return "", providers.ErrSummaryUnavailable
	}

	if a.cache != nil {
		_ = a.cache.Set(ctx, cacheKey, []byte(extract), summaryCacheTTLSeconds)
	}

	return extract, nil
}
