package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"web3-scout/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const (
	coingeckoBaseURL   = "https://api.coingecko.com/api/v3"
	descriptionMaxLen  = 500
	defaultCategory    = "Cryptocurrency"
	coingeckoProvider  = "coingecko"
	coingeckoAPIKeyHdr = "x-cg-demo-api-key"
)

// CoinGeckoProvider is the market-data adapter: project metadata by id and
// batched price snapshots by id list.
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewCoinGeckoProvider creates the adapter with built-in rate limiting.
// The free tier tolerates roughly 8 requests per minute.
func NewCoinGeckoProvider(tracer trace.Tracer, apiKey string) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: coingeckoBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
		limiter: NewRateLimiter(8, 7500*time.Millisecond),
	}
}

// FetchProject fetches one project's metadata by its identifier.
func (p *CoinGeckoProvider) FetchProject(ctx context.Context, id string) (*domain.ProjectInfo, error) {
	_, span := p.tracer.Start(ctx, "coingecko.fetch-project")
	defer span.End()

	id = normalizeProjectID(id)
	if id == "" {
		return nil, fmt.Errorf("project id is required")
	}

	u := fmt.Sprintf("%s/coins/%s?localization=false&tickers=false&market_data=false&community_data=false&developer_data=false",
		p.baseURL, url.PathEscape(id))

	body, err := p.doRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		Description struct {
			EN string `json:"en"`
		} `json:"description"`
		Categories []string `json:"categories"`
		Links      struct {
			Homepage          []string `json:"homepage"`
			TwitterScreenName string   `json:"twitter_screen_name"`
			ReposURL          struct {
				GitHub []string `json:"github"`
			} `json:"repos_url"`
		} `json:"links"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, upstreamErr(coingeckoProvider, 0, "unexpected project payload: "+err.Error())
	}
	if strings.TrimSpace(raw.Name) == "" || strings.TrimSpace(raw.Symbol) == "" {
		return nil, upstreamErr(coingeckoProvider, 0, "project payload missing name or symbol")
	}

	category := defaultCategory
	if len(raw.Categories) > 0 && strings.TrimSpace(raw.Categories[0]) != "" {
		category = strings.TrimSpace(raw.Categories[0])
	}
	website := ""
	if len(raw.Links.Homepage) > 0 {
		website = strings.TrimSpace(raw.Links.Homepage[0])
	}
	repo := ""
	if len(raw.Links.ReposURL.GitHub) > 0 {
		repo = strings.TrimSpace(raw.Links.ReposURL.GitHub[0])
	}

	return &domain.ProjectInfo{
		Name:          raw.Name,
		Symbol:        strings.ToUpper(raw.Symbol),
		Description:   truncateWithEllipsis(raw.Description.EN, descriptionMaxLen),
		Category:      category,
		WebsiteURL:    website,
		TwitterHandle: strings.TrimSpace(raw.Links.TwitterScreenName),
		GitHubRepo:    repo,
		LastUpdated:   time.Now().UTC(),
	}, nil
}

// FetchMarkets fetches price snapshots for the given tickers in one call.
func (p *CoinGeckoProvider) FetchMarkets(ctx context.Context, symbols []string) ([]*domain.PriceData, error) {
	_, span := p.tracer.Start(ctx, "coingecko.fetch-markets")
	defer span.End()

	if len(symbols) == 0 {
		return nil, fmt.Errorf("at least one symbol is required")
	}
	normalized := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		if symbol = strings.ToLower(strings.TrimSpace(symbol)); symbol != "" {
			normalized = append(normalized, symbol)
		}
	}

	u := fmt.Sprintf("%s/coins/markets?vs_currency=usd&symbols=%s",
		p.baseURL, url.QueryEscape(strings.Join(normalized, ",")))

	body, err := p.doRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Symbol       string  `json:"symbol"`
		CurrentPrice float64 `json:"current_price"`
		Change24h    float64 `json:"price_change_percentage_24h"`
		MarketCap    float64 `json:"market_cap"`
		TotalVolume  float64 `json:"total_volume"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, upstreamErr(coingeckoProvider, 0, "unexpected markets payload: "+err.Error())
	}

	now := time.Now().UTC()
	result := make([]*domain.PriceData, 0, len(raw))
	for _, row := range raw {
		if strings.TrimSpace(row.Symbol) == "" {
			continue
		}
		result = append(result, &domain.PriceData{
			Symbol:      strings.ToUpper(row.Symbol),
			Price:       row.CurrentPrice,
			Change24h:   row.Change24h,
			MarketCap:   row.MarketCap,
			Volume24h:   row.TotalVolume,
			LastUpdated: now,
		})
	}
	if len(result) == 0 {
		return nil, upstreamErr(coingeckoProvider, 0, "markets payload has no rows")
	}

	return result, nil
}

func (p *CoinGeckoProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if p.apiKey != "" {
		req.Header.Set(coingeckoAPIKeyHdr, p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, upstreamErr(coingeckoProvider, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, upstreamErr(coingeckoProvider, resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// normalizeProjectID maps a human name onto the id form the API expects,
// e.g. "Ethereum Classic" -> "ethereum-classic".
func normalizeProjectID(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(name), "-")
}
