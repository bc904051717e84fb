package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"web3-scout/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const explorerProvider = "explorer"

// ExplorerProvider is the chain-explorer adapter, reading the Blockscout v2
// stats endpoint. Numeric fields arrive as numbers or strings depending on
// the instance, hence the tolerant decoding.
type ExplorerProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewExplorerProvider(tracer trace.Tracer, baseURL string) *ExplorerProvider {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = "https://eth.blockscout.com"
	}
	return &ExplorerProvider{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		tracer:  tracer,
	}
}

// FetchOnChain fetches the explorer's daily network stats.
func (p *ExplorerProvider) FetchOnChain(ctx context.Context) (*domain.OnChainData, error) {
	_, span := p.tracer.Start(ctx, "explorer.fetch-onchain")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/v2/stats", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, upstreamErr(explorerProvider, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, upstreamErr(explorerProvider, resp.StatusCode, string(body))
	}

	var payload struct {
		TransactionsToday any `json:"transactions_today"`
		TotalAddresses    any `json:"total_addresses"`
		GasUsedToday      any `json:"gas_used_today"`
		TotalValueLocked  any `json:"total_value_locked"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, upstreamErr(explorerProvider, 0, "decode stats payload: "+err.Error())
	}

	transactions := asFloat(payload.TransactionsToday)
	if transactions <= 0 {
		// A stats page with no transaction count is a schema mismatch,
		// not a quiet chain.
		return nil, upstreamErr(explorerProvider, 0, "stats payload missing transactions_today")
	}

	return &domain.OnChainData{
		ActiveAddresses24h: int64(asFloat(payload.TotalAddresses)),
		Transactions24h:    int64(transactions),
		TotalValueLocked:   asFloat(payload.TotalValueLocked),
		GasUsed24h:         int64(asFloat(payload.GasUsedToday)),
		LastUpdated:        time.Now().UTC(),
	}, nil
}
