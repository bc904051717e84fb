package provider

import (
	"context"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func explorerWithPayload(t *testing.T, payload any) *ExplorerProvider {
	t.Helper()
	provider := NewExplorerProvider(trace.NewNoopTracerProvider().Tracer("test"), "http://example/")
	provider.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if req.URL.Path != "/api/v2/stats" {
				t.Fatalf("unexpected path: %s", req.URL.Path)
			}
			return jsonResponse(t, http.StatusOK, payload), nil
		}),
	}
	return provider
}

func TestExplorerProviderFetchOnChain(t *testing.T) {
	t.Parallel()

	provider := explorerWithPayload(t, map[string]any{
		"transactions_today": "1250000",
		"total_addresses":    290000000.0,
		"gas_used_today":     "108000000000",
		"total_value_locked": 52000000000.0,
	})

	data, err := provider.FetchOnChain(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Transactions24h != 1250000 {
		t.Fatalf("expected string count parsed, got %d", data.Transactions24h)
	}
	if data.ActiveAddresses24h != 290000000 {
		t.Fatalf("unexpected addresses: %d", data.ActiveAddresses24h)
	}
	if data.GasUsed24h != 108000000000 || data.TotalValueLocked != 52000000000 {
		t.Fatalf("unexpected metrics: %+v", data)
	}
}

func TestExplorerProviderMissingTransactions(t *testing.T) {
	t.Parallel()

	provider := explorerWithPayload(t, map[string]any{
		"total_addresses": 100.0,
	})
	if _, err := provider.FetchOnChain(context.Background()); err == nil {
		t.Fatal("expected schema error when transactions_today is absent")
	}
}

func TestExplorerProviderTrimsBaseURL(t *testing.T) {
	provider := NewExplorerProvider(trace.NewNoopTracerProvider().Tracer("test"), "http://example///")
	if provider.baseURL != "http://example" {
		t.Fatalf("expected trailing slashes trimmed, got %q", provider.baseURL)
	}
}

func TestExplorerProviderDefaultsBaseURL(t *testing.T) {
	provider := NewExplorerProvider(trace.NewNoopTracerProvider().Tracer("test"), "  ")
	if provider.baseURL != "https://eth.blockscout.com" {
		t.Fatalf("unexpected default base URL: %q", provider.baseURL)
	}
}
