package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"web3-scout/internal/domain"
	"web3-scout/internal/fallback"
	"web3-scout/internal/research"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

// stubFetcher returns canned or derived records for every lookup.
type stubFetcher struct{}

func (stubFetcher) ProjectInfo(ctx context.Context, name string) *domain.ProjectInfo {
	return &domain.ProjectInfo{Name: name, Symbol: "TST", Category: "Cryptocurrency"}
}

func (stubFetcher) PriceData(ctx context.Context, symbol string) *domain.PriceData {
	return &domain.PriceData{Symbol: strings.ToUpper(symbol), Price: 123.45, Change24h: 1.5}
}

func (stubFetcher) PriceBatch(ctx context.Context, symbols []string) []*domain.PriceData {
	result := make([]*domain.PriceData, 0, len(symbols))
	for _, symbol := range symbols {
		result = append(result, &domain.PriceData{Symbol: strings.ToUpper(symbol), Price: 1})
	}
	return result
}

func (stubFetcher) ProjectNews(ctx context.Context, project string, limit int) []domain.NewsItem {
	return []domain.NewsItem{{Title: project + " news", Source: "stub"}}
}

func (stubFetcher) OnChainData(ctx context.Context, project string) *domain.OnChainData {
	return &domain.OnChainData{ActiveAddresses24h: 10, Transactions24h: 20}
}

func (stubFetcher) GitHubActivity(ctx context.Context, owner, repo string) *domain.GitHubActivity {
	return &domain.GitHubActivity{Stars: 42, WeeklyCommitActivity: make([]int, 8)}
}

func (stubFetcher) SearchRepositories(ctx context.Context, query string, limit int) []domain.RepoSummary {
	return []domain.RepoSummary{{Name: query}}
}

func (stubFetcher) WebsiteContent(ctx context.Context, url string) *domain.WebsiteContent {
	return &domain.WebsiteContent{URL: url, Content: "page text"}
}

func newTestRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := research.NewService(testTracer, stubFetcher{}, fallback.NewSynthesizer(rand.NewSource(1)))
	h := New(testTracer, svc)
	r := gin.New()
	h.RegisterRoutes(r, apiKey)
	return r
}

func doRequest(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetProjectInfo(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodGet, "/api/projects/ethereum", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var info domain.ProjectInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if info.Symbol != "TST" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestGetPriceData(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodGet, "/api/prices/btc", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var price domain.PriceData
	if err := json.Unmarshal(w.Body.Bytes(), &price); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if price.Symbol != "BTC" || price.Price != 123.45 {
		t.Fatalf("unexpected price: %+v", price)
	}
}

func TestGetMultiplePricesRequiresSymbols(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodGet, "/api/prices", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetMultiplePrices(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodGet, "/api/prices?symbols=btc,eth", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Prices []domain.PriceData `json:"prices"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Prices) != 2 || body.Prices[0].Symbol != "BTC" || body.Prices[1].Symbol != "ETH" {
		t.Fatalf("unexpected prices: %+v", body.Prices)
	}
}

func TestGenerateResearchReport(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodGet, "/api/projects/ethereum/report", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var report domain.ResearchReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if report.Overview == "" || report.Outlook == "" {
		t.Fatalf("expected populated report: %+v", report)
	}
}

func TestCompareProjectsValidation(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodPost, "/api/compare", []byte(`{}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing names, got %d", w.Code)
	}
}

func TestCompareProjects(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodPost, "/api/compare", []byte(`{"names":["bitcoin","ethereum"]}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.ComparisonResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(result.Projects) != 2 || len(result.Rankings) != 6 {
		t.Fatalf("unexpected comparison: %+v", result)
	}
}

func TestAnalyzePortfolio(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodPost, "/api/portfolio", []byte(`{"assets":[{"symbol":"btc","amount":2}]}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.PortfolioResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if math.Abs(result.TotalValue-246.9) > 1e-9 {
		t.Fatalf("unexpected total value: %f", result.TotalValue)
	}
	if result.Assets[0].Allocation != 100 {
		t.Fatalf("expected single asset at 100%%, got %f", result.Assets[0].Allocation)
	}
}

func TestSearchWeb3Info(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodPost, "/api/search", []byte(`{"query":"uniswap","sources":["news","bogus"]}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Query   string                     `json:"query"`
		Results map[string]json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Results) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(body.Results))
	}
	var srcErr domain.SourceError
	if err := json.Unmarshal(body.Results["bogus"], &srcErr); err != nil {
		t.Fatalf("decode source error: %v", err)
	}
	if srcErr.Error != "Unsupported source: bogus" {
		t.Fatalf("unexpected error text: %q", srcErr.Error)
	}
}

func TestSearchWeb3InfoDefaultsSources(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodPost, "/api/search", []byte(`{"query":"uniswap"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Results map[string]json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, source := range []string{"news", "github", "twitter"} {
		if _, ok := body.Results[source]; !ok {
			t.Fatalf("expected default source %q, got %v", source, body.Results)
		}
	}
}

func TestGetUpcomingEvents(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodGet, "/api/events?category=hackathon&limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Category string         `json:"category"`
		Events   []domain.Event `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Category != "hackathon" || len(body.Events) != 2 {
		t.Fatalf("unexpected events response: %+v", body)
	}
}

func TestAPIKeyAuth(t *testing.T) {
	r := newTestRouter("secret")

	w := doRequest(r, http.MethodGet, "/api/prices/btc", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/prices/btc", nil)
	req.Header.Set("X-API-Key", "wrong")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with wrong key, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/prices/btc", nil)
	req.Header.Set("X-API-Key", "secret")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid key, got %d", w.Code)
	}

	// health stays open
	w = doRequest(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected health without key, got %d", w.Code)
	}
}

func TestFetchWebsiteContent(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, http.MethodGet, "/api/website?url=https://example.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var page domain.WebsiteContent
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if page.Content != "page text" {
		t.Fatalf("unexpected page: %+v", page)
	}

	w = doRequest(r, http.MethodGet, "/api/website", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without url, got %d", w.Code)
	}
}
