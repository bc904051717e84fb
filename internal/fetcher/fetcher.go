// Package fetcher wraps each provider adapter with its fallback so every
// lookup resolves to a structurally complete record. Provider failures are
// logged and absorbed; they never propagate to callers.
package fetcher

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"web3-scout/internal/domain"
	"web3-scout/internal/fallback"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const cacheTTL = 90 * time.Second

type MarketProvider interface {
	FetchProject(ctx context.Context, id string) (*domain.ProjectInfo, error)
	FetchMarkets(ctx context.Context, ids []string) ([]*domain.PriceData, error)
}

type SourceHostProvider interface {
	FetchActivity(ctx context.Context, owner, repo string) (*domain.GitHubActivity, error)
	SearchRepositories(ctx context.Context, query string, limit int) ([]domain.RepoSummary, error)
}

type NewsProvider interface {
	FetchNews(ctx context.Context, project string, limit int) ([]domain.NewsItem, error)
}

type ChainProvider interface {
	FetchOnChain(ctx context.Context) (*domain.OnChainData, error)
}

type PageProvider interface {
	FetchPage(ctx context.Context, url string) (*domain.WebsiteContent, error)
}

// Logger is the injected observability collaborator; *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Fetcher resolves every lookup to a real or synthetic record. A nil redis
// client disables caching; a nil provider routes straight to the synthesizer.
type Fetcher struct {
	tracer trace.Tracer
	logger Logger

	market MarketProvider
	source SourceHostProvider
	news   NewsProvider
	chain  ChainProvider
	pages  PageProvider

	synth *fallback.Synthesizer
	redis RedisClient
}

func New(
	tracer trace.Tracer,
	logger Logger,
	market MarketProvider,
	source SourceHostProvider,
	news NewsProvider,
	chain ChainProvider,
	pages PageProvider,
	synth *fallback.Synthesizer,
	redisClient RedisClient,
) *Fetcher {
	return &Fetcher{
		tracer: tracer,
		logger: logger,
		market: market,
		source: source,
		news:   news,
		chain:  chain,
		pages:  pages,
		synth:  synth,
		redis:  redisClient,
	}
}

// ProjectInfo never fails: cached, fetched, or synthesized, in that order.
func (f *Fetcher) ProjectInfo(ctx context.Context, name string) *domain.ProjectInfo {
	_, span := f.tracer.Start(ctx, "fetcher.project-info")
	defer span.End()

	key := "project:" + strings.ToLower(strings.TrimSpace(name))
	var cached domain.ProjectInfo
	if f.readCache(ctx, key, &cached) {
		return &cached
	}

	if f.market != nil {
		info, err := f.market.FetchProject(ctx, name)
		if err == nil {
			f.writeCache(ctx, key, info)
			return info
		}
		f.logf("project info fallback for %q: %v", name, err)
	}
	return f.synth.ProjectInfo(name)
}

// PriceData never fails. Symbols double as market-data ids for the cache
// key; the provider resolves the id itself.
func (f *Fetcher) PriceData(ctx context.Context, symbol string) *domain.PriceData {
	_, span := f.tracer.Start(ctx, "fetcher.price-data")
	defer span.End()

	key := "price:" + strings.ToUpper(strings.TrimSpace(symbol))
	var cached domain.PriceData
	if f.readCache(ctx, key, &cached) {
		return &cached
	}

	if f.market != nil {
		rows, err := f.market.FetchMarkets(ctx, []string{symbol})
		if err == nil && len(rows) > 0 {
			f.writeCache(ctx, key, rows[0])
			return rows[0]
		}
		if err != nil {
			f.logf("price fallback for %q: %v", symbol, err)
		}
	}
	return f.synth.PriceData(symbol)
}

// PriceBatch resolves each symbol independently; one upstream failure only
// degrades its own entry. Results keep input order.
func (f *Fetcher) PriceBatch(ctx context.Context, symbols []string) []*domain.PriceData {
	ctx, span := f.tracer.Start(ctx, "fetcher.price-batch")
	defer span.End()

	result := make([]*domain.PriceData, 0, len(symbols))
	if f.market != nil {
		rows, err := f.market.FetchMarkets(ctx, symbols)
		if err == nil {
			bySymbol := make(map[string]*domain.PriceData, len(rows))
			for _, row := range rows {
				bySymbol[row.Symbol] = row
			}
			for _, symbol := range symbols {
				upper := strings.ToUpper(strings.TrimSpace(symbol))
				if row, ok := bySymbol[upper]; ok {
					f.writeCache(ctx, "price:"+upper, row)
					result = append(result, row)
					continue
				}
				result = append(result, f.synth.PriceData(symbol))
			}
			return result
		}
		f.logf("price batch fallback for %v: %v", symbols, err)
	}
	for _, symbol := range symbols {
		result = append(result, f.synth.PriceData(symbol))
	}
	return result
}

func (f *Fetcher) ProjectNews(ctx context.Context, project string, limit int) []domain.NewsItem {
	_, span := f.tracer.Start(ctx, "fetcher.project-news")
	defer span.End()

	if limit <= 0 {
		limit = 10
	}
	if f.news != nil {
		items, err := f.news.FetchNews(ctx, project, limit)
		if err == nil {
			return items
		}
		f.logf("news fallback for %q: %v", project, err)
	}
	return f.synth.News(project, limit)
}

func (f *Fetcher) OnChainData(ctx context.Context, project string) *domain.OnChainData {
	_, span := f.tracer.Start(ctx, "fetcher.onchain-data")
	defer span.End()

	if f.chain != nil {
		data, err := f.chain.FetchOnChain(ctx)
		if err == nil {
			return data
		}
		f.logf("onchain fallback for %q: %v", project, err)
	}
	return f.synth.OnChainData()
}

func (f *Fetcher) GitHubActivity(ctx context.Context, owner, repo string) *domain.GitHubActivity {
	_, span := f.tracer.Start(ctx, "fetcher.github-activity")
	defer span.End()

	if f.source != nil {
		activity, err := f.source.FetchActivity(ctx, owner, repo)
		if err == nil {
			return activity
		}
		f.logf("github activity fallback for %s/%s: %v", owner, repo, err)
	}
	return f.synth.GitHubActivity(owner, repo)
}

func (f *Fetcher) SearchRepositories(ctx context.Context, query string, limit int) []domain.RepoSummary {
	_, span := f.tracer.Start(ctx, "fetcher.search-repositories")
	defer span.End()

	if f.source != nil {
		repos, err := f.source.SearchRepositories(ctx, query, limit)
		if err == nil {
			return repos
		}
		f.logf("repository search fallback for %q: %v", query, err)
	}
	return f.synth.RepoSummaries(query, limit)
}

// WebsiteContent never fails either; when the page is unreachable the
// content field carries a placeholder notice.
func (f *Fetcher) WebsiteContent(ctx context.Context, url string) *domain.WebsiteContent {
	_, span := f.tracer.Start(ctx, "fetcher.website-content")
	defer span.End()

	if f.pages != nil {
		page, err := f.pages.FetchPage(ctx, url)
		if err == nil {
			return page
		}
		f.logf("website fallback for %q: %v", url, err)
	}
	return &domain.WebsiteContent{
		URL:       url,
		Content:   "Content unavailable: the page could not be fetched.",
		FetchedAt: time.Now().UTC(),
	}
}

func (f *Fetcher) readCache(ctx context.Context, key string, out any) bool {
	if f.redis == nil {
		return false
	}
	data, err := f.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		f.logf("redis cache read error: %v", err)
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (f *Fetcher) writeCache(ctx context.Context, key string, value any) {
	if f.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := f.redis.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		f.logf("redis cache write error for %s: %v", key, err)
	}
}

func (f *Fetcher) logf(format string, v ...any) {
	if f.logger != nil {
		f.logger.Printf(format, v...)
	}
}
