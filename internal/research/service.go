// Package research composes fetcher results into derived outputs: reports,
// comparisons, portfolio breakdowns, and multi-source search. Independent
// fetches fan out concurrently and always join; a failing branch degrades
// to synthetic data inside its own fetcher call, so no branch can abort a
// sibling and no operation fails outward.
package research

import (
	"context"
	"strings"

	"web3-scout/internal/domain"
	"web3-scout/internal/fallback"

	"go.opentelemetry.io/otel/trace"
)

// DataFetcher is the always-succeeds lookup surface the aggregator composes.
type DataFetcher interface {
	ProjectInfo(ctx context.Context, name string) *domain.ProjectInfo
	PriceData(ctx context.Context, symbol string) *domain.PriceData
	PriceBatch(ctx context.Context, symbols []string) []*domain.PriceData
	ProjectNews(ctx context.Context, project string, limit int) []domain.NewsItem
	OnChainData(ctx context.Context, project string) *domain.OnChainData
	GitHubActivity(ctx context.Context, owner, repo string) *domain.GitHubActivity
	SearchRepositories(ctx context.Context, query string, limit int) []domain.RepoSummary
	WebsiteContent(ctx context.Context, url string) *domain.WebsiteContent
}

type Service struct {
	tracer  trace.Tracer
	fetcher DataFetcher
	synth   *fallback.Synthesizer
}

func NewService(tracer trace.Tracer, f DataFetcher, synth *fallback.Synthesizer) *Service {
	return &Service{tracer: tracer, fetcher: f, synth: synth}
}

// Single-fetch operations delegate straight to the fetcher.

func (s *Service) ProjectInfo(ctx context.Context, name string) *domain.ProjectInfo {
	return s.fetcher.ProjectInfo(ctx, name)
}

func (s *Service) PriceData(ctx context.Context, symbol string) *domain.PriceData {
	return s.fetcher.PriceData(ctx, symbol)
}

func (s *Service) MultiplePrices(ctx context.Context, symbols []string) []*domain.PriceData {
	return s.fetcher.PriceBatch(ctx, symbols)
}

func (s *Service) ProjectNews(ctx context.Context, name string, limit int) []domain.NewsItem {
	return s.fetcher.ProjectNews(ctx, name, limit)
}

func (s *Service) OnChainData(ctx context.Context, name string) *domain.OnChainData {
	return s.fetcher.OnChainData(ctx, name)
}

func (s *Service) GitHubActivity(ctx context.Context, owner, repo string) *domain.GitHubActivity {
	return s.fetcher.GitHubActivity(ctx, owner, repo)
}

func (s *Service) WebsiteContent(ctx context.Context, url string) *domain.WebsiteContent {
	return s.fetcher.WebsiteContent(ctx, url)
}

// SocialSentiment is synthetic only; there is no social upstream.
func (s *Service) SocialSentiment(ctx context.Context, name string) *domain.SentimentResult {
	_, span := s.tracer.Start(ctx, "research.social-sentiment")
	defer span.End()
	return s.synth.Sentiment(name)
}

// ownerRepoFor derives the source-hosting coordinates from a project's
// repository URL, defaulting to name/name when the URL is unusable.
func ownerRepoFor(info *domain.ProjectInfo, projectName string) (string, string) {
	if owner, repo, ok := splitRepoPath(info.GitHubRepo); ok {
		return owner, repo
	}
	id := strings.ToLower(strings.TrimSpace(projectName))
	id = strings.Join(strings.Fields(id), "-")
	return id, id
}

// splitRepoPath takes the last two path segments of a repository URL.
func splitRepoPath(repoURL string) (owner, repo string, ok bool) {
	trimmed := strings.Trim(strings.TrimSpace(repoURL), "/")
	if trimmed == "" {
		return "", "", false
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return "", "", false
	}
	owner = parts[len(parts)-2]
	repo = strings.TrimSuffix(parts[len(parts)-1], ".git")
	if owner == "" || repo == "" || strings.Contains(owner, ":") {
		return "", "", false
	}
	return owner, repo, true
}
