package research

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"web3-scout/internal/domain"
)

const reportNewsLimit = 10

// GenerateResearchReport builds the six-section narrative for one project.
// Project info resolves first because every other fetch keys off its fields;
// the remaining four fetches are independent of each other and run
// concurrently.
func (s *Service) GenerateResearchReport(ctx context.Context, name string) *domain.ResearchReport {
	ctx, span := s.tracer.Start(ctx, "research.generate-report")
	defer span.End()

	info := s.fetcher.ProjectInfo(ctx, name)
	owner, repo := ownerRepoFor(info, name)

	var (
		price *domain.PriceData
		news  []domain.NewsItem
		chain *domain.OnChainData
		gh    *domain.GitHubActivity
	)
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		price = s.fetcher.PriceData(ctx, info.Symbol)
	}()
	go func() {
		defer wg.Done()
		news = s.fetcher.ProjectNews(ctx, name, reportNewsLimit)
	}()
	go func() {
		defer wg.Done()
		chain = s.fetcher.OnChainData(ctx, name)
	}()
	go func() {
		defer wg.Done()
		gh = s.fetcher.GitHubActivity(ctx, owner, repo)
	}()
	wg.Wait()

	return &domain.ResearchReport{
		ProjectName:         info.Name,
		Overview:            overviewSection(info),
		MarketAnalysis:      marketSection(info, price),
		NewsHighlights:      newsSection(info, news),
		OnChainActivity:     onChainSection(info, chain),
		DevelopmentActivity: developmentSection(info, gh),
		Outlook:             outlookSection(info, price, gh),
		GeneratedAt:         time.Now().UTC(),
	}
}

func overviewSection(info *domain.ProjectInfo) string {
	return fmt.Sprintf("%s (%s) is a %s project. %s Website: %s. Twitter: @%s.",
		info.Name, info.Symbol, info.Category, info.Description, info.WebsiteURL, info.TwitterHandle)
}

func marketSection(info *domain.ProjectInfo, price *domain.PriceData) string {
	return fmt.Sprintf("%s trades at $%.2f with a 24h change of %.2f%%. Market cap stands at $%.0f on $%.0f of 24h volume.",
		info.Symbol, price.Price, price.Change24h, price.MarketCap, price.Volume24h)
}

func newsSection(info *domain.ProjectInfo, news []domain.NewsItem) string {
	if len(news) == 0 {
		return fmt.Sprintf("No recent news coverage found for %s.", info.Name)
	}
	top := news
	if len(top) > 3 {
		top = top[:3]
	}
	titles := make([]string, 0, len(top))
	for _, item := range top {
		titles = append(titles, item.Title)
	}
	return fmt.Sprintf("Recent coverage of %s includes: %s.", info.Name, strings.Join(titles, "; "))
}

func onChainSection(info *domain.ProjectInfo, chain *domain.OnChainData) string {
	return fmt.Sprintf("On-chain, %s saw %d active addresses and %d transactions over 24h, with $%.0f of total value locked and %d gas used.",
		info.Name, chain.ActiveAddresses24h, chain.Transactions24h, chain.TotalValueLocked, chain.GasUsed24h)
}

func developmentSection(info *domain.ProjectInfo, gh *domain.GitHubActivity) string {
	commits := 0
	for _, n := range gh.WeeklyCommitActivity {
		commits += n
	}
	top := "n/a"
	if len(gh.TopContributors) > 0 {
		top = gh.TopContributors[0].Username
	}
	return fmt.Sprintf("Development on %s remains active: %d stars, %d forks, %d open issues, and %d commits over the last 8 weeks. Top contributor: %s.",
		info.Name, gh.Stars, gh.Forks, gh.OpenIssues, commits, top)
}

func outlookSection(info *domain.ProjectInfo, price *domain.PriceData, gh *domain.GitHubActivity) string {
	momentum := "flat"
	if price.Change24h > 1 {
		momentum = "positive"
	} else if price.Change24h < -1 {
		momentum = "negative"
	}
	commits := 0
	for _, n := range gh.WeeklyCommitActivity {
		commits += n
	}
	pace := "steady"
	if commits > 200 {
		pace = "accelerating"
	} else if commits < 40 {
		pace = "slowing"
	}
	return fmt.Sprintf("Short-term price momentum for %s is %s while developer activity looks %s. As always, this summary is informational and not investment advice.",
		info.Name, momentum, pace)
}
