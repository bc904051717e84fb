package research

import (
	"context"
	"strings"
	"testing"

	"web3-scout/internal/domain"
)

func TestGenerateResearchReportAllSectionsPopulated(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{
		infos: map[string]*domain.ProjectInfo{
			"ethereum": {
				Name:          "Ethereum",
				Symbol:        "ETH",
				Category:      "Smart Contract Platform",
				Description:   "Programmable blockchain.",
				WebsiteURL:    "https://ethereum.org",
				TwitterHandle: "ethereum",
				GitHubRepo:    "https://github.com/ethereum/go-ethereum",
			},
		},
		prices: map[string]*domain.PriceData{
			"ETH": {Symbol: "ETH", Price: 3000, Change24h: 2.4, MarketCap: 4e11, Volume24h: 1.2e10},
		},
		news: map[string][]domain.NewsItem{
			"ethereum": {
				{Title: "Ethereum ships upgrade"},
				{Title: "Staking yields shift"},
				{Title: "L2 volumes climb"},
				{Title: "Fourth item never quoted"},
			},
		},
		chains: map[string]*domain.OnChainData{
			"ethereum": {ActiveAddresses24h: 500000, Transactions24h: 1200000, TotalValueLocked: 5e10, GasUsed24h: 1e11},
		},
		repos: map[string]*domain.GitHubActivity{
			"ethereum/go-ethereum": {
				Stars:                45000,
				Forks:                19000,
				OpenIssues:           300,
				WeeklyCommitActivity: []int{30, 30, 30, 30, 30, 30, 30, 30},
				TopContributors:      []domain.Contributor{{Username: "karalabe", Contributions: 2000}},
			},
		},
	}
	svc := newTestService(f)

	report := svc.GenerateResearchReport(context.Background(), "ethereum")
	if report.ProjectName != "Ethereum" {
		t.Fatalf("unexpected project name: %q", report.ProjectName)
	}
	sections := map[string]string{
		"overview":    report.Overview,
		"market":      report.MarketAnalysis,
		"news":        report.NewsHighlights,
		"onchain":     report.OnChainActivity,
		"development": report.DevelopmentActivity,
		"outlook":     report.Outlook,
	}
	for name, text := range sections {
		if strings.TrimSpace(text) == "" {
			t.Fatalf("section %s is empty", name)
		}
	}
	if report.GeneratedAt.IsZero() {
		t.Fatal("expected generation timestamp")
	}

	if !strings.Contains(report.MarketAnalysis, "3000.00") {
		t.Fatalf("expected price interpolated: %q", report.MarketAnalysis)
	}
	if !strings.Contains(report.NewsHighlights, "Ethereum ships upgrade") {
		t.Fatalf("expected top headline quoted: %q", report.NewsHighlights)
	}
	if strings.Contains(report.NewsHighlights, "Fourth item") {
		t.Fatalf("expected only top three headlines: %q", report.NewsHighlights)
	}
	if !strings.Contains(report.DevelopmentActivity, "240 commits") {
		t.Fatalf("expected commit sum interpolated: %q", report.DevelopmentActivity)
	}
	if !strings.Contains(report.DevelopmentActivity, "karalabe") {
		t.Fatalf("expected top contributor named: %q", report.DevelopmentActivity)
	}
	if !strings.Contains(report.Outlook, "positive") || !strings.Contains(report.Outlook, "accelerating") {
		t.Fatalf("unexpected outlook: %q", report.Outlook)
	}
}

func TestGenerateResearchReportDerivedCoordinates(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{
		infos: map[string]*domain.ProjectInfo{
			"newcoin": {Name: "Newcoin", Symbol: "NEW"},
		},
		repos: map[string]*domain.GitHubActivity{
			"newcoin/newcoin": {
				Stars:                77,
				WeeklyCommitActivity: []int{1, 1, 1, 1, 1, 1, 1, 1},
			},
		},
	}
	svc := newTestService(f)

	report := svc.GenerateResearchReport(context.Background(), "newcoin")
	if !strings.Contains(report.DevelopmentActivity, "77 stars") {
		t.Fatalf("expected name/name repo used when no URL is known: %q", report.DevelopmentActivity)
	}
}

func TestOutlookBuckets(t *testing.T) {
	info := &domain.ProjectInfo{Name: "X"}
	flat := outlookSection(info, &domain.PriceData{Change24h: 0.5}, &domain.GitHubActivity{WeeklyCommitActivity: []int{10, 10, 10, 10, 10, 10, 10, 10}})
	if !strings.Contains(flat, "flat") || !strings.Contains(flat, "steady") {
		t.Fatalf("unexpected flat outlook: %q", flat)
	}
	negative := outlookSection(info, &domain.PriceData{Change24h: -3}, &domain.GitHubActivity{WeeklyCommitActivity: []int{1, 1, 1, 1, 1, 1, 1, 1}})
	if !strings.Contains(negative, "negative") || !strings.Contains(negative, "slowing") {
		t.Fatalf("unexpected negative outlook: %q", negative)
	}
}
