package domain

import "time"

// ProjectInfo describes a web3 project as reported by the market-data provider.
type ProjectInfo struct {
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	WebsiteURL    string    `json:"website_url"`
	TwitterHandle string    `json:"twitter_handle"`
	GitHubRepo    string    `json:"github_repo"`
	LastUpdated   time.Time `json:"last_updated"`
}

// PriceData is a point-in-time market snapshot for one asset.
type PriceData struct {
	Symbol      string    `json:"symbol"`
	Price       float64   `json:"price"`
	Change24h   float64   `json:"change_24h"`
	MarketCap   float64   `json:"market_cap"`
	Volume24h   float64   `json:"volume_24h"`
	LastUpdated time.Time `json:"last_updated"`
}

type NewsItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Summary     string    `json:"summary"`
}

type OnChainData struct {
	ActiveAddresses24h int64     `json:"active_addresses_24h"`
	Transactions24h    int64     `json:"transactions_24h"`
	TotalValueLocked   float64   `json:"total_value_locked"`
	GasUsed24h         int64     `json:"gas_used_24h"`
	LastUpdated        time.Time `json:"last_updated"`
}

type Contributor struct {
	Username      string `json:"username"`
	Contributions int    `json:"contributions"`
}

// GitHubActivity carries repository health metrics. WeeklyCommitActivity
// always holds exactly 8 entries (most recent week last); TopContributors
// holds at most 5.
type GitHubActivity struct {
	Stars                int           `json:"stars"`
	Forks                int           `json:"forks"`
	OpenIssues           int           `json:"open_issues"`
	LastUpdated          time.Time     `json:"last_updated"`
	WeeklyCommitActivity []int         `json:"weekly_commit_activity"`
	TopContributors      []Contributor `json:"top_contributors"`
}

// RepoSummary is one row of a repository search result.
type RepoSummary struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	URL         string `json:"url"`
}

type WebsiteContent struct {
	URL       string    `json:"url"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ResearchReport is the derived narrative output of the report operation.
// Every field is populated; the interpolated data may be synthetic when an
// upstream was unavailable.
type ResearchReport struct {
	ProjectName         string    `json:"project_name"`
	Overview            string    `json:"overview"`
	MarketAnalysis      string    `json:"market_analysis"`
	NewsHighlights      string    `json:"news_highlights"`
	OnChainActivity     string    `json:"onchain_activity"`
	DevelopmentActivity string    `json:"development_activity"`
	Outlook             string    `json:"outlook"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// ProjectMetrics is the per-project row of a comparison.
type ProjectMetrics struct {
	Name               string  `json:"name"`
	Symbol             string  `json:"symbol"`
	Price              float64 `json:"price"`
	MarketCap          float64 `json:"market_cap"`
	Volume24h          float64 `json:"volume_24h"`
	Change24h          float64 `json:"change_24h"`
	ActiveAddresses24h int64   `json:"active_addresses_24h"`
	Transactions24h    int64   `json:"transactions_24h"`
}

// ComparisonResult holds per-project metrics in input order plus a rank
// table: metric name -> project name -> 1-based rank.
type ComparisonResult struct {
	Projects   []ProjectMetrics          `json:"projects"`
	Rankings   map[string]map[string]int `json:"rankings"`
	ComparedAt time.Time                 `json:"compared_at"`
}

// Holding is the caller-supplied portfolio input.
type Holding struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
}

type PortfolioAsset struct {
	Symbol     string  `json:"symbol"`
	Amount     float64 `json:"amount"`
	Price      float64 `json:"price"`
	Value      float64 `json:"value"`
	Allocation float64 `json:"allocation"`
	Change24h  float64 `json:"change_24h"`
}

type PortfolioResult struct {
	Assets           []PortfolioAsset `json:"assets"`
	TotalValue       float64          `json:"total_value"`
	TotalChange24h   float64          `json:"total_change_24h"`
	PercentChange24h float64          `json:"percent_change_24h"`
	AnalyzedAt       time.Time        `json:"analyzed_at"`
}

type ThemeWeight struct {
	Theme  string  `json:"theme"`
	Weight float64 `json:"weight"`
}

type SentimentResult struct {
	ProjectName      string        `json:"project_name"`
	OverallSentiment string        `json:"overall_sentiment"`
	SentimentScore   float64       `json:"sentiment_score"`
	TweetVolume      int           `json:"tweet_volume"`
	TrendLast7Days   []float64     `json:"trend_last_7_days"`
	PositiveThemes   []ThemeWeight `json:"positive_themes"`
	NegativeThemes   []ThemeWeight `json:"negative_themes"`
	GeneratedAt      time.Time     `json:"generated_at"`
}

type Tweet struct {
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	Likes       int       `json:"likes"`
	Retweets    int       `json:"retweets"`
	PublishedAt time.Time `json:"published_at"`
}

type Event struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
}

// SourceError is the inline branch value returned for an unrecognized
// search source. It replaces the branch result, never the whole call.
type SourceError struct {
	Error string `json:"error"`
}

// Search sources recognized by the search operation.
const (
	SourceNews    = "news"
	SourceGitHub  = "github"
	SourceTwitter = "twitter"
)

// Comparison metric names. Rank tables contain exactly these keys.
const (
	MetricPrice           = "price"
	MetricMarketCap       = "market_cap"
	MetricVolume24h       = "volume_24h"
	MetricChange24h       = "change_24h"
	MetricActiveAddresses = "active_addresses_24h"
	MetricTransactions    = "transactions_24h"
)

// ComparisonMetrics lists the fixed metrics every comparison ranks, in the
// order they appear in responses.
var ComparisonMetrics = []string{
	MetricPrice,
	MetricMarketCap,
	MetricVolume24h,
	MetricChange24h,
	MetricActiveAddresses,
	MetricTransactions,
}
