package fallback

import (
	"math/rand"
	"testing"
)

func TestProjectInfoDerivesFromName(t *testing.T) {
	s := NewSynthesizer(rand.NewSource(1))
	info := s.ProjectInfo("  Ethereum  Classic ")
	if info.Name != "Ethereum Classic" {
		t.Fatalf("unexpected name: %q", info.Name)
	}
	if info.Symbol != "ETH" {
		t.Fatalf("expected first three letters uppercased, got %q", info.Symbol)
	}
	if info.WebsiteURL != "https://ethereum-classic.io" {
		t.Fatalf("unexpected website: %q", info.WebsiteURL)
	}
	if info.Category != "Cryptocurrency" {
		t.Fatalf("unexpected category: %q", info.Category)
	}
	if info.Description == "" || info.GitHubRepo == "" || info.TwitterHandle == "" {
		t.Fatalf("expected all fields populated: %+v", info)
	}
}

func TestPriceDataWithinBounds(t *testing.T) {
	s := NewSynthesizer(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		price := s.PriceData("btc")
		if price.Symbol != "BTC" {
			t.Fatalf("expected uppercased symbol, got %q", price.Symbol)
		}
		if price.Price < 1000 || price.Price >= 2000 {
			t.Fatalf("price out of bounds: %f", price.Price)
		}
		if price.Change24h < -5 || price.Change24h >= 5 {
			t.Fatalf("change out of bounds: %f", price.Change24h)
		}
		if price.MarketCap < 1e9 || price.MarketCap >= 1.1e10 {
			t.Fatalf("market cap out of bounds: %f", price.MarketCap)
		}
		if price.Volume24h < 1e8 || price.Volume24h >= 6e8 {
			t.Fatalf("volume out of bounds: %f", price.Volume24h)
		}
		if price.LastUpdated.IsZero() {
			t.Fatal("expected timestamp set")
		}
	}
}

func TestPriceDataReproducibleWithSeed(t *testing.T) {
	a := NewSynthesizer(rand.NewSource(7)).PriceData("eth")
	b := NewSynthesizer(rand.NewSource(7)).PriceData("eth")
	if a.Price != b.Price || a.Change24h != b.Change24h {
		t.Fatalf("expected identical values for same seed: %+v vs %+v", a, b)
	}
}

func TestNewsShape(t *testing.T) {
	s := NewSynthesizer(rand.NewSource(1))
	items := s.News("solana", 3)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Title == "" || item.URL == "" || item.Summary == "" || item.Source == "" {
			t.Fatalf("expected complete item: %+v", item)
		}
		if item.PublishedAt.IsZero() {
			t.Fatal("expected publish date set")
		}
	}
}

func TestGitHubActivityShape(t *testing.T) {
	s := NewSynthesizer(rand.NewSource(1))
	activity := s.GitHubActivity("uniswap", "v3-core")
	if len(activity.WeeklyCommitActivity) != 8 {
		t.Fatalf("expected 8 weeks, got %d", len(activity.WeeklyCommitActivity))
	}
	if len(activity.TopContributors) != 5 {
		t.Fatalf("expected 5 contributors, got %d", len(activity.TopContributors))
	}
	prev := activity.TopContributors[0].Contributions
	for _, c := range activity.TopContributors[1:] {
		if c.Contributions > prev {
			t.Fatalf("expected contributions descending: %+v", activity.TopContributors)
		}
		prev = c.Contributions
	}
}

func TestSentimentLabelMatchesScore(t *testing.T) {
	s := NewSynthesizer(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		result := s.Sentiment("arbitrum")
		switch {
		case result.SentimentScore > 0.2:
			if result.OverallSentiment != "bullish" {
				t.Fatalf("score %f labelled %q", result.SentimentScore, result.OverallSentiment)
			}
		case result.SentimentScore < -0.2:
			if result.OverallSentiment != "bearish" {
				t.Fatalf("score %f labelled %q", result.SentimentScore, result.OverallSentiment)
			}
		default:
			if result.OverallSentiment != "neutral" {
				t.Fatalf("score %f labelled %q", result.SentimentScore, result.OverallSentiment)
			}
		}
		if len(result.TrendLast7Days) != 7 {
			t.Fatalf("expected 7 trend points, got %d", len(result.TrendLast7Days))
		}
		for _, v := range result.TrendLast7Days {
			if v < -1 || v > 1 {
				t.Fatalf("trend point out of bounds: %f", v)
			}
		}
		if len(result.PositiveThemes) == 0 || len(result.NegativeThemes) == 0 {
			t.Fatal("expected themes populated")
		}
	}
}

func TestSymbolFor(t *testing.T) {
	tests := map[string]string{
		"ethereum":  "ETH",
		"sol":       "SOL",
		"ab":        "AB",
		"42-tokens": "TOK",
		"123":       "XXX",
	}
	for in, expected := range tests {
		if got := symbolFor(in); got != expected {
			t.Fatalf("symbolFor(%q) expected %q, got %q", in, expected, got)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Ethereum Classic": "ethereum-classic",
		"  BTC  ":          "btc",
		"":                 "unknown",
	}
	for in, expected := range tests {
		if got := slug(in); got != expected {
			t.Fatalf("slug(%q) expected %q, got %q", in, expected, got)
		}
	}
}
