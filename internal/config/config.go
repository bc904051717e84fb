package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	CoinGeckoAPIKey string
	GitHubToken     string
	ExplorerBaseURL string
	NewsFeeds       []string
	RedisURL        string

	HTTPPort int
	APIKey   string

	MCPTransport          string
	MCPHTTPBind           string
	MCPHTTPPort           int
	MCPAuthToken          string
	MCPRequestTimeoutSecs int

	TelegramBotToken string
}

func Load() *Config {
	cfg := &Config{
		CoinGeckoAPIKey:  os.Getenv("COINGECKO_API_KEY"),
		GitHubToken:      os.Getenv("GITHUB_TOKEN"),
		ExplorerBaseURL:  strings.TrimSpace(os.Getenv("EXPLORER_BASE_URL")),
		RedisURL:         os.Getenv("REDIS_URL"),
		APIKey:           os.Getenv("API_KEY"),
		MCPAuthToken:     os.Getenv("MCP_AUTH_TOKEN"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.CoinGeckoAPIKey == "" {
		log.Println("Warning: COINGECKO_API_KEY not set, using unauthenticated free tier")
	}
	if cfg.GitHubToken == "" {
		log.Println("Warning: GITHUB_TOKEN not set, GitHub rate limits will be tight")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, provider cache disabled")
	}

	if v := strings.TrimSpace(os.Getenv("NEWS_FEEDS")); v != "" {
		for _, feed := range strings.Split(v, ",") {
			if feed = strings.TrimSpace(feed); feed != "" {
				cfg.NewsFeeds = append(cfg.NewsFeeds, feed)
			}
		}
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	cfg.MCPTransport = strings.ToLower(strings.TrimSpace(os.Getenv("MCP_TRANSPORT")))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		log.Printf("Warning: unsupported MCP_TRANSPORT=%q, defaulting to stdio", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	cfg.MCPHTTPBind = strings.TrimSpace(os.Getenv("MCP_HTTP_BIND"))
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}

	cfg.MCPHTTPPort = 8090
	if v := strings.TrimSpace(os.Getenv("MCP_HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPHTTPPort = n
		}
	}

	cfg.MCPRequestTimeoutSecs = 30
	if v := strings.TrimSpace(os.Getenv("MCP_REQUEST_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRequestTimeoutSecs = n
		}
	}

	return cfg
}
