package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"COINGECKO_API_KEY", "GITHUB_TOKEN", "EXPLORER_BASE_URL", "NEWS_FEEDS",
		"REDIS_URL", "HTTP_PORT", "API_KEY", "MCP_TRANSPORT", "MCP_HTTP_BIND",
		"MCP_HTTP_PORT", "MCP_AUTH_TOKEN", "MCP_REQUEST_TIMEOUT_SECS", "TELEGRAM_BOT_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.HTTPPort != 8080 {
		t.Fatalf("expected default http port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.MCPTransport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.MCPTransport)
	}
	if cfg.MCPHTTPBind != "127.0.0.1" || cfg.MCPHTTPPort != 8090 {
		t.Fatalf("unexpected MCP http defaults: %s:%d", cfg.MCPHTTPBind, cfg.MCPHTTPPort)
	}
	if cfg.MCPRequestTimeoutSecs != 30 {
		t.Fatalf("expected default timeout 30, got %d", cfg.MCPRequestTimeoutSecs)
	}
	if len(cfg.NewsFeeds) != 0 {
		t.Fatalf("expected no configured feeds, got %v", cfg.NewsFeeds)
	}
}

func TestLoadWithEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("COINGECKO_API_KEY", "cg-key")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("NEWS_FEEDS", "https://a.example/rss, https://b.example/rss ,")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("MCP_TRANSPORT", "HTTP")
	t.Setenv("MCP_HTTP_PORT", "9090")

	cfg := Load()
	if cfg.CoinGeckoAPIKey != "cg-key" || cfg.GitHubToken != "gh-token" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.NewsFeeds) != 2 || cfg.NewsFeeds[1] != "https://b.example/rss" {
		t.Fatalf("unexpected feeds: %v", cfg.NewsFeeds)
	}
	if cfg.HTTPPort != 9000 || cfg.MCPHTTPPort != 9090 {
		t.Fatalf("unexpected ports: %d, %d", cfg.HTTPPort, cfg.MCPHTTPPort)
	}
	if cfg.MCPTransport != "http" {
		t.Fatalf("expected lowercased transport, got %q", cfg.MCPTransport)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "bad")
	t.Setenv("MCP_TRANSPORT", "carrier-pigeon")
	t.Setenv("MCP_REQUEST_TIMEOUT_SECS", "-1")

	cfg := Load()
	if cfg.HTTPPort != 8080 {
		t.Fatalf("invalid port should fall back to default, got %d", cfg.HTTPPort)
	}
	if cfg.MCPTransport != "stdio" {
		t.Fatalf("invalid transport should fall back to stdio, got %q", cfg.MCPTransport)
	}
	if cfg.MCPRequestTimeoutSecs != 30 {
		t.Fatalf("invalid timeout should fall back to default, got %d", cfg.MCPRequestTimeoutSecs)
	}
}
