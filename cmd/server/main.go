package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"web3-scout/internal/bot"
	"web3-scout/internal/cache"
	"web3-scout/internal/config"
	"web3-scout/internal/fallback"
	"web3-scout/internal/fetcher"
	"web3-scout/internal/handler"
	"web3-scout/internal/mcpserver"
	"web3-scout/internal/provider"
	"web3-scout/internal/research"
	"web3-scout/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "web3-scout/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	startTelegramBotFunc   = bot.StartTelegramBot
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
	runMCPStdioFunc        = func(server *mcp.Server, ctx context.Context) {
		go func() {
			if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
				log.Printf("mcp stdio server stopped: %v", err)
			}
		}()
	}
)

// @title           Web3 Scout API
// @version         1.0
// @description     Research and data aggregation service for web3 projects.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Redis (optional; cache is disabled when unavailable)
	initRedisFunc(ctx, cfg.RedisURL)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Providers and the never-fails fetcher
	synth := fallback.NewSynthesizer(nil)
	var redisClient fetcher.RedisClient
	if cache.Client != nil {
		redisClient = cache.Client
	}
	dataFetcher := fetcher.New(
		tracer,
		log.Default(),
		provider.NewCoinGeckoProvider(tracer, cfg.CoinGeckoAPIKey),
		provider.NewGitHubProvider(tracer, cfg.GitHubToken),
		provider.NewNewsProvider(tracer, cfg.NewsFeeds),
		provider.NewExplorerProvider(tracer, cfg.ExplorerBaseURL),
		provider.NewWebpageProvider(tracer),
		synth,
		redisClient,
	)
	researchService := research.NewService(tracer, dataFetcher, synth)

	// Start Telegram bot
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(researchService)

	// MCP tool server, over the configured transport
	mcpServer := mcpserver.New(researchService)
	var mcpSrv *http.Server
	switch cfg.MCPTransport {
	case "http":
		mcpSrv = &http.Server{
			Addr:        fmt.Sprintf("%s:%d", cfg.MCPHTTPBind, cfg.MCPHTTPPort),
			Handler:     mcpserver.HTTPHandler(mcpServer, cfg.MCPAuthToken),
			ReadTimeout: time.Duration(cfg.MCPRequestTimeoutSecs) * time.Second,
		}
		go func() {
			log.Printf("MCP server listening on %s", mcpSrv.Addr)
			if err := startHTTPServerFunc(mcpSrv); err != nil && err != http.ErrServerClosed {
				log.Fatalf("mcp listen: %s\n", err)
			}
		}()
	default:
		runMCPStdioFunc(mcpServer, ctx)
	}

	// Create handlers and routes
	h := newHandlerFunc(tracer, researchService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("web3-scout"))

	h.RegisterRoutes(r, cfg.APIKey)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if mcpSrv != nil {
		if err := shutdownHTTPServerFunc(mcpSrv, shutdownCtx); err != nil {
			log.Printf("mcp server shutdown: %v", err)
		}
	}
	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
