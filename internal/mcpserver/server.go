// Package mcpserver exposes the research operations as Model Context
// Protocol tools so LLM agents can call them directly.
package mcpserver

import (
	"context"
	"net/http"
	"strings"

	"web3-scout/internal/domain"
	"web3-scout/internal/research"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type toolServer struct {
	research *research.Service
}

// New builds the MCP server with one tool per exposed operation. Tools never
// return protocol errors for upstream failures; degraded data comes back as
// a normal result, matching the HTTP surface.
func New(researchService *research.Service) *mcp.Server {
	s := &toolServer{research: researchService}

	server := mcp.NewServer(&mcp.Implementation{Name: "web3-scout", Version: "1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_project_info",
		Description: "Get metadata for a web3 project: name, symbol, description, category, and links.",
	}, s.getProjectInfo)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_price_data",
		Description: "Get current price, 24h change, market cap, and 24h volume for one asset.",
	}, s.getPriceData)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_multiple_prices",
		Description: "Get current price data for several assets at once.",
	}, s.getMultiplePrices)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_project_news",
		Description: "Get recent news items mentioning a project.",
	}, s.getProjectNews)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_onchain_data",
		Description: "Get 24h on-chain metrics for a project's network.",
	}, s.getOnChainData)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_github_activity",
		Description: "Get repository stars, forks, issues, weekly commits, and top contributors.",
	}, s.getGitHubActivity)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_website_content",
		Description: "Fetch a web page and return its visible text, truncated.",
	}, s.fetchWebsiteContent)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_research_report",
		Description: "Generate a six-section research report for a project.",
	}, s.generateResearchReport)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_projects",
		Description: "Compare projects across price, market cap, volume, change, addresses, and transactions.",
	}, s.compareProjects)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_portfolio",
		Description: "Value a set of holdings and derive allocation and aggregate 24h change.",
	}, s.analyzePortfolio)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_web3_info",
		Description: "Search news, github, and twitter sources for a query.",
	}, s.searchWeb3Info)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_social_sentiment",
		Description: "Get a synthetic social sentiment summary for a project.",
	}, s.analyzeSocialSentiment)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_upcoming_events",
		Description: "List upcoming ecosystem events, optionally filtered by category.",
	}, s.getUpcomingEvents)

	return server
}

// HTTPHandler wraps the server in the streamable HTTP transport, with
// optional bearer-token auth.
func HTTPHandler(server *mcp.Server, authToken string) http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	if authToken == "" {
		return handler
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provided := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if strings.TrimSpace(provided) != authToken {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	})
}

type projectArgs struct {
	ProjectName string `json:"project_name" jsonschema:"project name or id, e.g. ethereum"`
}

type symbolArgs struct {
	Symbol string `json:"symbol" jsonschema:"asset ticker symbol, e.g. BTC"`
}

type symbolsArgs struct {
	Symbols []string `json:"symbols" jsonschema:"asset ticker symbols"`
}

type newsArgs struct {
	ProjectName string `json:"project_name" jsonschema:"project name"`
	Limit       int    `json:"limit,omitempty" jsonschema:"max items, default 10"`
}

type repoArgs struct {
	Owner string `json:"owner" jsonschema:"repository owner"`
	Repo  string `json:"repo" jsonschema:"repository name"`
}

type urlArgs struct {
	URL string `json:"url" jsonschema:"page url to fetch"`
}

type compareArgs struct {
	ProjectNames []string `json:"project_names" jsonschema:"projects to compare"`
}

type portfolioArgs struct {
	Assets []domain.Holding `json:"assets" jsonschema:"holdings as symbol and amount pairs"`
}

type searchArgs struct {
	Query   string   `json:"query" jsonschema:"search query"`
	Sources []string `json:"sources,omitempty" jsonschema:"sources to search: news, github, twitter"`
}

type eventsArgs struct {
	Category string `json:"category,omitempty" jsonschema:"event category, all bypasses filtering"`
	Limit    int    `json:"limit,omitempty" jsonschema:"max events, default 10"`
}

func (s *toolServer) getProjectInfo(ctx context.Context, req *mcp.CallToolRequest, args projectArgs) (*mcp.CallToolResult, *domain.ProjectInfo, error) {
	return nil, s.research.ProjectInfo(ctx, args.ProjectName), nil
}

func (s *toolServer) getPriceData(ctx context.Context, req *mcp.CallToolRequest, args symbolArgs) (*mcp.CallToolResult, *domain.PriceData, error) {
	return nil, s.research.PriceData(ctx, args.Symbol), nil
}

type pricesResult struct {
	Prices []*domain.PriceData `json:"prices"`
}

func (s *toolServer) getMultiplePrices(ctx context.Context, req *mcp.CallToolRequest, args symbolsArgs) (*mcp.CallToolResult, pricesResult, error) {
	return nil, pricesResult{Prices: s.research.MultiplePrices(ctx, args.Symbols)}, nil
}

type newsResult struct {
	News []domain.NewsItem `json:"news"`
}

func (s *toolServer) getProjectNews(ctx context.Context, req *mcp.CallToolRequest, args newsArgs) (*mcp.CallToolResult, newsResult, error) {
	return nil, newsResult{News: s.research.ProjectNews(ctx, args.ProjectName, args.Limit)}, nil
}

func (s *toolServer) getOnChainData(ctx context.Context, req *mcp.CallToolRequest, args projectArgs) (*mcp.CallToolResult, *domain.OnChainData, error) {
	return nil, s.research.OnChainData(ctx, args.ProjectName), nil
}

func (s *toolServer) getGitHubActivity(ctx context.Context, req *mcp.CallToolRequest, args repoArgs) (*mcp.CallToolResult, *domain.GitHubActivity, error) {
	return nil, s.research.GitHubActivity(ctx, args.Owner, args.Repo), nil
}

func (s *toolServer) fetchWebsiteContent(ctx context.Context, req *mcp.CallToolRequest, args urlArgs) (*mcp.CallToolResult, *domain.WebsiteContent, error) {
	return nil, s.research.WebsiteContent(ctx, args.URL), nil
}

func (s *toolServer) generateResearchReport(ctx context.Context, req *mcp.CallToolRequest, args projectArgs) (*mcp.CallToolResult, *domain.ResearchReport, error) {
	return nil, s.research.GenerateResearchReport(ctx, args.ProjectName), nil
}

func (s *toolServer) compareProjects(ctx context.Context, req *mcp.CallToolRequest, args compareArgs) (*mcp.CallToolResult, *domain.ComparisonResult, error) {
	return nil, s.research.CompareProjects(ctx, args.ProjectNames), nil
}

func (s *toolServer) analyzePortfolio(ctx context.Context, req *mcp.CallToolRequest, args portfolioArgs) (*mcp.CallToolResult, *domain.PortfolioResult, error) {
	return nil, s.research.AnalyzePortfolio(ctx, args.Assets), nil
}

type searchResult struct {
	Results map[string]any `json:"results"`
}

func (s *toolServer) searchWeb3Info(ctx context.Context, req *mcp.CallToolRequest, args searchArgs) (*mcp.CallToolResult, searchResult, error) {
	sources := args.Sources
	if len(sources) == 0 {
		sources = []string{domain.SourceNews, domain.SourceGitHub, domain.SourceTwitter}
	}
	return nil, searchResult{Results: s.research.SearchWeb3Info(ctx, args.Query, sources)}, nil
}

func (s *toolServer) analyzeSocialSentiment(ctx context.Context, req *mcp.CallToolRequest, args projectArgs) (*mcp.CallToolResult, *domain.SentimentResult, error) {
	return nil, s.research.SocialSentiment(ctx, args.ProjectName), nil
}

type eventsResult struct {
	Events []domain.Event `json:"events"`
}

func (s *toolServer) getUpcomingEvents(ctx context.Context, req *mcp.CallToolRequest, args eventsArgs) (*mcp.CallToolResult, eventsResult, error) {
	return nil, eventsResult{Events: s.research.UpcomingEvents(ctx, args.Category, args.Limit)}, nil
}
