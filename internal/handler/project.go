package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetProjectInfo godoc
// @Summary      Get web3 project metadata
// @Description  Returns name, symbol, description, category, and links for a project
// @Tags         projects
// @Produce      json
// @Param        name  path  string  true  "Project name or id (e.g., ethereum)"
// @Success      200  {object}  domain.ProjectInfo
// @Failure      400  {object}  map[string]string
// @Router       /api/projects/{name} [get]
func (h *Handler) GetProjectInfo(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-project-info")
	defer span.End()

	name := strings.TrimSpace(c.Param("name"))
	span.SetAttributes(attribute.String("project", name))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name is required"})
		return
	}

	c.JSON(http.StatusOK, h.research.ProjectInfo(ctx, name))
}

// GetPriceData godoc
// @Summary      Get current price data for one asset
// @Description  Returns price, 24h change, market cap, and 24h volume
// @Tags         prices
// @Produce      json
// @Param        symbol  path  string  true  "Asset symbol (e.g., BTC)"
// @Success      200  {object}  domain.PriceData
// @Failure      400  {object}  map[string]string
// @Router       /api/prices/{symbol} [get]
func (h *Handler) GetPriceData(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-price-data")
	defer span.End()

	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	span.SetAttributes(attribute.String("symbol", symbol))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	c.JSON(http.StatusOK, h.research.PriceData(ctx, symbol))
}

// GetMultiplePrices godoc
// @Summary      Get current price data for several assets
// @Description  Returns a price snapshot per requested symbol, input order preserved
// @Tags         prices
// @Produce      json
// @Param        symbols  query  string  true  "Comma-separated symbols (e.g., BTC,ETH)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/prices [get]
func (h *Handler) GetMultiplePrices(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-multiple-prices")
	defer span.End()

	var symbols []string
	for _, symbol := range strings.Split(c.Query("symbols"), ",") {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": h.research.MultiplePrices(ctx, symbols)})
}

// GetProjectNews godoc
// @Summary      Get recent news for a project
// @Tags         projects
// @Produce      json
// @Param        name   path   string  true   "Project name"
// @Param        limit  query  int     false  "Max items (default 10, max 50)"  default(10)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/projects/{name}/news [get]
func (h *Handler) GetProjectNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-project-news")
	defer span.End()

	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name is required"})
		return
	}
	limit := 10
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	c.JSON(http.StatusOK, gin.H{"project": name, "news": h.research.ProjectNews(ctx, name, limit)})
}

// GetOnChainData godoc
// @Summary      Get 24h on-chain metrics for a project
// @Tags         projects
// @Produce      json
// @Param        name  path  string  true  "Project name"
// @Success      200  {object}  domain.OnChainData
// @Failure      400  {object}  map[string]string
// @Router       /api/projects/{name}/onchain [get]
func (h *Handler) GetOnChainData(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-onchain-data")
	defer span.End()

	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name is required"})
		return
	}

	c.JSON(http.StatusOK, h.research.OnChainData(ctx, name))
}

// GetGitHubActivity godoc
// @Summary      Get repository activity metrics
// @Tags         github
// @Produce      json
// @Param        owner  path  string  true  "Repository owner"
// @Param        repo   path  string  true  "Repository name"
// @Success      200  {object}  domain.GitHubActivity
// @Failure      400  {object}  map[string]string
// @Router       /api/github/{owner}/{repo} [get]
func (h *Handler) GetGitHubActivity(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-github-activity")
	defer span.End()

	owner := strings.TrimSpace(c.Param("owner"))
	repo := strings.TrimSpace(c.Param("repo"))
	span.SetAttributes(attribute.String("repo", owner+"/"+repo))
	if owner == "" || repo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner and repo are required"})
		return
	}

	c.JSON(http.StatusOK, h.research.GitHubActivity(ctx, owner, repo))
}

// FetchWebsiteContent godoc
// @Summary      Fetch a page and return its visible text
// @Tags         website
// @Produce      json
// @Param        url  query  string  true  "Page URL"
// @Success      200  {object}  domain.WebsiteContent
// @Failure      400  {object}  map[string]string
// @Router       /api/website [get]
func (h *Handler) FetchWebsiteContent(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.fetch-website-content")
	defer span.End()

	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, h.research.WebsiteContent(ctx, url))
}
