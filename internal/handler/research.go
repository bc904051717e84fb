package handler

import (
	"net/http"
	"strconv"
	"strings"

	"web3-scout/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GenerateResearchReport godoc
// @Summary      Generate a six-section research report for a project
// @Tags         research
// @Produce      json
// @Param        name  path  string  true  "Project name"
// @Success      200  {object}  domain.ResearchReport
// @Failure      400  {object}  map[string]string
// @Router       /api/projects/{name}/report [get]
func (h *Handler) GenerateResearchReport(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.generate-research-report")
	defer span.End()

	name := strings.TrimSpace(c.Param("name"))
	span.SetAttributes(attribute.String("project", name))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name is required"})
		return
	}

	c.JSON(http.StatusOK, h.research.GenerateResearchReport(ctx, name))
}

type compareRequest struct {
	Names []string `json:"names" binding:"required"`
}

// CompareProjects godoc
// @Summary      Compare projects across six fixed metrics
// @Tags         research
// @Accept       json
// @Produce      json
// @Param        request  body  compareRequest  true  "Project names"
// @Success      200  {object}  domain.ComparisonResult
// @Failure      400  {object}  map[string]string
// @Router       /api/compare [post]
func (h *Handler) CompareProjects(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.compare-projects")
	defer span.End()

	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Names) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "names array is required"})
		return
	}

	c.JSON(http.StatusOK, h.research.CompareProjects(ctx, req.Names))
}

type portfolioRequest struct {
	Assets []domain.Holding `json:"assets" binding:"required"`
}

// AnalyzePortfolio godoc
// @Summary      Value a portfolio and derive allocation and 24h change
// @Tags         research
// @Accept       json
// @Produce      json
// @Param        request  body  portfolioRequest  true  "Holdings"
// @Success      200  {object}  domain.PortfolioResult
// @Failure      400  {object}  map[string]string
// @Router       /api/portfolio [post]
func (h *Handler) AnalyzePortfolio(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.analyze-portfolio")
	defer span.End()

	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Assets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assets array is required"})
		return
	}

	c.JSON(http.StatusOK, h.research.AnalyzePortfolio(ctx, req.Assets))
}

type searchRequest struct {
	Query   string   `json:"query" binding:"required"`
	Sources []string `json:"sources"`
}

// SearchWeb3Info godoc
// @Summary      Search news, github, and twitter for a query
// @Description  Unrecognized sources yield an inline error entry, never a call failure
// @Tags         research
// @Accept       json
// @Produce      json
// @Param        request  body  searchRequest  true  "Query and sources"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/search [post]
func (h *Handler) SearchWeb3Info(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.search-web3-info")
	defer span.End()

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	if len(req.Sources) == 0 {
		req.Sources = []string{domain.SourceNews, domain.SourceGitHub, domain.SourceTwitter}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   req.Query,
		"results": h.research.SearchWeb3Info(ctx, req.Query, req.Sources),
	})
}

// GetSocialSentiment godoc
// @Summary      Get synthetic social sentiment for a project
// @Tags         research
// @Produce      json
// @Param        name  path  string  true  "Project name"
// @Success      200  {object}  domain.SentimentResult
// @Failure      400  {object}  map[string]string
// @Router       /api/projects/{name}/sentiment [get]
func (h *Handler) GetSocialSentiment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-social-sentiment")
	defer span.End()

	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name is required"})
		return
	}

	c.JSON(http.StatusOK, h.research.SocialSentiment(ctx, name))
}

// GetUpcomingEvents godoc
// @Summary      List upcoming ecosystem events
// @Tags         events
// @Produce      json
// @Param        category  query  string  false  "Category filter (all bypasses)"  default(all)
// @Param        limit     query  int     false  "Max events (default 10)"         default(10)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/events [get]
func (h *Handler) GetUpcomingEvents(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-upcoming-events")
	defer span.End()

	category := c.DefaultQuery("category", "all")
	limit := 10
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"events":   h.research.UpcomingEvents(ctx, category, limit),
	})
}
