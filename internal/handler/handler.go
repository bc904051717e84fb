package handler

import (
	"web3-scout/internal/research"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer   trace.Tracer
	research *research.Service
}

func New(tracer trace.Tracer, researchService *research.Service) *Handler {
	return &Handler{
		tracer:   tracer,
		research: researchService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, apiKey string) {
	r.GET("/health", h.Health)

	api := r.Group("/api", APIKeyAuth(apiKey))
	api.GET("/projects/:name", h.GetProjectInfo)
	api.GET("/projects/:name/news", h.GetProjectNews)
	api.GET("/projects/:name/onchain", h.GetOnChainData)
	api.GET("/projects/:name/report", h.GenerateResearchReport)
	api.GET("/projects/:name/sentiment", h.GetSocialSentiment)
	api.GET("/prices", h.GetMultiplePrices)
	api.GET("/prices/:symbol", h.GetPriceData)
	api.GET("/github/:owner/:repo", h.GetGitHubActivity)
	api.GET("/website", h.FetchWebsiteContent)
	api.GET("/events", h.GetUpcomingEvents)
	api.POST("/compare", h.CompareProjects)
	api.POST("/portfolio", h.AnalyzePortfolio)
	api.POST("/search", h.SearchWeb3Info)
}
