package handler

import (
	"fmt"
	"net/http"
	"time"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/service"
	"bnihub.com/chaptertracker/pkg/apperror"
	"bnihub.com/chaptertracker/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type InsightHandler struct {
	insightService service.InsightService
	redisClient    *redis.Client
	generateLimit  time.Duration
}

func NewInsightHandler(insightService service.InsightService, redisClient *redis.Client, generateLimit time.Duration) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		redisClient:    redisClient,
		generateLimit:  generateLimit,
	}
}

func (h *InsightHandler) Generate(c *gin.Context) {
	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.redisClient, requestActor(c), "generate_insights", h.generateLimit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if !allowed {
		response.ResponseError(c, fmt.Errorf("%w: insight generation already running", apperror.ErrRateLimitExceeded))
		return
	}

	count, err := h.insightService.Generate(c.Request.Context())
	if err != nil {
		_ = service.ClearRateLimit(c.Request.Context(), h.redisClient, requestActor(c), "generate_insights")
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateInsightsResponse{
		Success:         true,
		InsightsCreated: count,
	})
}

func (h *InsightHandler) GetOverview(c *gin.Context) {
	overview, err := h.insightService.GetOverview(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
