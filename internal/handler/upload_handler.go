package handler

import (
	"fmt"
	"net/http"
	"time"

	"bnihub.com/chaptertracker/internal/service"
	"bnihub.com/chaptertracker/pkg/apperror"
	"bnihub.com/chaptertracker/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type UploadHandler struct {
	uploadService service.UploadService
	redisClient   *redis.Client
	uploadLimit   time.Duration
}

func NewUploadHandler(uploadService service.UploadService, redisClient *redis.Client, uploadLimit time.Duration) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		redisClient:   redisClient,
		uploadLimit:   uploadLimit,
	}
}

func (h *UploadHandler) ParsePreview(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	defer file.Close()

	preview, err := h.uploadService.ParsePreview(c.Request.Context(), file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *UploadHandler) UploadWeekly(c *gin.Context) {
	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.redisClient, requestActor(c), "upload_weekly", h.uploadLimit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if !allowed {
		response.ResponseError(c, fmt.Errorf("%w: upload already in progress, try again shortly", apperror.ErrRateLimitExceeded))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	defer file.Close()

	input := service.WeeklyUploadInput{
		ActivityDate: c.PostForm("activityDate"),
		UploadedBy:   c.PostForm("uploadedBy"),
		MappingJSON:  c.PostForm("mapping"),
	}

	result, err := h.uploadService.UploadWeekly(c.Request.Context(), file, input)
	if err != nil {
		// Free the slot so a corrected sheet can be retried immediately.
		_ = service.ClearRateLimit(c.Request.Context(), h.redisClient, requestActor(c), "upload_weekly")
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// requestActor keys rate limits by authenticated user, or client address
// when the route is reached unauthenticated.
func requestActor(c *gin.Context) string {
	if userID, err := response.GetUserID(c); err == nil {
		return userID.String()
	}
	return c.ClientIP()
}
