package handler

import (
	"net/http"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/model"
	"bnihub.com/chaptertracker/internal/service"
	"bnihub.com/chaptertracker/pkg/response"
	"bnihub.com/chaptertracker/pkg/validator"
	"github.com/gin-gonic/gin"
)

type MappingHandler struct {
	mappingService service.MappingService
}

func NewMappingHandler(mappingService service.MappingService) *MappingHandler {
	return &MappingHandler{
		mappingService: mappingService,
	}
}

func (h *MappingHandler) SaveMapping(c *gin.Context) {
	var input dto.SaveMappingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	template, err := h.mappingService.SaveTemplate(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": template})
}

func (h *MappingHandler) ListMappings(c *gin.Context) {
	uploadType := c.DefaultQuery("uploadType", model.UploadTypeWeekly)

	templates, err := h.mappingService.ListTemplates(c.Request.Context(), uploadType)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": templates})
}
