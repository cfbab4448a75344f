package handler

import (
	"net/http"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/service"
	"bnihub.com/chaptertracker/pkg/response"
	"bnihub.com/chaptertracker/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TermHandler struct {
	termService service.TermService
}

func NewTermHandler(termService service.TermService) *TermHandler {
	return &TermHandler{
		termService: termService,
	}
}

func (h *TermHandler) ListTerms(c *gin.Context) {
	terms, err := h.termService.GetAllTerms(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": terms})
}

func (h *TermHandler) CreateTerm(c *gin.Context) {
	var input dto.CreateTermRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	term, err := h.termService.CreateTerm(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": term})
}

func (h *TermHandler) UpdateTerm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid term id"})
		return
	}

	var input dto.UpdateTermRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	term, err := h.termService.UpdateTerm(c.Request.Context(), id, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": term})
}

func (h *TermHandler) DeleteTerm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid term id"})
		return
	}

	if err := h.termService.DeleteTerm(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Term deleted"})
}
