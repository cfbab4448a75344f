package handler

import (
	"net/http"
	"strconv"
	"time"

	"bnihub.com/chaptertracker/internal/isoweek"
	"bnihub.com/chaptertracker/internal/service"
	"bnihub.com/chaptertracker/pkg/response"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func (h *ReportHandler) GetWeeklyReports(c *gin.Context) {
	year := queryInt(c, "year", time.Now().UTC().Year())

	reports, err := h.reportService.GetWeeklyReports(c.Request.Context(), year)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports})
}

func (h *ReportHandler) GetIndustryReport(c *gin.Context) {
	year := queryInt(c, "year", time.Now().UTC().Year())
	weekNumber := queryIntPtr(c, "weekNumber")

	report, err := h.reportService.GetIndustryReport(c.Request.Context(), weekNumber, year)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) GetMemberWeekReport(c *gin.Context) {
	currentYear, currentWeek := isoweek.Of(time.Now().UTC())
	year := queryInt(c, "year", currentYear)
	weekNumber := queryInt(c, "weekNumber", currentWeek)

	summaries, err := h.reportService.GetMemberWeekReport(c.Request.Context(), weekNumber, year)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summaries})
}

func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	year := queryInt(c, "year", time.Now().UTC().Year())
	weekNumber := queryIntPtr(c, "weekNumber")

	summary, err := h.reportService.GetDashboardSummary(c.Request.Context(), weekNumber, year)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	return fallback
}

func queryIntPtr(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
