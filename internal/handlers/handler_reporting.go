package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/middleware"
)

// reportingHandler exposes read-only financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/balances", h.balances)
		reports.GET("/project-spend", h.projectSpend)
		reports.GET("/monthly-summary", h.monthlySummary)
	}
}

// balances godoc
// @Summary Account balances report
// @Description Lists every active account with its balance, subtotals per account type and a grand total.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalancesReportResponse
// @Security BearerAuth
// @Router /reports/balances [get]
func (h *reportingHandler) balances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.Balances(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build balances report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// projectSpend godoc
// @Summary Project spend report
// @Description Compares each project's budget figures against the actual sum of its paid expenses.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ProjectSpendResponse
// @Security BearerAuth
// @Router /reports/project-spend [get]
func (h *reportingHandler) projectSpend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.ProjectSpend(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build project spend report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// monthlySummary godoc
// @Summary Monthly income/expense summary
// @Tags reports
// @Produce json
// @Param from query string true "Inclusive lower bound (YYYY-MM-DD)"
// @Param to query string true "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Security BearerAuth
// @Router /reports/monthly-summary [get]
func (h *reportingHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthlySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.MonthlySummary(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build monthly summary")
		return
	}
	c.JSON(http.StatusOK, report)
}
