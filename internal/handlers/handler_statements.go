package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
	"github.com/djoufack/cashpilot/internal/dto"
	"github.com/djoufack/cashpilot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statementHandler serves the accounting statements and VAT declarations.
type statementHandler struct {
	statementService   portssvc.StatementService
	declarationService portssvc.DeclarationService
}

func newStatementHandler(ss portssvc.StatementService, ds portssvc.DeclarationService) *statementHandler {
	return &statementHandler{
		statementService:   ss,
		declarationService: ds,
	}
}

// registerStatementRoutes registers the read-only reporting routes
func registerStatementRoutes(rg *gin.RouterGroup, ss portssvc.StatementService, ds portssvc.DeclarationService) {
	h := newStatementHandler(ss, ds)

	rg.GET("/statements", h.getStatements)
	rg.GET("/declarations/vat", h.getVATDeclaration)
}

// getStatements godoc
// @Summary Build accounting statements
// @Description Builds the balance sheet, income statement, VAT breakdown and tax estimate for a period
// @Tags statements
// @Produce json
// @Param startDate query string true "Period start (YYYY-MM-DD)"
// @Param endDate query string true "Period end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.StatementsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to build statements"
// @Security BearerAuth
// @Router /statements [get]
func (h *statementHandler) getStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, logger, err)
		return
	}
	period, err := query.Period()
	if err != nil {
		respondServiceError(c, logger, err, "build statements")
		return
	}

	logger = logger.With(slog.String("period", period.String()))
	logger.Info("Received request to build statements")

	report, err := h.statementService.BuildStatements(c.Request.Context(), userID, period)
	if err != nil {
		respondServiceError(c, logger, err, "build statements")
		return
	}

	logger.Info("Statements built", slog.Bool("balanced", report.BalanceSheet.Balanced))
	c.JSON(http.StatusOK, report)
}

// getVATDeclaration godoc
// @Summary Generate a VAT declaration
// @Description Renders the VAT return of a country (FR: CA3, BE: Intervat) for a period
// @Tags declarations
// @Produce json
// @Param startDate query string true "Period start (YYYY-MM-DD)"
// @Param endDate query string true "Period end (YYYY-MM-DD), inclusive"
// @Param country query string true "ISO country code" Enums(FR, BE)
// @Success 200 {object} dto.DeclarationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid period or country"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Unsupported country"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate declaration"
// @Security BearerAuth
// @Router /declarations/vat [get]
func (h *statementHandler) getVATDeclaration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var query dto.DeclarationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, logger, err)
		return
	}
	period, err := query.Period()
	if err != nil {
		respondServiceError(c, logger, err, "generate declaration")
		return
	}

	logger = logger.With(slog.String("period", period.String()), slog.String("country", query.Country))
	logger.Info("Received request to generate VAT declaration")

	decl, err := h.declarationService.GenerateVATDeclaration(c.Request.Context(), userID, period, query.Country)
	if err != nil {
		respondServiceError(c, logger, err, "generate declaration")
		return
	}

	c.JSON(http.StatusOK, decl)
}
