package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/djoufack/cashpilot/internal/core/domain"
	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
	"github.com/djoufack/cashpilot/internal/dto"
	"github.com/djoufack/cashpilot/internal/middleware"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

// reconciliationHandler triggers automatic bank reconciliation. Concurrent
// requests of one user share a single run.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationService
	defaultThreshold      float64
	inflight              singleflight.Group
}

func newReconciliationHandler(rs portssvc.ReconciliationService, defaultThreshold float64) *reconciliationHandler {
	return &reconciliationHandler{
		reconciliationService: rs,
		defaultThreshold:      defaultThreshold,
	}
}

// registerReconciliationRoutes registers the reconciliation trigger behind the given extra middleware
func registerReconciliationRoutes(rg *gin.RouterGroup, rs portssvc.ReconciliationService, defaultThreshold float64, mw ...gin.HandlerFunc) {
	h := newReconciliationHandler(rs, defaultThreshold)

	chain := append(mw, h.reconcile)
	rg.POST("/reconciliation", chain...)
}

// reconcile godoc
// @Summary Reconcile bank transactions
// @Description Matches unlinked incoming bank transactions to open invoices and marks matched invoices paid
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param request body dto.ReconcileRequest false "Optional confidence threshold (0..1)"
// @Success 200 {object} dto.ReconcileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid threshold"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to reconcile"
// @Security BearerAuth
// @Router /reconciliation [post]
func (h *reconciliationHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, logger, err)
		return
	}
	threshold := h.defaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	logger = logger.With(slog.Float64("threshold", threshold))
	logger.Info("Received request to reconcile bank transactions")

	v, err, shared := h.inflight.Do(userID, func() (any, error) {
		return h.reconciliationService.Reconcile(c.Request.Context(), userID, threshold)
	})
	if err != nil {
		respondServiceError(c, logger, err, "reconcile")
		return
	}
	result := v.(*domain.ReconciliationResult)

	logger.Info("Reconciliation finished",
		slog.Int("matched", result.Matched),
		slog.Int("failed", result.Failed),
		slog.Bool("shared_run", shared))
	c.JSON(http.StatusOK, dto.ToReconcileResponse(result))
}
