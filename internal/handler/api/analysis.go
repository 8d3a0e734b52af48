// Package api exposes the dashboard's JSON endpoints over Echo.
package api

import (
	"github.com/labstack/echo/v4"

	"StockSight/internal/domain/models"
	domrepo "StockSight/internal/domain/repository"
	"StockSight/internal/usecase"
	xhttp "StockSight/pkg/http"
	xlogger "StockSight/pkg/logger"
)

// AnalysisHandler serves the per-symbol analysis and history endpoints.
type AnalysisHandler struct {
	logger *xlogger.Logger
	uc     *usecase.AnalysisUseCase
}

func NewAnalysisHandler(logger *xlogger.Logger, uc *usecase.AnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/analyze", h.Analyze)
	g.GET("/history", h.History)
}

func (h *AnalysisHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	report, err := h.uc.Analyze(c.Request().Context(), usecase.AnalyzeParams{
		Symbol:      req.Symbol,
		Period:      domrepo.NormalizePeriod(req.Period),
		WithProfile: true,
		WithNews:    req.News,
	})
	if err != nil {
		h.logger.Error("analyze usecase error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return domainErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, report)
}

func (h *AnalysisHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	series, err := h.uc.History(c.Request().Context(), req.Symbol, domrepo.NormalizePeriod(req.Period))
	if err != nil {
		h.logger.Error("history usecase error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return domainErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, series)
}
