package api

import (
	"github.com/labstack/echo/v4"

	"StockSight/internal/domain/models"
	"StockSight/internal/usecase"
	xhttp "StockSight/pkg/http"
	xlogger "StockSight/pkg/logger"
)

// ScreenHandler serves the undervalued-stock screening endpoint.
type ScreenHandler struct {
	logger *xlogger.Logger
	uc     *usecase.ScreeningUseCase
}

func NewScreenHandler(logger *xlogger.Logger, uc *usecase.ScreeningUseCase) *ScreenHandler {
	return &ScreenHandler{logger: logger, uc: uc}
}

func (h *ScreenHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/screen", h.Screen)
}

func (h *ScreenHandler) Screen(c echo.Context) error {
	req := &models.ScreenRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	results, err := h.uc.Screen(c.Request().Context(), usecase.ScreenParams{
		Symbols: req.Tickers,
		Limit:   req.Limit,
	})
	if err != nil {
		h.logger.Error("screen usecase error", xlogger.Error(err))
		return domainErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, results, int64(len(results)))
}
