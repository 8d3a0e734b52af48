package api

import (
	"github.com/labstack/echo/v4"

	"StockSight/internal/domain/models"
	"StockSight/internal/usecase"
	xhttp "StockSight/pkg/http"
	xlogger "StockSight/pkg/logger"
)

// NewsHandler serves the per-symbol headline endpoint.
type NewsHandler struct {
	logger *xlogger.Logger
	uc     *usecase.NewsUseCase
}

func NewNewsHandler(logger *xlogger.Logger, uc *usecase.NewsUseCase) *NewsHandler {
	return &NewsHandler{logger: logger, uc: uc}
}

func (h *NewsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/news", h.News)
}

func (h *NewsHandler) News(c echo.Context) error {
	req := &models.NewsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	items, err := h.uc.Headlines(c.Request().Context(), usecase.NewsParams{
		Symbol:    req.Symbol,
		Limit:     req.Limit,
		Summarize: req.Summarize,
	})
	if err != nil {
		h.logger.Error("news usecase error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return domainErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, items, int64(len(items)))
}
