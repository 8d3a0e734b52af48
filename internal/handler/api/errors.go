package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"StockSight/internal/domain/models"
	xhttp "StockSight/pkg/http"
)

// domainErrorResponse maps domain errors to HTTP responses: too little
// data for the requested windows is 422, degenerate input is 422 with the
// reason, anything else is treated as an upstream failure.
func domainErrorResponse(c echo.Context, err error) error {
	var insufficient *models.InsufficientDataError
	if errors.As(err, &insufficient) {
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableErrorf(
			"%s: need %d bars, got %d", insufficient.Op, insufficient.Need, insufficient.Got))
	}

	var dataErr *models.DataError
	if errors.As(err, &dataErr) {
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError(dataErr.Error()))
	}

	return xhttp.AppErrorResponse(c, xhttp.UpstreamError("data provider request failed"))
}
