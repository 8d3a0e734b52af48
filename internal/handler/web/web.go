// Package web serves the single-page dashboard that consumes the JSON API.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// Handler serves the embedded dashboard assets.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	fileServer := http.FileServer(http.FS(sub))

	e.GET("/", echo.WrapHandler(fileServer))
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", fileServer)))
}
