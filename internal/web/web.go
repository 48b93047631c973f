// Package web holds the embedded HTML templates and the shared error pages.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates parses every embedded page template. Each page is a standalone
// template addressed by file name (e.g. "createUser.tmpl").
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))
}

// isJSON mirrors the content-type check used for API clients: negotiation is
// driven by the request body type, not the Accept header.
func isJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "application/json")
}

// NotFound renders the 404 page, or a JSON error for JSON clients.
func NotFound(c *gin.Context) {
	if isJSON(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not find resource."})
		return
	}
	c.HTML(http.StatusNotFound, "404.tmpl", nil)
}

// ServerError logs the failure and renders the generic 500 page. No internal
// detail reaches the client.
func ServerError(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("handler failure")

	if isJSON(c) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong."})
		return
	}
	c.HTML(http.StatusInternalServerError, "500.tmpl", nil)
}
