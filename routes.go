package main

import (
	"io/fs"
	"net/http"
	"path"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/biancatraining/promenade/internal/view"
)

// Setup all routes
func setupRoutes(r *gin.Engine, page *view.Renderer, logger *log.Logger) {
	r.Use(requestID(), requestLogger(logger), gin.Recovery())
	r.SetHTMLTemplate(page.Template())

	// Embedded stylesheet and reveal script, file by file so the directory is never listed
	assets := view.Static()
	entries, err := fs.ReadDir(assets, ".")
	if err != nil {
		logger.Fatal("failed to read embedded assets", "error", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		r.StaticFileFS(path.Join(view.AssetPrefix, e.Name()), e.Name(), http.FS(assets))
	}

	// Resume page
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, view.TemplateName, page.Page())
	})

	// Read-only copy of the rendered content
	r.GET("/api/resume", func(c *gin.Context) {
		c.JSON(http.StatusOK, page.Resume())
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
