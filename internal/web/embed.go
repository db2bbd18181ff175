package web

import (
	"embed"
	"io/fs"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// RegisterStaticRoutes serves the embedded marketing page for everything
// that is not an API route.
func RegisterStaticRoutes(r *gin.Engine) {
	r.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}

		indexHTML, err := fs.ReadFile(staticFS, "static/index.html")
		if err != nil {
			c.String(500, "failed to read index.html")
			return
		}
		c.Data(200, "text/html; charset=utf-8", indexHTML)
	})
}
