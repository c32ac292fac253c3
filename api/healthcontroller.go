package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes registers health check endpoints.
func RegisterHealthRoutes(r *gin.Engine, deps Deps) {
	r.GET("/api/health", func(c *gin.Context) {
		resp := gin.H{"status": "ok", "catalog": "loaded", "records": 0}
		if deps.Catalog == nil {
			resp["catalog"] = "failed"
		} else {
			resp["records"] = deps.Catalog.Len()
		}
		c.JSON(http.StatusOK, resp)
	})
}
