package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "MR.travel API is running"})
}

func (h *Handler) Routes(c *gin.Context) {
	if h.router == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "router not ready")
		return
	}

	routes := h.router.Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	respondList(c, out)
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "not_found", "Route not found")
}

// Recovered answers a request whose handler panicked.
func Recovered(c *gin.Context, recovered any) {
	c.Abort()
	respondError(c, http.StatusInternalServerError, "internal_error", "Something went wrong!")
}
