package analytics

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmportfolio/admin-gateway/internal/auth"
	"github.com/tmportfolio/admin-gateway/internal/portfolio"
)

type Handler struct {
	client *portfolio.Client
}

func New(client *portfolio.Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) Register(rg gin.IRouter) {
	rg.GET("/analytics", h.page)
}

// page fetches one precomputed snapshot per view. Refresh is a page reload.
func (h *Handler) page(c *gin.Context) {
	data := gin.H{
		"Active": "analytics",
		"User":   auth.Name(c),
	}

	snap, err := h.client.Analytics(c.Request.Context(), auth.BearerToken(c))
	if err != nil {
		log.Printf("[analytics] load failed: %v", err)
		data["Error"] = "Could not load analytics. Make sure the server is running and the API URL is correct."
		c.HTML(http.StatusOK, "analytics.tmpl", data)
		return
	}

	data["View"] = BuildView(snap)
	c.HTML(http.StatusOK, "analytics.tmpl", data)
}
