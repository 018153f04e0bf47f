// Package dashboard serves the landing page: one count card per collection
// plus the visitor totals.
package dashboard

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
	rg.GET("/", h.page)
}

type card struct {
	Label string
	Link  string
	Count int
}

// page degrades per card: a failed fetch shows zero for that collection and
// an inline notice, without taking the whole page down.
func (h *Handler) page(c *gin.Context) {
	token := auth.BearerToken(c)
	ctx := c.Request.Context()

	failed := false
	count := func(name string) int {
		items, err := h.client.Resource(name).List(ctx, token)
		if err != nil {
			log.Printf("[dashboard] count %s failed: %v", name, err)
			failed = true
			return 0
		}
		return len(items)
	}

	cards := []card{
		{Label: "Projects", Link: "/projects", Count: count("projects")},
		{Label: "Skills", Link: "/skills", Count: count("skills")},
		{Label: "Experiences", Link: "/experiences", Count: count("experiences")},
		{Label: "Blog Posts", Link: "/posts", Count: count("posts")},
		{Label: "Messages", Link: "/messages", Count: count("messages")},
	}

	totalVisitors, todayVisitors := 0, 0
	if snap, err := h.client.Analytics(ctx, token); err != nil {
		log.Printf("[dashboard] analytics failed: %v", err)
		failed = true
	} else {
		totalVisitors, todayVisitors = snap.Total, snap.Today
	}

	data := gin.H{
		"Active": "dashboard",
		"User":   auth.Name(c),
		"Cards":  cards,
		"Total":  totalVisitors,
		"Today":  todayVisitors,
	}
	if failed {
		data["Error"] = "Some counts could not be loaded and show as zero."
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", data)
}
