// Package messages serves the contact-message inbox. Unlike the content
// panels this one is read/delete only: there is no form and no reply.
package messages

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tmportfolio/admin-gateway/internal/auth"
	"github.com/tmportfolio/admin-gateway/internal/portfolio"
)

type Handler struct {
	resource *portfolio.Resource
}

func New(client *portfolio.Client) *Handler {
	return &Handler{resource: client.Resource("messages")}
}

func (h *Handler) Register(rg gin.IRouter) {
	rg.GET("/messages", h.list)
	rg.GET("/messages/:id", h.detail)
	rg.GET("/messages/:id/delete", h.confirmDelete)
	rg.POST("/messages/:id/delete", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	data := gin.H{
		"Active": "messages",
		"User":   auth.Name(c),
	}

	items, err := h.resource.List(c.Request.Context(), auth.BearerToken(c))
	if err != nil {
		log.Printf("[messages] list failed: %v", err)
		data["Error"] = "Could not load messages. Make sure the server is running and try again."
		c.HTML(http.StatusOK, "messages_list.tmpl", data)
		return
	}

	data["Items"] = items
	if c.Query("err") == "delete" {
		data["Error"] = "Error deleting message. The list is unchanged."
	}
	c.HTML(http.StatusOK, "messages_list.tmpl", data)
}

func (h *Handler) detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/messages")
		return
	}

	item, err := h.resource.Get(c.Request.Context(), auth.BearerToken(c), id)
	if err != nil {
		log.Printf("[messages] fetch %d failed: %v", id, err)
		c.Redirect(http.StatusSeeOther, "/messages")
		return
	}

	c.HTML(http.StatusOK, "message_detail.tmpl", gin.H{
		"Active": "messages",
		"User":   auth.Name(c),
		"Item":   item,
	})
}

func (h *Handler) confirmDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/messages")
		return
	}
	c.HTML(http.StatusOK, "panel_confirm.tmpl", gin.H{
		"Active":    "messages",
		"User":      auth.Name(c),
		"Title":     "Messages",
		"Prompt":    "Delete this message? This cannot be undone.",
		"ActionURL": "/messages/" + strconv.FormatInt(id, 10) + "/delete",
		"CancelURL": "/messages",
	})
}

// delete returns to the list afterwards, which also closes an open detail
// view of the deleted message.
func (h *Handler) delete(c *gin.Context) {
	if c.PostForm("confirm") != "yes" {
		c.Redirect(http.StatusSeeOther, "/messages")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/messages")
		return
	}

	if err := h.resource.Delete(c.Request.Context(), auth.BearerToken(c), id); err != nil {
		log.Printf("[messages] delete %d failed: %v", id, err)
		c.Redirect(http.StatusSeeOther, "/messages?err=delete")
		return
	}
	c.Redirect(http.StatusSeeOther, "/messages")
}
