// Package settings manages the site's key/value settings. Only one key is
// exposed today: the CV download link shown on the portfolio's hero section.
package settings

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
	rg.GET("/settings", h.page)
	rg.POST("/settings/cv", h.save)
}

func (h *Handler) page(c *gin.Context) {
	data := gin.H{
		"Active": "settings",
		"User":   auth.Name(c),
	}

	value, err := h.client.SettingValue(c.Request.Context(), auth.BearerToken(c), portfolio.SettingKeyCVLink)
	if err != nil {
		log.Printf("[settings] load failed: %v", err)
		data["Error"] = "Could not load settings. Make sure the server is running and try again."
	}
	data["CVLink"] = value
	c.HTML(http.StatusOK, "settings.tmpl", data)
}

// save handles both actions of the CV form. "save" writes the link value;
// "upload" pushes the file to the backend and, unlike the content panels,
// persists the resulting URL immediately.
func (h *Handler) save(c *gin.Context) {
	token := auth.BearerToken(c)
	value := c.PostForm("cv_link")

	if c.PostForm("action") == "upload" {
		fileHeader, err := c.FormFile("cv_file")
		if err != nil {
			h.render(c, http.StatusBadRequest, value, "", "Choose a file to upload first.")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.render(c, http.StatusBadRequest, value, "", "Could not read the chosen file.")
			return
		}
		defer file.Close()

		url, err := h.client.Upload(c.Request.Context(), token, fileHeader.Filename, file)
		if err != nil {
			log.Printf("[settings] cv upload failed: %v", err)
			h.render(c, http.StatusBadGateway, value, "", "Upload failed. Please try again.")
			return
		}
		if err := h.client.PutSetting(c.Request.Context(), token, portfolio.SettingKeyCVLink, url); err != nil {
			log.Printf("[settings] cv save failed: %v", err)
			h.render(c, http.StatusBadGateway, url, "", "Error saving. Please try again.")
			return
		}
		h.render(c, http.StatusOK, url, "CV uploaded and saved! URL: "+url, "")
		return
	}

	if err := h.client.PutSetting(c.Request.Context(), token, portfolio.SettingKeyCVLink, value); err != nil {
		log.Printf("[settings] save failed: %v", err)
		h.render(c, http.StatusBadGateway, value, "", "Error saving. Please try again.")
		return
	}
	h.render(c, http.StatusOK, value, "CV link saved!", "")
}

func (h *Handler) render(c *gin.Context, status int, cvLink, success, errMsg string) {
	c.HTML(status, "settings.tmpl", gin.H{
		"Active":  "settings",
		"User":    auth.Name(c),
		"CVLink":  cvLink,
		"Success": success,
		"Error":   errMsg,
	})
}
