package panels

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tmportfolio/admin-gateway/internal/auth"
	"github.com/tmportfolio/admin-gateway/internal/portfolio"
)

// Handler serves one collection's screens. All five content panels are
// instances of this type with different descriptors.
type Handler struct {
	desc     Descriptor
	resource *portfolio.Resource
	client   *portfolio.Client
	sessions *auth.Store
}

func New(desc Descriptor, client *portfolio.Client, sessions *auth.Store) *Handler {
	return &Handler{
		desc:     desc,
		resource: client.Resource(desc.Slug),
		client:   client,
		sessions: sessions,
	}
}

// Register mounts the panel's routes on an authenticated router group.
func (h *Handler) Register(rg gin.IRouter) {
	base := "/" + h.desc.Slug
	rg.GET(base, h.list)
	rg.GET(base+"/new", h.form)
	rg.GET(base+"/:id/edit", h.form)
	rg.POST(base+"/save", h.save)
	rg.GET(base+"/:id/delete", h.confirmDelete)
	rg.POST(base+"/:id/delete", h.delete)
}

// RegisterAll mounts every generic panel.
func RegisterAll(rg gin.IRouter, client *portfolio.Client, sessions *auth.Store) {
	for _, desc := range All() {
		New(desc, client, sessions).Register(rg)
	}
}

type row struct {
	ID    int64
	Cells []string
}

func (h *Handler) list(c *gin.Context) {
	data := gin.H{
		"Active":   h.desc.Slug,
		"User":     auth.Name(c),
		"Title":    h.desc.Title,
		"Singular": h.desc.Singular,
		"Columns":  h.columnLabels(),
	}

	items, err := h.resource.List(c.Request.Context(), auth.BearerToken(c))
	if err != nil {
		// List-load failures are always surfaced inline; the page stays
		// interactive so the operator can retry.
		log.Printf("[%s] list failed: %v", h.desc.Slug, err)
		data["Error"] = loadErrorMessage(err, h.desc.Title)
		c.HTML(http.StatusOK, "panel_list.tmpl", data)
		return
	}

	rows := make([]row, 0, len(items))
	for _, item := range items {
		cells := make([]string, 0, len(h.desc.Columns))
		for _, col := range h.desc.Columns {
			cells = append(cells, item.String(col))
		}
		rows = append(rows, row{ID: item.ID(), Cells: cells})
	}
	data["Rows"] = rows
	if msg := c.Query("err"); msg == "delete" {
		data["Error"] = "Error deleting " + strings.ToLower(h.desc.Singular) + ". The list is unchanged."
	}
	c.HTML(http.StatusOK, "panel_list.tmpl", data)
}

type fieldView struct {
	Field
	Value string
}

// form renders the create or edit screen. Edit mode seeds the fields with
// the record's current values fetched fresh from the backend.
func (h *Handler) form(c *gin.Context) {
	values := map[string]string{}
	for _, f := range h.desc.Fields {
		values[f.Name] = f.Default
	}

	var id int64
	if rawID := c.Param("id"); rawID != "" {
		parsed, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/"+h.desc.Slug)
			return
		}
		item, err := h.resource.Get(c.Request.Context(), auth.BearerToken(c), parsed)
		if err != nil {
			log.Printf("[%s] fetch %d failed: %v", h.desc.Slug, parsed, err)
			c.Redirect(http.StatusSeeOther, "/"+h.desc.Slug)
			return
		}
		id = parsed
		for _, f := range h.desc.Fields {
			values[f.Name] = item.String(f.Name)
		}
	}

	h.renderForm(c, http.StatusOK, id, values, "")
}

// renderForm issues a fresh one-time form token each time, including on
// re-render after a failed save.
func (h *Handler) renderForm(c *gin.Context, status int, id int64, values map[string]string, errMsg string) {
	formToken, err := h.sessions.IssueFormToken(c.Request.Context(), auth.SessionID(c))
	if err != nil {
		log.Printf("[%s] form token issue failed: %v", h.desc.Slug, err)
		c.HTML(http.StatusInternalServerError, "panel_list.tmpl", gin.H{
			"Active": h.desc.Slug, "User": auth.Name(c),
			"Title": h.desc.Title, "Singular": h.desc.Singular,
			"Columns": h.columnLabels(),
			"Error":   "Something went wrong. Please try again.",
		})
		return
	}

	fields := make([]fieldView, 0, len(h.desc.Fields))
	for _, f := range h.desc.Fields {
		fields = append(fields, fieldView{Field: f, Value: values[f.Name]})
	}

	c.HTML(status, "panel_form.tmpl", gin.H{
		"Active":    h.desc.Slug,
		"User":      auth.Name(c),
		"Title":     h.desc.Title,
		"Singular":  h.desc.Singular,
		"Slug":      h.desc.Slug,
		"Fields":    fields,
		"IsEdit":    id != 0,
		"ID":        id,
		"FormToken": formToken,
		"HasUpload": h.desc.HasUpload(),
		"Error":     errMsg,
	})
}

// save handles both form actions: "save" writes the entity, "upload" only
// proxies the file and writes the returned URL into the target field — the
// operator still has to save afterwards.
func (h *Handler) save(c *gin.Context) {
	var id int64
	if rawID := c.PostForm("id"); rawID != "" {
		id, _ = strconv.ParseInt(rawID, 10, 64)
	}

	values := map[string]string{}
	for _, f := range h.desc.Fields {
		values[f.Name] = c.PostForm(f.Name)
	}

	ok, err := h.sessions.ConsumeFormToken(c.Request.Context(), auth.SessionID(c), c.PostForm("form_token"))
	if err != nil {
		log.Printf("[%s] form token check failed: %v", h.desc.Slug, err)
		h.renderForm(c, http.StatusInternalServerError, id, values, "Error saving. Please try again.")
		return
	}
	if !ok {
		// Spent or missing token: a duplicate submit. Nothing reached the
		// backend; hand back a fresh form.
		h.renderForm(c, http.StatusConflict, id, values, "This form was already submitted. Please review and try again.")
		return
	}

	if c.PostForm("action") == "upload" {
		h.upload(c, id, values)
		return
	}

	for _, f := range h.desc.Fields {
		if f.Required && strings.TrimSpace(values[f.Name]) == "" {
			h.renderForm(c, http.StatusBadRequest, id, values, f.Label+" is required.")
			return
		}
	}

	payload := portfolio.Record{}
	for name, value := range values {
		payload[name] = value
	}

	token := auth.BearerToken(c)
	if id != 0 {
		err = h.resource.Update(c.Request.Context(), token, id, payload)
	} else {
		err = h.resource.Create(c.Request.Context(), token, payload)
	}
	if err != nil {
		// Backend validation detail is deliberately not surfaced; the form
		// stays open with the submitted values.
		log.Printf("[%s] save failed: %v", h.desc.Slug, err)
		h.renderForm(c, http.StatusBadGateway, id, values, "Error saving. Please try again.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+h.desc.Slug)
}

func (h *Handler) upload(c *gin.Context, id int64, values map[string]string) {
	target := h.desc.UploadField()
	if target == "" {
		h.renderForm(c, http.StatusBadRequest, id, values, "This panel does not accept uploads.")
		return
	}

	fileHeader, err := c.FormFile("upload_file")
	if err != nil {
		h.renderForm(c, http.StatusBadRequest, id, values, "Choose a file to upload first.")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.renderForm(c, http.StatusBadRequest, id, values, "Could not read the chosen file.")
		return
	}
	defer file.Close()

	url, err := h.client.Upload(c.Request.Context(), auth.BearerToken(c), fileHeader.Filename, file)
	if err != nil {
		log.Printf("[%s] upload failed: %v", h.desc.Slug, err)
		h.renderForm(c, http.StatusBadGateway, id, values, "Upload failed. Please try again.")
		return
	}

	values[target] = url
	h.renderForm(c, http.StatusOK, id, values, "")
}

func (h *Handler) confirmDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/"+h.desc.Slug)
		return
	}
	c.HTML(http.StatusOK, "panel_confirm.tmpl", gin.H{
		"Active":    h.desc.Slug,
		"User":      auth.Name(c),
		"Title":     h.desc.Title,
		"Prompt":    "Delete this " + strings.ToLower(h.desc.Singular) + "? This cannot be undone.",
		"ActionURL": "/" + h.desc.Slug + "/" + strconv.FormatInt(id, 10) + "/delete",
		"CancelURL": "/" + h.desc.Slug,
	})
}

// delete requires the confirmation flag; without it no backend request is
// issued at all.
func (h *Handler) delete(c *gin.Context) {
	if c.PostForm("confirm") != "yes" {
		c.Redirect(http.StatusSeeOther, "/"+h.desc.Slug)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/"+h.desc.Slug)
		return
	}

	if err := h.resource.Delete(c.Request.Context(), auth.BearerToken(c), id); err != nil {
		log.Printf("[%s] delete %d failed: %v", h.desc.Slug, id, err)
		c.Redirect(http.StatusSeeOther, "/"+h.desc.Slug+"?err=delete")
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+h.desc.Slug)
}

func (h *Handler) columnLabels() []string {
	labels := make([]string, 0, len(h.desc.Columns))
	for _, col := range h.desc.Columns {
		if f, ok := h.desc.field(col); ok {
			labels = append(labels, f.Label)
		} else {
			labels = append(labels, col)
		}
	}
	return labels
}

// loadErrorMessage keeps auth failures distinguishable from outages without
// leaking backend detail.
func loadErrorMessage(err error, what string) string {
	if portfolio.IsAuthFailure(err) {
		return "Your session was rejected by the server. Sign out and log in again."
	}
	return "Could not load " + strings.ToLower(what) + ". Make sure the server is running and try again."
}
