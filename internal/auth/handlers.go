package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/tmportfolio/admin-gateway/internal/portfolio"
)

// Handler bundles the dependencies for the login and logout endpoints.
type Handler struct {
	store      *Store
	client     *portfolio.Client
	cookieName string
	cookieTTL  int // seconds
	limiter    *rate.Limiter
}

func New(store *Store, client *portfolio.Client, cookieName string, cookieTTLSeconds int) *Handler {
	return &Handler{
		store:      store,
		client:     client,
		cookieName: cookieName,
		cookieTTL:  cookieTTLSeconds,
		// Login is the only unauthenticated endpoint, so it gets a brake
		// against credential stuffing: 1 attempt/sec sustained, burst 5.
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Register attaches the session routes to the engine root.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.POST("/logout", h.logout)
}

// loginPage renders the sign-in form. Deliberately no redirect for already
// authenticated visitors: re-login over a live session must stay possible.
func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{})
}

func (h *Handler) login(c *gin.Context) {
	if !h.limiter.Allow() {
		c.HTML(http.StatusTooManyRequests, "login.tmpl", gin.H{
			"Error": "Too many attempts. Please wait a moment and try again.",
		})
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.tmpl", gin.H{
			"Error":    "Username and password are required.",
			"Username": username,
		})
		return
	}

	token, err := h.client.Login(c.Request.Context(), username, password)
	if err != nil {
		status := http.StatusUnauthorized
		msg := "Invalid username or password"
		if !errors.Is(err, portfolio.ErrInvalidCredentials) {
			// Transport failure, not a rejection.
			status = http.StatusBadGateway
			msg = "Could not reach the portfolio server. Please try again."
			log.Printf("[auth] login upstream error: %v", err)
		}
		c.HTML(status, "login.tmpl", gin.H{"Error": msg, "Username": username})
		return
	}

	id, err := h.store.Create(c.Request.Context(), token)
	if err != nil {
		log.Printf("[auth] session create failed: %v", err)
		c.HTML(http.StatusInternalServerError, "login.tmpl", gin.H{
			"Error":    "Could not start a session. Please try again.",
			"Username": username,
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, id, h.cookieTTL, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// logout drops the session and the cookie unconditionally. There is no
// backend call: the bearer token itself is not revocable.
func (h *Handler) logout(c *gin.Context) {
	if id, err := c.Cookie(h.cookieName); err == nil && id != "" {
		if err := h.store.Delete(c.Request.Context(), id); err != nil {
			log.Printf("[auth] session delete failed: %v", err)
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
