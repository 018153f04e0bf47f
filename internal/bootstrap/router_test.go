package bootstrap_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmportfolio/admin-gateway/internal/auth"
	"github.com/tmportfolio/admin-gateway/internal/bootstrap"
	"github.com/tmportfolio/admin-gateway/internal/portfolio"
)

const cookieName = "admin_session"

// fakeBackend is an in-memory portfolio server covering the routes the
// gateway proxies to.
type fakeBackend struct {
	t       *testing.T
	nextID   int64
	items    map[string][]map[string]any // collection -> records
	deletes  int
	creates  int
	failGET  bool
	failPOST bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	return &fakeBackend{t: t, items: map[string][]map[string]any{}}
}

func (f *fakeBackend) seed(collection string, rec map[string]any) int64 {
	f.nextID++
	rec["id"] = f.nextID
	f.items[collection] = append(f.items[collection], rec)
	return f.nextID
}

func (f *fakeBackend) server() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] == "admin" && body["password"] == "s3cret" {
			json.NewEncoder(w).Encode(map[string]string{"token": "bearer-xyz"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	mux.HandleFunc("GET /api/admin/analytics", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"total": 42, "today": 3,
			"byCountry": []map[string]any{{"country": "BD", "count": 30}},
			"byBrowser": []map[string]any{{"browser": "Chrome", "count": 40}},
			"byOs":      []map[string]any{{"os": "Linux", "count": 42}},
			"recent":    []map[string]any{},
			"daily":     []map[string]any{{"date": "2026-08-27", "count": 3}},
		})
	})

	mux.HandleFunc("GET /api/admin/settings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]string{{"keyName": "cvLink", "value": "/uploads/cv.pdf"}})
	})

	mux.HandleFunc("/api/admin/{collection}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer bearer-xyz" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		collection := r.PathValue("collection")
		switch r.Method {
		case http.MethodGet:
			if f.failGET {
				http.Error(w, `{"error":"db down"}`, http.StatusInternalServerError)
				return
			}
			records := f.items[collection]
			if records == nil {
				records = []map[string]any{}
			}
			json.NewEncoder(w).Encode(records)
		case http.MethodPost:
			if f.failPOST {
				http.Error(w, `{"error":"validation failed"}`, http.StatusBadRequest)
				return
			}
			var rec map[string]any
			json.NewDecoder(r.Body).Decode(&rec)
			f.creates++
			f.seed(collection, rec)
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/admin/{collection}/{id}", func(w http.ResponseWriter, r *http.Request) {
		collection := r.PathValue("collection")
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		switch r.Method {
		case http.MethodPut:
			var rec map[string]any
			json.NewDecoder(r.Body).Decode(&rec)
			for i, item := range f.items[collection] {
				if item["id"] == id {
					rec["id"] = id
					f.items[collection][i] = rec
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			http.NotFound(w, r)
		case http.MethodDelete:
			f.deletes++
			for i, item := range f.items[collection] {
				if item["id"] == id {
					f.items[collection] = append(f.items[collection][:i], f.items[collection][i+1:]...)
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	server := httptest.NewServer(mux)
	f.t.Cleanup(server.Close)
	return server
}

type env struct {
	router  *gin.Engine
	backend *fakeBackend
	cookie  *http.Cookie
}

func setup(t *testing.T) *env {
	gin.SetMode(gin.TestMode)

	backend := newFakeBackend(t)
	server := backend.server()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	sessions := auth.NewStore(redisClient, time.Hour)
	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   "admin-gateway-test",
		Version:       "test",
		Client:        portfolio.NewClient(server.URL),
		Sessions:      sessions,
		CookieName:    cookieName,
		CookieTTLSecs: 3600,
	})

	id, err := sessions.Create(t.Context(), "bearer-xyz")
	require.NoError(t, err)

	return &env{
		router:  router,
		backend: backend,
		cookie:  &http.Cookie{Name: cookieName, Value: id},
	}
}

func (e *env) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if e.cookie != nil {
		req.AddCookie(e.cookie)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *env) post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if e.cookie != nil {
		req.AddCookie(e.cookie)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

var formTokenRe = regexp.MustCompile(`name="form_token" value="([^"]+)"`)

func (e *env) formToken(t *testing.T, path string) string {
	t.Helper()
	rr := e.get(t, path)
	require.Equal(t, http.StatusOK, rr.Code)
	m := formTokenRe.FindStringSubmatch(rr.Body.String())
	require.NotNil(t, m, "form page should carry a form token")
	return m[1]
}

func TestGuardRedirectsAnonymous(t *testing.T) {
	e := setup(t)
	e.cookie = nil

	for _, path := range []string{"/", "/projects", "/skills", "/messages", "/analytics", "/settings"} {
		rr := e.get(t, path)
		assert.Equal(t, http.StatusSeeOther, rr.Code, path)
		assert.Equal(t, "/login", rr.Header().Get("Location"), path)
	}
}

func TestLoginThenProjectsEndToEnd(t *testing.T) {
	e := setup(t)
	e.backend.seed("projects", map[string]any{"title": "Portfolio Site", "tags": "React"})

	// Fresh login instead of the pre-seeded session.
	e.cookie = nil
	rr := e.post(t, "/login", url.Values{"username": {"admin"}, "password": {"s3cret"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	for _, ck := range rr.Result().Cookies() {
		if ck.Name == cookieName && ck.Value != "" {
			e.cookie = ck
		}
	}
	require.NotNil(t, e.cookie, "login should set a session cookie")

	list := e.get(t, "/projects")
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Portfolio Site")
}

func TestCreateProjectAppearsAfterRefetch(t *testing.T) {
	e := setup(t)

	token := e.formToken(t, "/projects/new")
	rr := e.post(t, "/projects/save", url.Values{
		"form_token": {token},
		"action":     {"save"},
		"title":      {"Demo"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/projects", rr.Header().Get("Location"))

	list := e.get(t, "/projects")
	assert.Contains(t, list.Body.String(), "Demo")
	assert.Equal(t, 1, e.backend.creates)
}

func TestDuplicateSubmitRejectedBeforeBackend(t *testing.T) {
	e := setup(t)

	token := e.formToken(t, "/projects/new")
	form := url.Values{"form_token": {token}, "action": {"save"}, "title": {"Demo"}}

	first := e.post(t, "/projects/save", form)
	require.Equal(t, http.StatusSeeOther, first.Code)

	second := e.post(t, "/projects/save", form)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "already submitted")
	assert.Equal(t, 1, e.backend.creates, "replayed submit must not reach the backend")
}

func TestSaveFailureKeepsFormOpen(t *testing.T) {
	e := setup(t)
	e.backend.failPOST = true

	token := e.formToken(t, "/projects/new")
	rr := e.post(t, "/projects/save", url.Values{
		"form_token": {token},
		"action":     {"save"},
		"title":      {"Doomed"},
	})

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Error saving. Please try again.")
	// Submitted values survive the failed save.
	assert.Contains(t, body, `value="Doomed"`)
	// The backend's validation detail stays private.
	assert.NotContains(t, body, "validation failed")
}

func TestRequiredFieldBlocksSave(t *testing.T) {
	e := setup(t)

	token := e.formToken(t, "/projects/new")
	rr := e.post(t, "/projects/save", url.Values{
		"form_token": {token},
		"action":     {"save"},
		"title":      {"   "},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Title is required.")
	assert.Equal(t, 0, e.backend.creates)
}

func TestUpdateReflectsPatch(t *testing.T) {
	e := setup(t)
	id := e.backend.seed("skills", map[string]any{"name": "Go", "category": "backend"})
	other := e.backend.seed("skills", map[string]any{"name": "React", "category": "frontend"})

	token := e.formToken(t, "/skills/"+strconv.FormatInt(id, 10)+"/edit")
	rr := e.post(t, "/skills/save", url.Values{
		"form_token": {token},
		"action":     {"save"},
		"id":         {strconv.FormatInt(id, 10)},
		"name":       {"Golang"},
		"category":   {"backend"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	list := e.get(t, "/skills")
	body := list.Body.String()
	assert.Contains(t, body, "Golang")
	assert.NotContains(t, body, ">Go<")
	// The untouched record is unchanged.
	assert.Contains(t, body, "React")
	_ = other
}

func TestDeleteWithoutConfirmIssuesNoRequest(t *testing.T) {
	e := setup(t)
	id := e.backend.seed("projects", map[string]any{"title": "Keep Me"})

	rr := e.post(t, "/projects/"+strconv.FormatInt(id, 10)+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, 0, e.backend.deletes, "declined delete must issue no backend request")

	list := e.get(t, "/projects")
	assert.Contains(t, list.Body.String(), "Keep Me")
}

func TestDeleteWithConfirmRemovesRow(t *testing.T) {
	e := setup(t)
	id := e.backend.seed("projects", map[string]any{"title": "Old Project"})

	rr := e.post(t, "/projects/"+strconv.FormatInt(id, 10)+"/delete", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, 1, e.backend.deletes)

	list := e.get(t, "/projects")
	assert.NotContains(t, list.Body.String(), "Old Project")
}

func TestMessageDeleteFlow(t *testing.T) {
	e := setup(t)
	id := e.backend.seed("messages", map[string]any{"name": "Alex", "message": "Hi there"})
	path := "/messages/" + strconv.FormatInt(id, 10)

	detail := e.get(t, path)
	assert.Contains(t, detail.Body.String(), "Hi there")

	// Declined: row remains.
	e.post(t, path+"/delete", url.Values{})
	assert.Equal(t, 0, e.backend.deletes)

	// Confirmed: row removed and the flow lands back on the list, which
	// also closes the detail view of the deleted message.
	rr := e.post(t, path+"/delete", url.Values{"confirm": {"yes"}})
	assert.Equal(t, "/messages", rr.Header().Get("Location"))

	list := e.get(t, "/messages")
	assert.NotContains(t, list.Body.String(), "Hi there")
}

func TestListLoadFailureSurfacesInline(t *testing.T) {
	e := setup(t)
	e.backend.failGET = true

	rr := e.get(t, "/projects")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Could not load projects")
}

func TestAnalyticsPage(t *testing.T) {
	e := setup(t)

	rr := e.get(t, "/analytics")
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Visitor Analytics")
	assert.Contains(t, body, "42")
	assert.Contains(t, body, "Chrome")
}

func TestSettingsPageShowsCurrentValue(t *testing.T) {
	e := setup(t)

	rr := e.get(t, "/settings")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/uploads/cv.pdf")
}

func TestHealthDoesNotRequireSession(t *testing.T) {
	e := setup(t)
	e.cookie = nil

	rr := e.get(t, "/health")
	assert.Equal(t, http.StatusOK, rr.Code)
}
