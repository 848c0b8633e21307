package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck-dev/taskdeck/db"
	"github.com/taskdeck-dev/taskdeck/internal/auth"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/repository"
	"github.com/taskdeck-dev/taskdeck/internal/router"
	"github.com/taskdeck-dev/taskdeck/internal/types"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	auth.SetJWTSecret("test-secret")

	if err := db.ConnectDatabase("", ":memory:"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return router.NewRouter("../../web/templates/*.html")
}

func do(r *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request

	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// session registers a user through the real handler and returns the
// issued cookies.
func session(t *testing.T, r *gin.Engine, username string) []*http.Cookie {
	t.Helper()

	w := do(r, http.MethodPost, "/register", url.Values{
		"username": {username},
		"password": {"password123"},
	}, nil)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("register %s: status %d", username, w.Code)
	}

	var cookies []*http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			cookies = append(cookies, cookie)
		}
	}
	if len(cookies) == 0 {
		t.Fatalf("register %s issued no session cookie", username)
	}
	return cookies
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/", "/add", "/edit/1"} {
		w := do(r, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
			t.Fatalf("%s: status %d location %q", path, w.Code, w.Header().Get("Location"))
		}
	}
}

func TestInvalidSessionCookieRedirects(t *testing.T) {
	r := setupRouter(t)

	forged := &http.Cookie{Name: "token", Value: "not-a-real-token"}

	w := do(r, http.MethodGet, "/", nil, []*http.Cookie{forged})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("status %d location %q", w.Code, w.Header().Get("Location"))
	}
}

func TestRegisterAddCompleteFilterFlow(t *testing.T) {
	r := setupRouter(t)
	cookies := session(t, r, "alice")

	w := do(r, http.MethodPost, "/add", url.Values{
		"title":    {"Buy milk"},
		"due_date": {"2024-01-10"},
		"priority": {"High"},
	}, cookies)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("add: status %d location %q", w.Code, w.Header().Get("Location"))
	}

	w = do(r, http.MethodGet, "/?status=Pending", nil, cookies)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Buy milk") {
		t.Fatalf("pending listing missing task: status %d", w.Code)
	}

	var task models.Task
	if err := db.DB.Where("title = ?", "Buy milk").First(&task).Error; err != nil {
		t.Fatalf("fetch task: %v", err)
	}
	if task.Status != types.StatusPending || task.Priority != types.PriorityHigh {
		t.Fatalf("stored task: %+v", task)
	}

	w = do(r, http.MethodPost, "/complete/"+strconv.Itoa(int(task.ID)), nil, cookies)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("complete: status %d", w.Code)
	}

	w = do(r, http.MethodGet, "/?status=Completed", nil, cookies)
	if !strings.Contains(w.Body.String(), "Buy milk") {
		t.Fatal("completed listing missing task")
	}

	w = do(r, http.MethodGet, "/?status=Pending", nil, cookies)
	if strings.Contains(w.Body.String(), "Buy milk") {
		t.Fatal("completed task still listed as pending")
	}
}

func TestAddBlankTitleRedirectsBack(t *testing.T) {
	r := setupRouter(t)
	cookies := session(t, r, "alice")

	w := do(r, http.MethodPost, "/add", url.Values{"title": {"   "}}, cookies)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/add" {
		t.Fatalf("status %d location %q", w.Code, w.Header().Get("Location"))
	}

	var count int64
	if err := db.DB.Model(&models.Task{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("blank title created %d rows", count)
	}
}

func TestEditForeignTaskCollapsesToNotFound(t *testing.T) {
	r := setupRouter(t)

	_ = session(t, r, "bob")

	var bob models.User
	if err := db.DB.Where("username = ?", "bob").First(&bob).Error; err != nil {
		t.Fatalf("fetch bob: %v", err)
	}
	bobTask, err := repository.Create(bob.ID, repository.TaskInput{Title: "bob secret"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	aliceCookies := session(t, r, "alice")

	id := strconv.Itoa(int(bobTask.ID))

	w := do(r, http.MethodGet, "/edit/"+id, nil, aliceCookies)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("edit form: status %d location %q", w.Code, w.Header().Get("Location"))
	}

	w = do(r, http.MethodPost, "/edit/"+id, url.Values{
		"title":  {"hijacked"},
		"status": {"Pending"},
	}, aliceCookies)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("edit: status %d location %q", w.Code, w.Header().Get("Location"))
	}

	got, err := repository.Get(bob.ID, bobTask.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "bob secret" {
		t.Fatalf("foreign edit mutated row: %+v", got)
	}
}

func TestDeleteForeignTaskIsNoOp(t *testing.T) {
	r := setupRouter(t)

	_ = session(t, r, "bob")

	var bob models.User
	if err := db.DB.Where("username = ?", "bob").First(&bob).Error; err != nil {
		t.Fatalf("fetch bob: %v", err)
	}
	bobTask, err := repository.Create(bob.ID, repository.TaskInput{Title: "keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	aliceCookies := session(t, r, "alice")

	w := do(r, http.MethodPost, "/delete/"+strconv.Itoa(int(bobTask.ID)), nil, aliceCookies)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("delete: status %d", w.Code)
	}

	if _, err := repository.Get(bob.ID, bobTask.ID); err != nil {
		t.Fatalf("bob's task gone after alice's delete: %v", err)
	}
}
