package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSetThenPop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Set(ctx, "Task added", "success")

	cookies := w.Result().Cookies()
	var carried *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == "flash" {
			carried = cookie
		}
	}
	if carried == nil {
		t.Fatal("no flash cookie set")
	}

	w2 := httptest.NewRecorder()
	ctx2, _ := gin.CreateTestContext(w2)
	ctx2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx2.Request.AddCookie(carried)

	notice := Pop(ctx2)
	if notice == nil {
		t.Fatal("no notice popped")
	}
	if notice.Message != "Task added" || notice.Category != "success" {
		t.Fatalf("notice = %+v", notice)
	}

	// Pop clears the cookie for the next page.
	var cleared bool
	for _, cookie := range w2.Result().Cookies() {
		if cookie.Name == "flash" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("flash cookie not cleared after pop")
	}
}

func TestPopWithoutNotice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if notice := Pop(ctx); notice != nil {
		t.Fatalf("unexpected notice %+v", notice)
	}
}
