package flash

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Notice is a one-shot user-visible message carried across a redirect in
// a short-lived cookie. Category maps onto the alert styling in the
// templates: success, info, warning or danger.
type Notice struct {
	Message  string
	Category string
}

const cookieName = "flash"

// Set queues a notice for the next rendered page.
func Set(ctx *gin.Context, message, category string) {
	value := url.QueryEscape(category + "|" + message)

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// Pop returns the pending notice, if any, and clears it.
func Pop(ctx *gin.Context) *Notice {
	cookie, err := ctx.Request.Cookie(cookieName)

	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := url.QueryUnescape(cookie.Value)

	if err != nil {
		return nil
	}

	category, message, found := strings.Cut(decoded, "|")

	if !found || message == "" {
		return nil
	}

	return &Notice{Message: message, Category: category}
}
