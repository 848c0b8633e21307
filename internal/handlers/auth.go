package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck-dev/taskdeck/db"
	"github.com/taskdeck-dev/taskdeck/internal/auth"
	"github.com/taskdeck-dev/taskdeck/internal/flash"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required,min=8"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

func ShowRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.html", gin.H{
		"Notice": flash.Pop(ctx),
	})
}

func Register(ctx *gin.Context) {
	var form RegisterForm

	if err := ctx.ShouldBind(&form); err != nil {
		flash.Set(ctx, "Username and a password of at least 8 characters are required", "warning")
		ctx.Redirect(http.StatusSeeOther, "/register")
		return
	}

	form.Username = strings.TrimSpace(form.Username)

	if form.Username == "" {
		flash.Set(ctx, "Username is required", "warning")
		ctx.Redirect(http.StatusSeeOther, "/register")
		return
	}

	var existingUser models.User

	err := db.DB.Where("username = ?", form.Username).First(&existingUser).Error

	if err == nil {
		flash.Set(ctx, "Username already exists", "warning")
		ctx.Redirect(http.StatusSeeOther, "/register")
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	newUser := models.User{
		Username:     form.Username,
		PasswordHash: string(passwordHash),
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := issueSession(ctx, newUser); err != nil {
		log.Printf("Failed to generate session token: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	flash.Set(ctx, "Welcome, "+newUser.Username, "success")
	ctx.Redirect(http.StatusSeeOther, "/")
}

func ShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", gin.H{
		"Notice": flash.Pop(ctx),
	})
}

func Login(ctx *gin.Context) {
	var form LoginForm

	if err := ctx.ShouldBind(&form); err != nil {
		flash.Set(ctx, "Invalid username or password", "danger")
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var existingUser models.User

	err := db.DB.Where("username = ?", strings.TrimSpace(form.Username)).First(&existingUser).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			flash.Set(ctx, "Invalid username or password", "danger")
			ctx.Redirect(http.StatusSeeOther, "/login")
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(form.Password))

	if err != nil {
		flash.Set(ctx, "Invalid username or password", "danger")
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := issueSession(ctx, existingUser); err != nil {
		log.Printf("Failed to generate session token: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/")
}

func Logout(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Domain:   Domain,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	flash.Set(ctx, "Logged out", "info")
	ctx.Redirect(http.StatusSeeOther, "/login")
}

func issueSession(ctx *gin.Context, user models.User) error {
	token, err := auth.GenerateJWT(user.ID, user.Username)

	if err != nil {
		return err
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   60 * 60 * 24 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
