package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskdeck-dev/taskdeck/internal/handlers"
	"github.com/taskdeck-dev/taskdeck/internal/middleware"
	"github.com/taskdeck-dev/taskdeck/internal/types"
)

// NewRouter builds the engine with templates loaded from templateGlob,
// e.g. "web/templates/*.html".
func NewRouter(templateGlob string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob(templateGlob)

	r.GET("/api/health", handlers.HealthCheck)

	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.POST("/logout", handlers.Logout)

	tasks := r.Group("/", middleware.AuthMiddleware())
	{
		tasks.GET("", handlers.Index)
		tasks.GET("/add", handlers.ShowAddTask)
		tasks.POST("/add", handlers.AddTask)
		tasks.GET("/edit/:id", handlers.ShowEditTask)
		tasks.POST("/edit/:id", handlers.EditTask)
		tasks.POST("/delete/:id", handlers.DeleteTask)
		tasks.POST("/complete/:id", handlers.CompleteTask)
	}

	return r
}
