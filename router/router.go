package router

import (
	"time"

	"checkitoff/config"
	"checkitoff/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origin := "http://localhost:5173"
	if config.AppConfig != nil && config.AppConfig.App.FrontendOrigin != "" {
		origin = config.AppConfig.App.FrontendOrigin
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/news", controllers.GetNewsList)
		api.GET("/news/top", controllers.GetTopNews)
		api.GET("/news/search", controllers.SearchNews)
		api.GET("/news/:id", controllers.GetNewsByID)
		api.POST("/news", controllers.CreateNews)
		api.PUT("/news/:id/recount", controllers.RecountNews)
		api.PUT("/news/:id/visibility", controllers.SetNewsVisibility)

		api.POST("/vote", controllers.RecordVote)
		api.GET("/comments", controllers.GetComments)

		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		users := api.Group("/users")
		{
			users.GET("/email/:email", controllers.GetUserByEmail)
			users.PUT("/:id/role", controllers.UpdateUserRole)
			users.PUT("/:id/visibility", controllers.SetUserVisibility)
		}
	}

	return r
}
