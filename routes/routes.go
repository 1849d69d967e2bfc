package routes

import (
	"Ruleta/controllers"
	"Ruleta/services/history"
	"Ruleta/services/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	tablesController := &controllers.TablesController{
		Redis:    redisClient,
		Recorder: history.NewRecorder(db),
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	tablesGroup := api.Group("/tables")
	{
		tablesGroup.POST("", tablesController.CreateTable)
		tablesGroup.POST("/join", tablesController.JoinTable)
		tablesGroup.POST("/rejoin", tablesController.RejoinTable)
		tablesGroup.GET("/:id/history", tablesController.GetTableHistory)
	}
}
