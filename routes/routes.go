package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Metrics())
	r.GET("/metrics", gin.WrapH(middlewares.MetricsHandler()))

	mealRepo := repository.NewMealRepo(db)
	userRepo := repository.NewUserRepo(db)

	mealCtrl := controllers.NewMealController(
		services.NewMealService(mealRepo),
		services.NewSummaryService(mealRepo),
	)
	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))

	r.POST("/users", userCtrl.CreateUser)

	meals := r.Group("/meals")
	{
		// creation mints its own session when the cookie is absent
		meals.POST("", mealCtrl.CreateMeal)

		authed := meals.Group("")
		authed.Use(middlewares.RequireSession())
		{
			authed.GET("", mealCtrl.ListMeals)
			authed.GET("/summary", mealCtrl.GetSummary)
			authed.GET("/:id", mealCtrl.GetMeal)
			authed.PUT("/:id", mealCtrl.UpdateMeal)
			authed.DELETE("/:id", mealCtrl.DeleteMeal)
		}
	}

	return r
}
