package routes

import (
	"foodietrail/controllers"
	"foodietrail/middlewares"
	"foodietrail/web"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	DBConnected bool
	Places      *controllers.PlaceController
	Search      *controllers.SearchController
	Labels      *controllers.LabelController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	r.GET("/", controllers.Health(ctl.DBConnected))

	// Browser client
	r.StaticFS("/app", web.FS())

	places := r.Group("/places")
	{
		places.GET("", ctl.Places.List)
		places.POST("", ctl.Places.Create)
		places.GET("/:id", ctl.Places.Get)
		places.PUT("/:id", ctl.Places.Update)
		places.DELETE("/:id", ctl.Places.Delete)
	}

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("/search", ctl.Search.SearchRestaurants)
		restaurants.POST("/draft", ctl.Search.Draft)
	}

	r.POST("/photos/labels", ctl.Labels.DetectLabels)

	return r
}
