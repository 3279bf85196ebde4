package routes

import (
	controller "bean-scene-ordering/controllers"
	"bean-scene-ordering/middleware"

	"github.com/gin-gonic/gin"
)

func TableRoutes(api *gin.RouterGroup, ctrl *controller.TableController, imagesDir string) {
	tables := api.Group("/tables")
	tables.GET("", ctrl.GetTables())
	tables.POST("/create", middleware.Upload(imagesDir), ctrl.CreateTable())
	tables.PUT("/update/:table_id", middleware.Upload(imagesDir), ctrl.UpdateTable())
	tables.DELETE("/delete/:table_id", ctrl.DeleteTable())
}
