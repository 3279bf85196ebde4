package routes

import (
	controller "bean-scene-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func CategoryRoutes(api *gin.RouterGroup, ctrl *controller.CategoryController) {
	categories := api.Group("/categories")
	categories.GET("", ctrl.GetCategories())
	categories.POST("/create", ctrl.CreateCategory())
	categories.PUT("/update/:category_id", ctrl.UpdateCategory())
	categories.DELETE("/delete/:category_id", ctrl.DeleteCategory())
}
