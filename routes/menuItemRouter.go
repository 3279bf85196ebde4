package routes

import (
	controller "bean-scene-ordering/controllers"
	"bean-scene-ordering/middleware"

	"github.com/gin-gonic/gin"
)

// MenuItemRoutes mounts the menu item module. Create and update carry an
// optional image: the upload middleware runs first and hands the stored
// filename to the handler.
func MenuItemRoutes(api *gin.RouterGroup, ctrl *controller.MenuItemController, imagesDir string) {
	menuItems := api.Group("/menuItems")
	menuItems.GET("", ctrl.GetMenuItems())
	menuItems.POST("/create", middleware.Upload(imagesDir), ctrl.CreateMenuItem())
	menuItems.PUT("/update/:menuItem_id", middleware.Upload(imagesDir), ctrl.UpdateMenuItem())
	menuItems.DELETE("/delete/:menuItem_id", ctrl.DeleteMenuItem())
}
