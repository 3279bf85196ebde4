package routes

import (
	controller "bean-scene-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(api *gin.RouterGroup, ctrl *controller.UserController) {
	users := api.Group("/users")
	users.GET("", ctrl.GetUsers())
	users.POST("/create", ctrl.CreateUser())
	users.PUT("/update/:user_id", ctrl.UpdateUser())
	users.DELETE("/delete/:user_id", ctrl.DeleteUser())
}
