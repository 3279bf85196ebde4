package routes

import (
	controller "bean-scene-ordering/controllers"
	"bean-scene-ordering/helpers"
	"bean-scene-ordering/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(api *gin.RouterGroup, ctrl *controller.AuthController, tokens *helpers.TokenService) {
	auth := api.Group("/auth")
	auth.POST("/login", ctrl.Login())
	auth.GET("/me", middleware.Authentication(tokens), ctrl.Me())
}
