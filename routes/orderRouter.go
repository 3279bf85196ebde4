package routes

import (
	controller "bean-scene-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(api *gin.RouterGroup, ctrl *controller.OrderController, notifier *controller.Notifier) {
	orders := api.Group("/orders")
	orders.GET("", ctrl.GetOrders())
	orders.POST("/create", ctrl.CreateOrder())
	orders.PUT("/update/:order_id", ctrl.UpdateOrder())
	orders.PUT("/update-batch", ctrl.UpdateOrdersBatch())
	orders.DELETE("/delete/:order_id", ctrl.DeleteOrder())
	if notifier != nil {
		orders.GET("/ws", notifier.Handle())
	}
}
