package controllers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bean-scene-ordering/models"
	"bean-scene-ordering/store"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	store    Store
	notifier *Notifier
}

func NewOrderController(s Store, notifier *Notifier) *OrderController {
	return &OrderController{store: s, notifier: notifier}
}

func (ctrl *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		orders, err := ctrl.store.ListAll(ctx, store.Orders)
		if err != nil {
			slog.Error("list orders", "error", err)
			abortStoreError(c, "Failed to load orders", err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (ctrl *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid order payload", err)
			return
		}

		items := make([]map[string]any, 0, len(order.Items))
		for _, item := range order.Items {
			entry := map[string]any{}
			if item.MenuItemID != nil {
				entry["menuItemId"] = *item.MenuItemID
			}
			if item.Name != nil {
				entry["name"] = *item.Name
			}
			if item.Price != nil {
				entry["price"] = *item.Price
			}
			if item.Quantity != nil {
				entry["quantity"] = *item.Quantity
			}
			items = append(items, entry)
		}

		fields := map[string]any{"items": items}
		if order.TableRef != nil {
			fields["tableRef"] = *order.TableRef
		}
		if order.Status != nil {
			fields["status"] = *order.Status
		}

		id, err := ctrl.store.AddOne(ctx, store.Orders, fields)
		if err != nil {
			slog.Error("create order", "error", err)
			abortStoreError(c, "Failed to add order", err)
			return
		}
		ctrl.notifier.Broadcast("newOrder", gin.H{"id": id})
		c.JSON(http.StatusCreated, gin.H{"msg": "Orders added successfully."})
	}
}

func (ctrl *OrderController) UpdateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		updates, err := bindUpdates(c)
		if err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid order payload", err)
			return
		}

		if err := ctrl.store.UpdateByID(ctx, store.Orders, orderId, updates); err != nil {
			slog.Error("update order", "order_id", orderId, "error", err)
			abortStoreError(c, "Failed to update order", err)
			return
		}
		ctrl.notifier.Broadcast("orderUpdated", gin.H{"id": orderId})
		c.JSON(http.StatusOK, gin.H{"msg": "Order updated successfully."})
	}
}

// UpdateOrdersBatch applies an array of {id, ...fields} deltas
// independently, in order. There is no rollback: a failed delta is
// reported and the rest still apply.
func (ctrl *OrderController) UpdateOrdersBatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		var deltas []models.OrderDelta
		if err := c.ShouldBindJSON(&deltas); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid order batch payload", err)
			return
		}

		var failed []string
		updated := 0
		for i, delta := range deltas {
			id, ok := delta["id"].(string)
			if !ok || id == "" {
				failed = append(failed, fmt.Sprintf("[%d]: missing id", i))
				continue
			}
			fields := map[string]any{}
			for key, value := range delta {
				if key != "id" {
					fields[key] = value
				}
			}
			if err := ctrl.store.UpdateByID(ctx, store.Orders, id, fields); err != nil {
				slog.Error("batch update order", "order_id", id, "error", err)
				failed = append(failed, id)
				continue
			}
			updated++
			ctrl.notifier.Broadcast("orderUpdated", gin.H{"id": id})
		}

		if len(failed) > 0 {
			abortError(c, http.StatusInternalServerError, CodeStoreFailure,
				"Failed to update orders",
				fmt.Errorf("failed: %s", strings.Join(failed, ", ")))
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Orders updated successfully.", "updated": updated})
	}
}

func (ctrl *OrderController) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		if err := ctrl.store.DeleteByID(ctx, store.Orders, orderId); err != nil {
			slog.Error("delete order", "order_id", orderId, "error", err)
			abortStoreError(c, "Failed to delete order", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Orders deleted successfully."})
	}
}
