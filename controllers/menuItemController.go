package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bean-scene-ordering/middleware"
	"bean-scene-ordering/models"
	"bean-scene-ordering/store"

	"github.com/gin-gonic/gin"
)

type MenuItemController struct {
	store Store
}

func NewMenuItemController(s Store) *MenuItemController {
	return &MenuItemController{store: s}
}

func (ctrl *MenuItemController) GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		items, err := ctrl.store.ListAll(ctx, store.MenuItems)
		if err != nil {
			slog.Error("list menu items", "error", err)
			abortStoreError(c, "Failed to fetch menu items", err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (ctrl *MenuItemController) CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var item models.MenuItem
		if err := c.ShouldBind(&item); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid menu item payload", err)
			return
		}
		if err := validate.Struct(&item); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid menu item payload", err)
			return
		}

		flags := item.DietaryFlags
		if flags == nil {
			flags = []string{}
		}

		// A create without an upload still stores an empty file reference.
		fields := map[string]any{
			"name":         *item.Name,
			"price":        parsePrice(*item.Price),
			"dietaryFlags": flags,
			"file":         c.GetString(middleware.UploadedFileKey),
		}
		if item.Description != nil {
			fields["description"] = *item.Description
		}
		if item.CategoryID != nil {
			fields["categoryId"] = *item.CategoryID
		}

		_, err := ctrl.store.AddOne(ctx, store.MenuItems, fields)
		if err != nil {
			slog.Error("create menu item", "error", err)
			abortStoreError(c, "Failed to create menu item", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"msg": "Item added successfully."})
	}
}

func (ctrl *MenuItemController) UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		menuItemId := c.Param("menuItem_id")
		updates, err := formUpdates(c)
		if err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid menu item payload", err)
			return
		}
		if flags := c.PostFormArray("dietaryFlags"); len(flags) > 0 {
			updates["dietaryFlags"] = flags
		}
		if price, ok := updates["price"].(string); ok {
			updates["price"] = parsePrice(price)
		}
		// Only overlay the file reference when a new upload arrived.
		if name := c.GetString(middleware.UploadedFileKey); name != "" {
			updates["file"] = name
		}

		if err := ctrl.store.UpdateByID(ctx, store.MenuItems, menuItemId, updates); err != nil {
			slog.Error("update menu item", "menuItem_id", menuItemId, "error", err)
			abortStoreError(c, "Failed to update item", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Item updated successfully."})
	}
}

func (ctrl *MenuItemController) DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		menuItemId := c.Param("menuItem_id")
		if err := ctrl.store.DeleteByID(ctx, store.MenuItems, menuItemId); err != nil {
			slog.Error("delete menu item", "menuItem_id", menuItemId, "error", err)
			abortStoreError(c, "Failed to delete item", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Item deleted successfully."})
	}
}

// parsePrice keeps numeric prices as numbers but passes anything else
// through as submitted, the store being schemaless.
func parsePrice(raw string) any {
	if price, err := strconv.ParseFloat(raw, 64); err == nil {
		return price
	}
	return raw
}
