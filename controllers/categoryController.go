package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bean-scene-ordering/models"
	"bean-scene-ordering/store"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	store Store
}

func NewCategoryController(s Store) *CategoryController {
	return &CategoryController{store: s}
}

func (ctrl *CategoryController) GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		categories, err := ctrl.store.ListAll(ctx, store.Categories)
		if err != nil {
			slog.Error("list categories", "error", err)
			abortStoreError(c, "Failed to load categories", err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func (ctrl *CategoryController) CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid category payload", err)
			return
		}
		if err := validate.Struct(&category); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid category payload", err)
			return
		}

		_, err := ctrl.store.AddOne(ctx, store.Categories, map[string]any{"name": *category.Name})
		if err != nil {
			slog.Error("create category", "error", err)
			abortStoreError(c, "Failed to create category", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"msg": "Category added successfully."})
	}
}

func (ctrl *CategoryController) UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		categoryId := c.Param("category_id")
		updates, err := bindUpdates(c)
		if err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid category payload", err)
			return
		}

		if err := ctrl.store.UpdateByID(ctx, store.Categories, categoryId, updates); err != nil {
			slog.Error("update category", "category_id", categoryId, "error", err)
			abortStoreError(c, "Failed to update category", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Category updated successfully."})
	}
}

func (ctrl *CategoryController) DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		categoryId := c.Param("category_id")
		if err := ctrl.store.DeleteByID(ctx, store.Categories, categoryId); err != nil {
			slog.Error("delete category", "category_id", categoryId, "error", err)
			abortStoreError(c, "Failed to delete category", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Category deleted successfully."})
	}
}
