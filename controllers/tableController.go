package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bean-scene-ordering/middleware"
	"bean-scene-ordering/models"
	"bean-scene-ordering/store"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	store Store
}

func NewTableController(s Store) *TableController {
	return &TableController{store: s}
}

func (ctrl *TableController) GetTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		tables, err := ctrl.store.ListAll(ctx, store.Tables)
		if err != nil {
			slog.Error("list tables", "error", err)
			abortStoreError(c, "Failed to load tables", err)
			return
		}
		c.JSON(http.StatusOK, tables)
	}
}

func (ctrl *TableController) CreateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var table models.Table
		if err := c.ShouldBind(&table); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid table payload", err)
			return
		}
		if err := validate.Struct(&table); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid table payload", err)
			return
		}

		fields := map[string]any{
			"name": *table.Name,
			"file": c.GetString(middleware.UploadedFileKey),
		}
		if table.Area != nil {
			fields["area"] = *table.Area
		}

		_, err := ctrl.store.AddOne(ctx, store.Tables, fields)
		if err != nil {
			slog.Error("create table", "error", err)
			abortStoreError(c, "Failed to add table", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"msg": "Table added successfully."})
	}
}

func (ctrl *TableController) UpdateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		tableId := c.Param("table_id")
		updates, err := formUpdates(c)
		if err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid table payload", err)
			return
		}
		if name := c.GetString(middleware.UploadedFileKey); name != "" {
			updates["file"] = name
		}

		if err := ctrl.store.UpdateByID(ctx, store.Tables, tableId, updates); err != nil {
			slog.Error("update table", "table_id", tableId, "error", err)
			abortStoreError(c, "Failed to update table", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Table updated successfully."})
	}
}

func (ctrl *TableController) DeleteTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		tableId := c.Param("table_id")
		if err := ctrl.store.DeleteByID(ctx, store.Tables, tableId); err != nil {
			slog.Error("delete table", "table_id", tableId, "error", err)
			abortStoreError(c, "Failed to delete table", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Table deleted successfully."})
	}
}
