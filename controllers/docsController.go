package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Docs serves the OpenAPI 3 description of the API as JSON, the
// machine-readable contract the mobile app consumes.
func Docs() gin.HandlerFunc {
	spec := buildOpenAPISpec()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, spec)
	}
}

func buildOpenAPISpec() gin.H {
	paths := gin.H{}
	for path, item := range crudPaths("Staff", "/api/users", "user_id", false) {
		paths[path] = item
	}
	for path, item := range crudPaths("Categories", "/api/categories", "category_id", false) {
		paths[path] = item
	}
	for path, item := range crudPaths("Menu", "/api/menuItems", "menuItem_id", true) {
		paths[path] = item
	}
	for path, item := range crudPaths("Orders", "/api/orders", "order_id", false) {
		paths[path] = item
	}
	for path, item := range crudPaths("Tables", "/api/tables", "table_id", true) {
		paths[path] = item
	}

	paths["/api/orders/update-batch"] = gin.H{
		"put": gin.H{
			"tags":    []string{"Orders"},
			"summary": "Update several orders in one request",
			"requestBody": gin.H{"content": gin.H{"application/json": gin.H{
				"schema": gin.H{"type": "array", "items": gin.H{"type": "object"}},
			}}},
			"responses": responses200_500,
		},
	}
	paths["/api/auth/login"] = gin.H{
		"post": gin.H{
			"tags":    []string{"Auth"},
			"summary": "Exchange staff credentials for tokens",
			"requestBody": gin.H{"content": gin.H{"application/json": gin.H{
				"schema": gin.H{"type": "object", "required": []string{"email", "password"}},
			}}},
			"responses": gin.H{
				"200": gin.H{"description": "Tokens issued"},
				"401": gin.H{"description": "Unknown email or wrong password"},
			},
		},
	}
	paths["/api/auth/me"] = gin.H{
		"get": gin.H{
			"tags":      []string{"Auth"},
			"summary":   "Current authenticated identity",
			"responses": gin.H{"200": gin.H{"description": "Claims"}, "401": gin.H{"description": "Missing or invalid token"}},
		},
	}

	return gin.H{
		"openapi": "3.0.0",
		"info": gin.H{
			"title":       "Bean Scene API",
			"version":     "1.0.0",
			"description": "REST API documentation for Bean Scene mobile app",
		},
		"paths": paths,
	}
}

var responses200_500 = gin.H{
	"200": gin.H{"description": "OK"},
	"500": gin.H{"description": "Store failure"},
}

// crudPaths renders the uniform list/create/update/delete contract every
// resource module exposes. Multipart resources accept an optional "file"
// part alongside their form fields.
func crudPaths(tag, base, idParam string, multipart bool) map[string]gin.H {
	body := "application/json"
	if multipart {
		body = "multipart/form-data"
	}
	requestBody := gin.H{"content": gin.H{body: gin.H{"schema": gin.H{"type": "object"}}}}
	idParameter := []gin.H{{
		"name":     idParam,
		"in":       "path",
		"required": true,
		"schema":   gin.H{"type": "string"},
	}}

	return map[string]gin.H{
		base: {
			"get": gin.H{
				"tags":      []string{tag},
				"summary":   "List all documents",
				"responses": responses200_500,
			},
		},
		base + "/create": {
			"post": gin.H{
				"tags":        []string{tag},
				"summary":     "Create a document",
				"requestBody": requestBody,
				"responses": gin.H{
					"201": gin.H{"description": "Created"},
					"400": gin.H{"description": "Validation failure"},
					"500": gin.H{"description": "Store failure"},
				},
			},
		},
		base + "/update/{" + idParam + "}": {
			"put": gin.H{
				"tags":        []string{tag},
				"summary":     "Partially update a document",
				"parameters":  idParameter,
				"requestBody": requestBody,
				"responses": gin.H{
					"200": gin.H{"description": "Updated"},
					"400": gin.H{"description": "Validation failure"},
					"404": gin.H{"description": "Unknown id"},
					"500": gin.H{"description": "Store failure"},
				},
			},
		},
		base + "/delete/{" + idParam + "}": {
			"delete": gin.H{
				"tags":       []string{tag},
				"summary":    "Delete a document",
				"parameters": idParameter,
				"responses": gin.H{
					"200": gin.H{"description": "Deleted"},
					"404": gin.H{"description": "Unknown id"},
					"500": gin.H{"description": "Store failure"},
				},
			},
		},
	}
}
