package controllers

import (
	"context"
	"errors"
	"net/http"

	"bean-scene-ordering/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// Stable machine-readable error codes, one per failure kind.
const (
	CodeValidation   = "validation_error"
	CodeNotFound     = "not_found"
	CodeStoreFailure = "store_failure"
	CodeUpload       = "upload_failure"
	CodeUnauthorized = "unauthorized"
)

var validate = validator.New()

// Store is the document-store surface the route modules depend on. It is
// satisfied by *store.Store and by the in-memory fake used in tests.
type Store interface {
	ListAll(ctx context.Context, collection string) ([]store.Document, error)
	FindOne(ctx context.Context, collection, field string, value any) (store.Document, error)
	AddOne(ctx context.Context, collection string, fields map[string]any) (string, error)
	UpdateByID(ctx context.Context, collection, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, collection, id string) error
}

func abortError(c *gin.Context, status int, code, message string, err error) {
	body := gin.H{"error": message, "code": code}
	if err != nil {
		body["details"] = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}

// abortStoreError maps the store taxonomy onto HTTP statuses: missing ids
// are 404, everything else 500.
func abortStoreError(c *gin.Context, message string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		abortError(c, http.StatusNotFound, CodeNotFound, message, err)
		return
	}
	abortError(c, http.StatusInternalServerError, CodeStoreFailure, message, err)
}

// bindUpdates decodes an update body into a plain field map and strips any
// client-supplied id so it can never overwrite the store identifier.
func bindUpdates(c *gin.Context) (map[string]any, error) {
	updates := map[string]any{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		return nil, err
	}
	delete(updates, "id")
	return updates, nil
}

// formUpdates collects multipart form fields into an update map, stripping
// the id and the raw file field (the stored filename comes from the upload
// middleware, never from a text field).
func formUpdates(c *gin.Context) (map[string]any, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	for key, values := range c.Request.PostForm {
		if key == "id" || key == "file" {
			continue
		}
		if len(values) == 1 {
			updates[key] = values[0]
		} else {
			updates[key] = values
		}
	}
	return updates, nil
}
