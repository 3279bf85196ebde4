package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsServesOpenAPIDescription(t *testing.T) {
	router := newTestRouter(newFakeStore(), t.TempDir())

	w := doJSON(t, router, http.MethodGet, "/api-docs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	spec := decodeBody(t, w)

	assert.Equal(t, "3.0.0", spec["openapi"])
	info := spec["info"].(map[string]any)
	assert.Equal(t, "Bean Scene API", info["title"])

	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok)
	for _, path := range []string{
		"/api/users", "/api/users/create", "/api/users/update/{user_id}", "/api/users/delete/{user_id}",
		"/api/categories", "/api/menuItems", "/api/orders", "/api/tables",
		"/api/orders/update-batch", "/api/auth/login", "/api/auth/me",
	} {
		assert.Contains(t, paths, path)
	}
}
