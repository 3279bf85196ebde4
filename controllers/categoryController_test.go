package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full lifecycle of a category document: create, list, rename, delete,
// and the chosen delete-of-missing behavior.
func TestCategoryLifecycle(t *testing.T) {
	s := newFakeStore()
	router := newTestRouter(s, t.TempDir())

	w := doJSON(t, router, http.MethodPost, "/api/categories/create", map[string]any{"name": "Drinks"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Category added successfully.", decodeBody(t, w)["msg"])

	w = doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Drinks", list[0]["name"])
	id, ok := list[0]["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	w = doJSON(t, router, http.MethodPut, "/api/categories/update/"+id, map[string]any{"name": "Beverages"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Category updated successfully.", decodeBody(t, w)["msg"])

	w = doJSON(t, router, http.MethodGet, "/api/categories", nil)
	list = decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])
	assert.Equal(t, "Beverages", list[0]["name"])

	w = doJSON(t, router, http.MethodDelete, "/api/categories/delete/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Category deleted successfully.", decodeBody(t, w)["msg"])

	w = doJSON(t, router, http.MethodGet, "/api/categories", nil)
	assert.Empty(t, decodeList(t, w))

	// Deleting the same id again reports the missing document.
	w = doJSON(t, router, http.MethodDelete, "/api/categories/delete/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeBody(t, w)["code"])
}

func TestCategoryUpdateStripsClientID(t *testing.T) {
	s := newFakeStore()
	router := newTestRouter(s, t.TempDir())

	doJSON(t, router, http.MethodPost, "/api/categories/create", map[string]any{"name": "Drinks"})
	w := doJSON(t, router, http.MethodGet, "/api/categories", nil)
	id := decodeList(t, w)[0]["id"].(string)

	w = doJSON(t, router, http.MethodPut, "/api/categories/update/"+id, map[string]any{
		"id":   "forged-id",
		"name": "Beverages",
	})
	require.Equal(t, http.StatusOK, w.Code)

	fields := s.get("categories", id)
	require.NotNil(t, fields)
	assert.Equal(t, "Beverages", fields["name"])
	assert.NotContains(t, fields, "id")
}

func TestCategoryUpdatePartialMerge(t *testing.T) {
	s := newFakeStore()
	router := newTestRouter(s, t.TempDir())

	doJSON(t, router, http.MethodPost, "/api/categories/create", map[string]any{"name": "Drinks"})
	w := doJSON(t, router, http.MethodGet, "/api/categories", nil)
	id := decodeList(t, w)[0]["id"].(string)

	// Two sequential updates with disjoint fields must both survive.
	w = doJSON(t, router, http.MethodPut, "/api/categories/update/"+id, map[string]any{"displayOrder": 3})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPut, "/api/categories/update/"+id, map[string]any{"icon": "mug"})
	require.Equal(t, http.StatusOK, w.Code)

	fields := s.get("categories", id)
	assert.Equal(t, "Drinks", fields["name"])
	assert.Equal(t, float64(3), fields["displayOrder"])
	assert.Equal(t, "mug", fields["icon"])
}

// Two truly concurrent updates writing the same field race at
// last-write-wins granularity: both succeed, and the stored value is
// exactly one of the submitted values, never a blend or the original.
func TestCategoryUpdateConcurrentLastWriteWins(t *testing.T) {
	s := newFakeStore()
	router := newTestRouter(s, t.TempDir())

	doJSON(t, router, http.MethodPost, "/api/categories/create", map[string]any{"name": "Drinks"})
	w := doJSON(t, router, http.MethodGet, "/api/categories", nil)
	id := decodeList(t, w)[0]["id"].(string)

	names := []string{"Beverages", "Refreshments"}
	codes := make(chan int, len(names))
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			body, err := json.Marshal(map[string]any{"name": name})
			if err != nil {
				codes <- 0
				return
			}
			req := httptest.NewRequest(http.MethodPut, "/api/categories/update/"+id, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			codes <- rec.Code
		}(name)
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.Contains(t, []any{"Beverages", "Refreshments"}, s.get("categories", id)["name"])
}

func TestCategoryValidationAndFailures(t *testing.T) {
	s := newFakeStore()
	router := newTestRouter(s, t.TempDir())

	// Missing required name.
	w := doJSON(t, router, http.MethodPost, "/api/categories/create", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeBody(t, w)["code"])

	// Malformed JSON body.
	w = doRaw(t, router, http.MethodPost, "/api/categories/create", "application/json", []byte("{not json"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Store failure surfaces as 500 with the stable code.
	s.failNext(errors.New("connection reset"))
	w = doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "store_failure", body["code"])
	assert.Equal(t, "Failed to load categories", body["error"])

	// Updating an unknown id is 404, not 500.
	w = doJSON(t, router, http.MethodPut, "/api/categories/update/nope", map[string]any{"name": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeBody(t, w)["code"])
}
