package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	controller "bean-scene-ordering/controllers"
	"bean-scene-ordering/helpers"
	"bean-scene-ordering/routes"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full /api surface against the given store, the
// same way main does, with uploads landing in imagesDir.
func newTestRouter(s controller.Store, imagesDir string) *gin.Engine {
	tokens := helpers.NewTokenService(testSecret)
	router := gin.New()
	router.GET("/api-docs", controller.Docs())

	api := router.Group("/api")
	routes.AuthRoutes(api, controller.NewAuthController(s, tokens), tokens)
	routes.UserRoutes(api, controller.NewUserController(s))
	routes.CategoryRoutes(api, controller.NewCategoryController(s))
	routes.MenuItemRoutes(api, controller.NewMenuItemController(s), imagesDir)
	routes.OrderRoutes(api, controller.NewOrderController(s, nil), nil)
	routes.TableRoutes(api, controller.NewTableController(s), imagesDir)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doRaw(t *testing.T, router http.Handler, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doMultipart sends a multipart form. fileContent may be nil for a form
// without a file part; repeated values go through arrays.
func doMultipart(t *testing.T, router http.Handler, method, path string, fields map[string]string, arrays map[string][]string, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			t.Fatalf("write form field: %v", err)
		}
	}
	for key, values := range arrays {
		for _, value := range values {
			if err := form.WriteField(key, value); err != nil {
				t.Fatalf("write form field: %v", err)
			}
		}
	}
	if fileContent != nil {
		part, err := form.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	list := []map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return list
}
