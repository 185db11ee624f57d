package subcompany

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"corpsite/internal/store"
)

func newRouter(repo *Repository) *gin.Engine {
	handler := NewHandler(repo)
	router := gin.New()
	v1 := router.Group("/api/v1")
	RegisterPublicRoutes(v1, handler)
	RegisterAdminRoutes(v1.Group("/main"), handler)
	return router
}

func TestResolve_PublicDetail(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	if _, err := repo.Create(context.Background(), &SubCompany{Name: "Vistara"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	router := newRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sub-companies/vistara", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Vistara")
}

func TestResolve_UnknownSlug(t *testing.T) {
	router := newRouter(NewRepository(store.NewMemory()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sub-companies/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestCreate_Validation(t *testing.T) {
	router := newRouter(NewRepository(store.NewMemory()))

	// name is required
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/main/sub-companies", bytes.NewBufferString(`{"description":"no name"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	if _, err := repo.Create(context.Background(), &SubCompany{Name: "Vistara"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	router := newRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/main/sub-companies", bytes.NewBufferString(`{"name":"Vistara"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "SLUG_TAKEN")
}
