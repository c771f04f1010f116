package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/reclaim/server/internal/auth"
	"codeberg.org/reclaim/server/reclaim/categories"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategories struct {
	list []categories.Category
	tags []categories.Tag
	err  error
}

func (f *fakeCategories) List(_ context.Context) ([]categories.Category, error) {
	return f.list, f.err
}

func (f *fakeCategories) Create(_ context.Context, req categories.CreateCategoryRequest) (*categories.Category, error) {
	if f.err != nil {
		return nil, f.err
	}

	for _, c := range f.list {
		if c.Name == req.Name {
			return nil, categories.ErrCategoryExists
		}
	}

	category := categories.Category{ID: "c" + req.Name, Name: req.Name, Color: req.Color}
	f.list = append(f.list, category)

	return &category, nil
}

func (f *fakeCategories) ListTags(_ context.Context) ([]categories.Tag, error) {
	return f.tags, f.err
}

func setup(t *testing.T, store CategoryStore) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := auth.GenerateJWT("6f1c2b9e-3d4a-4c5b-8e7f-0a1b2c3d4e5f", "me@example.com")
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), store)

	return r, token
}

func request(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestListCategories(t *testing.T) {
	r, _ := setup(t, &fakeCategories{list: []categories.Category{{ID: "c1", Name: "Keys"}}})

	w := request(r, http.MethodGet, "/api/v1/categories", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Categories, 1)
	assert.Equal(t, "Keys", body.Categories[0].Name)
}

func TestListTags(t *testing.T) {
	r, _ := setup(t, &fakeCategories{tags: []categories.Tag{{ID: "t1", Name: "red"}}})

	w := request(r, http.MethodGet, "/api/v1/tags", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"red"`)
}

func TestCreateCategory(t *testing.T) {
	store := &fakeCategories{list: []categories.Category{{ID: "c1", Name: "Keys"}}}
	r, token := setup(t, store)

	w := request(r, http.MethodPost, "/api/v1/categories", token, `{"name":"Umbrellas","color":"#123ABC"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"name":"Umbrellas"`)
	assert.Len(t, store.list, 2)
}

func TestCreateCategory_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		store  *fakeCategories
		token  bool
		body   string
		status int
	}{
		{"no token", &fakeCategories{}, false, `{"name":"Umbrellas"}`, http.StatusUnauthorized},
		{"missing name", &fakeCategories{}, true, `{"color":"#123ABC"}`, http.StatusBadRequest},
		{"bad color", &fakeCategories{}, true, `{"name":"Umbrellas","color":"blue"}`, http.StatusBadRequest},
		{"duplicate", &fakeCategories{list: []categories.Category{{ID: "c1", Name: "Keys"}}}, true, `{"name":"Keys"}`, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, token := setup(t, tt.store)
			if !tt.token {
				token = ""
			}

			w := request(r, http.MethodPost, "/api/v1/categories", token, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestListCategories_StoreFailure(t *testing.T) {
	r, _ := setup(t, &fakeCategories{err: context.DeadlineExceeded})

	w := request(r, http.MethodGet, "/api/v1/categories", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
