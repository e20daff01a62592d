package testimonial

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pammu-27/sparsha-backend/internal/database"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &Testimonial{}))

	h := NewHandler(NewService(NewRepository(db)))
	r := gin.New()
	RegisterRoutes(r.Group("/"), r.Group("/"), h)
	return r
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func create(t *testing.T, r http.Handler, name, message string) Testimonial {
	t.Helper()
	resp := performRequest(r, http.MethodPost, "/testimonial", map[string]string{"name": name, "message": message})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var out Testimonial
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func list(t *testing.T, r http.Handler) []Testimonial {
	t.Helper()
	resp := performRequest(r, http.MethodGet, "/testimonials", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var out []Testimonial
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func TestCreateThenList_RoundTrip(t *testing.T) {
	r := setupRouter(t)
	start := time.Now().Add(-time.Second)

	created := create(t, r, "Asha", "Lovely gates!")
	assert.NotZero(t, created.ID)

	items := list(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, "Asha", items[0].Name)
	assert.Equal(t, "Lovely gates!", items[0].Message)
	assert.False(t, items[0].CreatedAt.Before(start))
}

func TestCreate_AcceptsEmptyFields(t *testing.T) {
	r := setupRouter(t)

	created := create(t, r, "", "")
	assert.NotZero(t, created.ID)
	assert.Empty(t, created.Name)
}

func TestCreate_InvalidJSON(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/testimonial", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, resp.Body.String())
}

func TestList_NewestFirst(t *testing.T) {
	r := setupRouter(t)

	var ids []int64
	for i := 0; i < 5; i++ {
		ids = append(ids, create(t, r, "n"+strconv.Itoa(i), "m").ID)
	}

	items := list(t, r)
	require.Len(t, items, 5)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt), "not newest first at %d", i)
	}
	assert.Equal(t, ids[4], items[0].ID)
	assert.Equal(t, ids[0], items[4].ID)
}

func TestList_EmptyIsArray(t *testing.T) {
	r := setupRouter(t)

	resp := performRequest(r, http.MethodGet, "/testimonials", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestUpdate(t *testing.T) {
	r := setupRouter(t)
	created := create(t, r, "Asha", "old")

	resp := performRequest(r, http.MethodPut, "/testimonial/"+strconv.FormatInt(created.ID, 10), map[string]string{"message": "new"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated Testimonial
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, "new", updated.Message)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Millisecond)

	resp = performRequest(r, http.MethodPut, "/testimonial/"+strconv.FormatInt(created.ID, 10), map[string]string{"name": "Ravi", "message": "both"})
	require.Equal(t, http.StatusOK, resp.Code)
	items := list(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, "Ravi", items[0].Name)
	assert.Equal(t, "both", items[0].Message)
}

func TestUpdate_EmptyBodyLeavesRecordUnchanged(t *testing.T) {
	r := setupRouter(t)
	created := create(t, r, "Asha", "kept")

	resp := performRequest(r, http.MethodPut, "/testimonial/"+strconv.FormatInt(created.ID, 10), nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated Testimonial
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, "kept", updated.Message)

	resp = performRequest(r, http.MethodPut, "/testimonial/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdate_Errors(t *testing.T) {
	r := setupRouter(t)

	resp := performRequest(r, http.MethodPut, "/testimonial/999", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = performRequest(r, http.MethodPut, "/testimonial/abc", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Invalid id"}`, resp.Body.String())
}

func TestDelete(t *testing.T) {
	r := setupRouter(t)
	keep := create(t, r, "keep", "m")
	drop := create(t, r, "drop", "m")

	resp := performRequest(r, http.MethodDelete, "/testimonial/"+strconv.FormatInt(drop.ID, 10), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":true}`, resp.Body.String())

	items := list(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)
}

func TestDelete_NotFoundLeavesListIntact(t *testing.T) {
	r := setupRouter(t)
	create(t, r, "a", "m")
	create(t, r, "b", "m")
	before := list(t, r)

	resp := performRequest(r, http.MethodDelete, "/testimonial/999999", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":"Testimonial not found"}`, resp.Body.String())

	assert.Equal(t, before, list(t, r))
}

func TestDelete_InvalidID(t *testing.T) {
	r := setupRouter(t)

	resp := performRequest(r, http.MethodDelete, "/testimonial/1.5", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
