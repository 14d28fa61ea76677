package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/algonotes/backend/config"
	"github.com/algonotes/backend/internal/service/seeder"
	"github.com/algonotes/backend/internal/testutils"
)

func setupEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutils.SetupTestDB(t)
	_, err := seeder.New(db).Run(context.Background())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Admin.PasswordHash = string(hash)
	cfg.JWT.Secret = "router-test"
	return NewEngine(cfg, db)
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/manage/login", "", map[string]string{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthWithAndWithoutSlash(t *testing.T) {
	r := setupEngine(t)
	for _, path := range []string{"/api/health", "/api/health/"} {
		w := do(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"message":"algonotes backend is running"}`, w.Body.String())
	}
}

func TestPublicEndpointsAfterSeed(t *testing.T) {
	r := setupEngine(t)

	var chapters []map[string]any
	w := do(r, http.MethodGet, "/api/chapters/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chapters))
	assert.Len(t, chapters, 14)

	var topics []map[string]any
	w = do(r, http.MethodGet, "/api/topics/?year=not-a-year", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &topics))
	assert.Empty(t, topics)

	w = do(r, http.MethodGet, "/api/topics?key_exam_only=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &topics))
	assert.Len(t, topics, 29)

	var years []map[string]int
	w = do(r, http.MethodGet, "/api/exam-years/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &years))
	require.NotEmpty(t, years)
	for i := 1; i < len(years); i++ {
		assert.Greater(t, years[i-1]["year"], years[i]["year"])
	}

	var plans []map[string]any
	w = do(r, http.MethodGet, "/api/study-plans/", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	assert.Len(t, plans, 12)

	w = do(r, http.MethodGet, "/api/chapters/99999/", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRequiresToken(t *testing.T) {
	r := setupEngine(t)

	w := do(r, http.MethodGet, "/api/manage/chapters/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/manage/login/", "", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminChapterLifecycle(t *testing.T) {
	r := setupEngine(t)
	token := login(t, r)

	w := do(r, http.MethodGet, "/api/manage/chapters/?page_size=5&page=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Count    int64            `json:"count"`
		Next     *string          `json:"next"`
		Previous *string          `json:"previous"`
		Results  []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.EqualValues(t, 14, page.Count)
	assert.Len(t, page.Results, 5)
	require.NotNil(t, page.Next)
	assert.Equal(t, "http://example.com/api/manage/chapters/?page=3&page_size=5", *page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "http://example.com/api/manage/chapters/?page_size=5", *page.Previous)

	w = do(r, http.MethodGet, "/api/manage/chapters/?page=9", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/manage/chapters/", token, map[string]any{
		"title":      "附录：竞赛技巧",
		"summary":    "常用位运算与调试方法",
		"difficulty": "hard",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := int(created["id"].(float64))

	w = do(r, http.MethodPatch, "/api/manage/chapters/"+strconv.Itoa(id)+"/", token, map[string]any{"estimated_hours": 6})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"estimated_hours":6`)

	w = do(r, http.MethodDelete, "/api/manage/chapters/"+strconv.Itoa(id), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
