package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ecomap-dev/ecomap/db"
	"github.com/ecomap-dev/ecomap/internal/auth"
	"github.com/ecomap-dev/ecomap/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

var testDBCounter atomic.Int64

// setupRouter wires the full engine against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ecomap_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	db.DB = gdb

	require.NoError(t, db.MigrateDatabase())
	require.NoError(t, auth.InitJWTSecret(testJWTSecret))

	return router.NewRouter()
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func registerUser(t *testing.T, r *gin.Engine, name, email, password string) {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func loginUser(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	return token
}

func createPoint(t *testing.T, r *gin.Engine, token, name, wasteType string) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/puntos", token, gin.H{
		"name":       name,
		"waste_type": wasteType,
		"latitude":   -33.45,
		"longitude":  -70.66,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)

	return uint(body["id"].(float64))
}
