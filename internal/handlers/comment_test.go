package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecomap-dev/ecomap/db"
	"github.com/ecomap-dev/ecomap/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRecomputesAggregate(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "Ana", "ana@x.com", "secret1")
	registerUser(t, r, "Beto", "beto@x.com", "secret2")

	anaToken := loginUser(t, r, "ana@x.com", "secret1")
	betoToken := loginUser(t, r, "beto@x.com", "secret2")

	pointID := createPoint(t, r, anaToken, "Punto Centro", "Vidrio")

	w := doRequest(t, r, http.MethodPost, "/comentarios", betoToken, gin.H{
		"point_id": pointID,
		"rating":   4,
		"body":     "bien",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.InDelta(t, 4.0, body["average_rating"].(float64), 0.001)
	assert.EqualValues(t, 1, body["comment_count"].(float64))

	comment := body["comment"].(map[string]interface{})
	assert.Equal(t, "Beto", comment["author"])
	assert.Equal(t, "bien", comment["body"])
	assert.EqualValues(t, 4, comment["rating"].(float64))

	w = doRequest(t, r, http.MethodPost, "/comentarios", betoToken, gin.H{
		"point_id": pointID,
		"rating":   2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body = decodeBody(t, w)
	assert.InDelta(t, 3.0, body["average_rating"].(float64), 0.001)
	assert.EqualValues(t, 2, body["comment_count"].(float64))
}

func TestCreateCommentRatingOutOfRange(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "Ana", "ana@x.com", "secret1")
	token := loginUser(t, r, "ana@x.com", "secret1")
	pointID := createPoint(t, r, token, "Punto Centro", "Vidrio")

	for _, rating := range []int{0, 6, -1} {
		w := doRequest(t, r, http.MethodPost, "/comentarios", token, gin.H{
			"point_id": pointID,
			"rating":   rating,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := doRequest(t, r, http.MethodPost, "/comentarios", token, gin.H{"rating": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.DB.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateCommentUnknownPoint(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "Ana", "ana@x.com", "secret1")
	token := loginUser(t, r, "ana@x.com", "secret1")

	w := doRequest(t, r, http.MethodPost, "/comentarios", token, gin.H{
		"point_id": 9999,
		"rating":   3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOnlyCommentRestoresZeroAggregate(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "Ana", "ana@x.com", "secret1")
	token := loginUser(t, r, "ana@x.com", "secret1")
	pointID := createPoint(t, r, token, "Punto Centro", "Vidrio")

	w := doRequest(t, r, http.MethodPost, "/comentarios", token, gin.H{
		"point_id": pointID,
		"rating":   5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	commentID := uint(decodeBody(t, w)["comment"].(map[string]interface{})["id"].(float64))

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/comentarios/%d", commentID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Zero(t, body["average_rating"].(float64))
	assert.Zero(t, body["comment_count"].(float64))
}

func TestDeleteCommentForbiddenForNonAuthor(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "Ana", "ana@x.com", "secret1")
	registerUser(t, r, "Beto", "beto@x.com", "secret2")

	anaToken := loginUser(t, r, "ana@x.com", "secret1")
	betoToken := loginUser(t, r, "beto@x.com", "secret2")

	pointID := createPoint(t, r, anaToken, "Punto Centro", "Vidrio")

	w := doRequest(t, r, http.MethodPost, "/comentarios", betoToken, gin.H{
		"point_id": pointID,
		"rating":   4,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	commentID := uint(decodeBody(t, w)["comment"].(map[string]interface{})["id"].(float64))

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/comentarios/%d", commentID), anaToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteCommentNotFound(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "Ana", "ana@x.com", "secret1")
	token := loginUser(t, r, "ana@x.com", "secret1")

	w := doRequest(t, r, http.MethodDelete, "/comentarios/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCommentsNewestFirstWithAuthor(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "Ana", "ana@x.com", "secret1")
	registerUser(t, r, "Beto", "beto@x.com", "secret2")

	anaToken := loginUser(t, r, "ana@x.com", "secret1")
	betoToken := loginUser(t, r, "beto@x.com", "secret2")

	pointID := createPoint(t, r, anaToken, "Punto Centro", "Vidrio")

	w := doRequest(t, r, http.MethodPost, "/comentarios", anaToken, gin.H{
		"point_id": pointID,
		"rating":   3,
		"body":     "primero",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	time.Sleep(10 * time.Millisecond)

	w = doRequest(t, r, http.MethodPost, "/comentarios", betoToken, gin.H{
		"point_id": pointID,
		"rating":   5,
		"body":     "segundo",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/comentarios/%d", pointID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	comments := decodeList(t, w)
	require.Len(t, comments, 2)

	assert.Equal(t, "segundo", comments[0]["body"])
	assert.Equal(t, "Beto", comments[0]["author"])
	assert.Equal(t, "primero", comments[1]["body"])
	assert.Equal(t, "Ana", comments[1]["author"])
}

func TestMyCommentsIncludePointName(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "Ana", "ana@x.com", "secret1")
	registerUser(t, r, "Beto", "beto@x.com", "secret2")

	anaToken := loginUser(t, r, "ana@x.com", "secret1")
	betoToken := loginUser(t, r, "beto@x.com", "secret2")

	pointID := createPoint(t, r, anaToken, "Punto Centro", "Vidrio")

	w := doRequest(t, r, http.MethodPost, "/comentarios", betoToken, gin.H{
		"point_id": pointID,
		"rating":   4,
		"body":     "bien",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/comentarios", anaToken, gin.H{
		"point_id": pointID,
		"rating":   5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, "/mis-comentarios", betoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	comments := decodeList(t, w)
	require.Len(t, comments, 1)

	assert.Equal(t, "bien", comments[0]["body"])
	assert.Equal(t, "Punto Centro", comments[0]["point_name"])
}
