package util

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, gin.H{"value": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "success", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestErrorEnvelopeOmitsData(t *testing.T) {
	w := record(func(c *gin.Context) {
		BadRequest(c, "missing field")
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), `"data"`)
	assert.Contains(t, w.Body.String(), "missing field")
}

func TestNotFoundEnvelope(t *testing.T) {
	w := record(NotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnauthorizedEnvelope(t *testing.T) {
	w := record(Unauthorized)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
