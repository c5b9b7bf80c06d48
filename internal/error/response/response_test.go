package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"warga-http-service/internal/error/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, gin.H{"halo": "dunia"})
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, code.ErrSuccess, body.Code)
}

func TestCreatedEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Created(c, gin.H{"id": 1})
	})

	// The status code must reach the client, not just the envelope.
	assert.Equal(t, http.StatusCreated, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, code.ErrSuccess, body.Code)
	assert.NotNil(t, body.Data)
}

func TestFailUsesCatalogStatus(t *testing.T) {
	w := record(func(c *gin.Context) {
		Fail(c, code.ErrTokenInvalid, nil)
	})

	assert.Equal(t, code.GetStatus(code.ErrTokenInvalid), w.Code)
}
