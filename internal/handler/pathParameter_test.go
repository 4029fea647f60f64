package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetPathParameter(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	id, ok := GetPathParameter(c, "id")

	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
}

func TestGetPathParameter_NotANumber(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, ok := GetPathParameter(c, "id")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
