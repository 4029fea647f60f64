package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", errdef.NewValidation("missing title"), http.StatusBadRequest},
		{"not found", errdef.NewNotFound("no event"), http.StatusNotFound},
		{"conflict", errdef.NewConflict("already approved"), http.StatusConflict},
		{"duplicated", errdef.NewDuplicated("exists"), http.StatusConflict},
		{"unauthorized", errdef.NewUnauthorized("stale token"), http.StatusUnauthorized},
		{"unsupported media type", errdef.NewUnsupportedMediaType("json only"), http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			r.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, tt.err.Error(), recorder.Body.String())
		})
	}
}
