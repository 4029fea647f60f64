package handler

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHhmm(t *testing.T) {
	v := validator.New()
	err := v.RegisterValidation("hhmm", hhmm)
	require.NoError(t, err)

	type request struct {
		StartTime string `validate:"omitempty,hhmm"`
	}

	valid := []string{"", "00:00", "09:30", "19:05", "23:59"}
	for _, value := range valid {
		assert.NoError(t, v.Struct(request{StartTime: value}), value)
	}

	invalid := []string{"24:00", "12:60", "9:30", "12:5", "noon", "12-30", "12:30:00"}
	for _, value := range invalid {
		assert.Error(t, v.Struct(request{StartTime: value}), value)
	}
}
