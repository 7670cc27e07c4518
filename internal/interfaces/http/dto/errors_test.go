package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeUnknownStatus, http.StatusBadRequest},
		{ErrCodeOrderFinalized, http.StatusUnprocessableEntity},
		{ErrCodePaymentNotConfirmed, http.StatusUnprocessableEntity},
		{ErrCodeInvalidTransition, http.StatusUnprocessableEntity},
		{ErrCodeClockSkew, http.StatusInternalServerError},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConcurrentModification, http.StatusConflict},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestGetHTTPStatus_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]int{1, 2, 3}, 45, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.PageSize)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrCodeInvalidTransition, "target not reachable")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeInvalidTransition, resp.Error.Code)
	assert.Equal(t, "target not reachable", resp.Error.Message)
}
