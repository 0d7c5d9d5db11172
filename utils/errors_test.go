package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validationf("weight is required"), http.StatusBadRequest},
		{NotFoundf("no active meal plan"), http.StatusNotFound},
		{Conflictf("progress exists, cannot reset"), http.StatusConflict},
		{&UpstreamError{Msg: "generation request failed"}, http.StatusBadGateway},
		{&StoreError{Op: "upsert", Err: errors.New("boom")}, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestHTTPStatus_WrappedErrors(t *testing.T) {
	err := fmt.Errorf("saving day: %w", Conflictf("progress exists, cannot reset"))
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	assert.ErrorIs(t, &StoreError{Op: "find", Err: cause}, cause)
	assert.ErrorIs(t, &UpstreamError{Msg: "bad response", Err: cause}, cause)
}
