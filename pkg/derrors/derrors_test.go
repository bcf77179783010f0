package derrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := New(CodeConflict, "cart is empty")
	assert.True(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.Equal(t, "conflict: cart is empty", err.Error())
}

func TestWrapPreservesChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeUnavailable, "snapshot write failed")
	require.Error(t, err)

	assert.True(t, HasCode(err, CodeUnavailable))
	assert.ErrorIs(t, err, cause)

	// A further fmt wrap must not hide the code.
	outer := fmt.Errorf("persist: %w", err)
	assert.True(t, HasCode(outer, CodeUnavailable))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeNotFound, CodeOf(New(CodeNotFound, "no such product")))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBadRequest:  http.StatusBadRequest,
		CodeNotFound:    http.StatusNotFound,
		CodeConflict:    http.StatusConflict,
		CodeUnavailable: http.StatusServiceUnavailable,
		CodeInternal:    http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), "code %s", code)
	}
}
