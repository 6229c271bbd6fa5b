package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want int
	}{
		{"method", KindMethodNotAllowed, http.StatusMethodNotAllowed},
		{"validation", KindValidation, http.StatusBadRequest},
		{"unresolved", KindUnresolved, http.StatusBadRequest},
		{"upstream", KindUpstream, http.StatusInternalServerError},
		{"internal", KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.kind, "x").HTTPStatus())
		})
	}
}

func TestGetKind_WrappedChain(t *testing.T) {
	inner := Upstream("eBay API returned status 503")
	err := fmt.Errorf("lookup: %w", inner)

	assert.Equal(t, KindUpstream, GetKind(err))
	assert.True(t, Is(err, KindUpstream))
	assert.Equal(t, KindInternal, GetKind(errors.New("boom")))
}

func TestError_Message(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindUpstream, "eBay request failed", cause).WithOp("FindCompletedItems")

	assert.Equal(t, "FindCompletedItems: eBay request failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}
