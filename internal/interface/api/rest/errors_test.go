package rest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"identity-api/internal/domain/domainerr"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind domainerr.Kind
		want int
	}{
		{domainerr.KindValidation, http.StatusBadRequest},
		{domainerr.KindConflict, http.StatusConflict},
		{domainerr.KindNotFound, http.StatusNotFound},
		{domainerr.KindForbidden, http.StatusForbidden},
		{domainerr.Kind(0), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.kind))
		})
	}
}
