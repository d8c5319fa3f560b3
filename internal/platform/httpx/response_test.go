package httpx_test

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/httpx"
)

func TestStatusForMapsWrappedSentinels(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("load user: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: role", apperrors.ErrInvalidInput), http.StatusBadRequest},
		{apperrors.ErrEmailTaken, http.StatusConflict},
		{apperrors.ErrActiveMeditationExists, http.StatusConflict},
		{apperrors.ErrIntegrity, http.StatusInternalServerError},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got, _ := httpx.StatusFor(tc.err); got != tc.want {
			t.Fatalf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
