package errno

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  ErrNo
		want int
	}{
		{Success, http.StatusOK},
		{InvalidIdentifier, http.StatusBadRequest},
		{SelfSubscription, http.StatusBadRequest},
		{TokenInvalidErr, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{TooManyRequests, http.StatusTooManyRequests},
		{ServiceErr, http.StatusInternalServerError},
		{UpstreamErr, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.ErrMsg, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Fatalf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConvertErr(t *testing.T) {
	t.Run("wrapped errno survives", func(t *testing.T) {
		err := errors.WithMessage(NotFound.WithMessage("Video not found"), "dao.GetVideo failed")
		got := ConvertErr(err)
		if got.ErrCode != NotFoundCode || got.ErrMsg != "Video not found" {
			t.Fatalf("ConvertErr = %+v", got)
		}
	})
	t.Run("foreign error becomes service error", func(t *testing.T) {
		got := ConvertErr(errors.New("boom"))
		if got.ErrCode != ServiceErrCode {
			t.Fatalf("code = %d", got.ErrCode)
		}
	})
	t.Run("nil is success", func(t *testing.T) {
		if got := ConvertErr(nil); got.ErrCode != SuccessCode {
			t.Fatalf("code = %d", got.ErrCode)
		}
	})
}

func TestIsMatchesCode(t *testing.T) {
	err := errors.Wrap(Forbidden.WithMessagef("Not authorized to %s this %s", "delete", "video"), "service")
	if !errors.Is(err, Forbidden) {
		t.Fatal("reworded Forbidden should match the base value")
	}
	if errors.Is(err, NotFound) {
		t.Fatal("Forbidden must not match NotFound")
	}
}
