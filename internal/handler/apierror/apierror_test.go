package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	assistantService "github.com/zhouzirui/campus-assistant/backend/internal/service/assistant"
	chatService "github.com/zhouzirui/campus-assistant/backend/internal/service/chat"
)

func TestRespondStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{assistantService.ErrEmptyUtterance, http.StatusNoContent},
		{fmt.Errorf("lookup: %w", chatService.ErrSessionNotFound), http.StatusNotFound},
		{assistantService.ErrQuickActionNotFound, http.StatusNotFound},
		{chatService.ErrInvalidCategory, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		Respond(rr, tc.err)
		if rr.Code != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, rr.Code)
		}
	}
}
