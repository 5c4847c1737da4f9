// Package apierror maps service errors onto HTTP responses.
package apierror

import (
	"errors"
	"log"
	"net/http"

	assistantService "github.com/zhouzirui/campus-assistant/backend/internal/service/assistant"
	chatService "github.com/zhouzirui/campus-assistant/backend/internal/service/chat"
	"github.com/zhouzirui/campus-assistant/backend/pkg/utils"
)

// Respond writes the status for err. Blank input is acknowledged with 204 and
// no body since nothing was created.
func Respond(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assistantService.ErrEmptyUtterance):
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, chatService.ErrSessionNotFound),
		errors.Is(err, assistantService.ErrQuickActionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrInvalidSender),
		errors.Is(err, chatService.ErrInvalidCategory):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[api] request failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
