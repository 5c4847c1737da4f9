package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/campus-assistant/backend/internal/analysis/intent"
	"github.com/zhouzirui/campus-assistant/backend/internal/model/chat"
	assistantService "github.com/zhouzirui/campus-assistant/backend/internal/service/assistant"
	chatService "github.com/zhouzirui/campus-assistant/backend/internal/service/chat"
	"github.com/zhouzirui/campus-assistant/backend/pkg/utils"
)

// Handler delivers assistant replies via Server-Sent Events
type Handler struct {
	assistant *assistantService.Service
	chatSvc   *chatService.Service
}

// New creates a new stream handler
func New(assistant *assistantService.Service, chatSvc *chatService.Service) *Handler {
	return &Handler{
		assistant: assistant,
		chatSvc:   chatSvc,
	}
}

// StreamResponse represents a streaming response chunk
type StreamResponse struct {
	Event     string          `json:"event"`
	SessionID string          `json:"sessionId,omitempty"`
	MessageID string          `json:"messageId,omitempty"`
	Content   string          `json:"content,omitempty"`
	Category  intent.Category `json:"category,omitempty"`
	Finished  bool            `json:"finished,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// RegisterRoutes 注册流式回复路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stream/{sessionID}", h.handleStream)
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	userMessage := r.URL.Query().Get("message")

	if userMessage == "" {
		actionID := r.URL.Query().Get("action")
		if actionID == "" {
			utils.RespondError(w, http.StatusBadRequest, "message or action query parameter is required")
			return
		}
		action, err := h.assistant.QuickAction(actionID)
		if err != nil {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		userMessage = action.Query
	}

	if err := h.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
		log.Printf("[stream] error handling request: %v", err)
	}
}

// HandleStreamRequest runs one conversation turn and streams it to the client.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID string, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return fmt.Errorf("streaming unsupported")
	}

	if _, err := h.chatSvc.GetSession(ctx, sessionID); err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return err
	}

	utils.SetupSSEHeaders(w)

	userMsg, err := h.assistant.Accept(ctx, sessionID, userMessage)
	if errors.Is(err, assistantService.ErrEmptyUtterance) {
		// 空白输入直接结束，不产生任何消息
		h.send(w, flusher, StreamResponse{Event: "end", SessionID: sessionID, Finished: true})
		return nil
	}
	if err != nil {
		h.sendError(w, flusher, fmt.Sprintf("failed to save message: %v", err))
		return err
	}

	h.send(w, flusher, StreamResponse{
		Event:     "user",
		SessionID: sessionID,
		MessageID: userMsg.ID,
		Content:   userMsg.Content,
	})
	h.send(w, flusher, StreamResponse{Event: "typing", SessionID: sessionID})

	botMsg, err := h.assistant.Respond(ctx, sessionID, userMessage)
	if err != nil {
		h.sendError(w, flusher, fmt.Sprintf("reply failed: %v", err))
		return err
	}

	if err := h.streamReply(w, flusher, botMsg); err != nil {
		h.sendError(w, flusher, fmt.Sprintf("reply streaming failed: %v", err))
		return err
	}

	h.send(w, flusher, StreamResponse{
		Event:     "end",
		SessionID: sessionID,
		Finished:  true,
	})

	log.Printf("[stream] completed response for session=%s, category=%s", sessionID, botMsg.Category)
	return nil
}

func (h *Handler) streamReply(w http.ResponseWriter, flusher http.Flusher, botMsg chat.Message) error {
	stream := assistantService.Chunks(botMsg.Content)
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return recvErr
		}

		chunks = append(chunks, chunk)
		h.send(w, flusher, StreamResponse{
			Event:     "delta",
			SessionID: botMsg.SessionID,
			MessageID: botMsg.ID,
			Content:   chunk.Content,
		})
	}

	merged, err := schema.ConcatMessages(chunks)
	if err != nil {
		return err
	}

	h.send(w, flusher, StreamResponse{
		Event:     "message",
		SessionID: botMsg.SessionID,
		MessageID: botMsg.ID,
		Content:   merged.Content,
		Category:  botMsg.Category,
	})
	return nil
}

func (h *Handler) send(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	utils.SendSSEEvent(w, flusher, response.Event, response)
}

// sendError sends an error via Server-Sent Events
func (h *Handler) sendError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.send(w, flusher, StreamResponse{
		Event: "error",
		Error: errorMsg,
	})
}
