package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/campus-assistant/backend/internal/analysis/intent"
	"github.com/zhouzirui/campus-assistant/backend/internal/handler/apierror"
	assistantService "github.com/zhouzirui/campus-assistant/backend/internal/service/assistant"
	chatService "github.com/zhouzirui/campus-assistant/backend/internal/service/chat"
	"github.com/zhouzirui/campus-assistant/backend/pkg/utils"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc   *chatService.Service
	assistant *assistantService.Service
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, assistant *assistantService.Service) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		assistant: assistant,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}", h.handleGetSession)
	r.Delete("/session/{sessionID}", h.handleDeleteSession)
	r.Get("/session/{sessionID}/messages", h.handleListMessages)
	r.Post("/messages", h.handleSendMessage)
	r.Get("/categories", h.handleListCategories)
}

// handleCreateSession 创建会话，会话以欢迎语开始
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

// handleGetSession 返回会话以及“正在回复”状态
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"session":    session,
		"responding": h.assistant.IsResponding(sessionID),
	})
}

// handleDeleteSession 结束会话并丢弃记录
func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.chatSvc.DeleteSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		apierror.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListMessages 按时间顺序返回会话消息
func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatSvc.LoadTranscript(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, messages)
}

// handleSendMessage 提交用户消息并同步返回助手回复
func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Content   string `json:"content"`
	}

	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.SessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	exchange, err := h.assistant.Submit(r.Context(), payload.SessionID, payload.Content)
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, exchange)
}

func (h *Handler) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, intent.Categories())
}
