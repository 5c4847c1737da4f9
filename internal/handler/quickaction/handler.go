package quickaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/campus-assistant/backend/internal/analysis/intent"
	"github.com/zhouzirui/campus-assistant/backend/internal/handler/apierror"
	"github.com/zhouzirui/campus-assistant/backend/internal/model/quickaction"
	assistantService "github.com/zhouzirui/campus-assistant/backend/internal/service/assistant"
	"github.com/zhouzirui/campus-assistant/backend/pkg/utils"
)

// Handler 快捷操作的HTTP处理器
type Handler struct {
	actions   quickaction.Store
	assistant *assistantService.Service
}

// New 创建快捷操作处理器
func New(actions quickaction.Store, assistant *assistantService.Service) *Handler {
	return &Handler{
		actions:   actions,
		assistant: assistant,
	}
}

// RegisterRoutes 注册快捷操作相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/quick-actions", h.handleListActions)
	r.Post("/quick-actions/{actionID}", h.handleInvokeAction)
}

// handleListActions 列出快捷操作，可用 ?category= 按展示分类筛选
func (h *Handler) handleListActions(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		utils.RespondJSON(w, http.StatusOK, h.actions.List())
		return
	}

	category, ok := intent.Parse(raw)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown category: "+raw)
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.actions.ByCategory(category))
}

// handleInvokeAction 以快捷操作的预设问题代替用户输入
func (h *Handler) handleInvokeAction(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
	}

	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.SessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	exchange, err := h.assistant.InvokeQuickAction(r.Context(), payload.SessionID, chi.URLParam(r, "actionID"))
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, exchange)
}
