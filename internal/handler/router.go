package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/campus-assistant/backend/internal/config"
	"github.com/zhouzirui/campus-assistant/backend/internal/handler/chat"
	"github.com/zhouzirui/campus-assistant/backend/internal/handler/quickaction"
	"github.com/zhouzirui/campus-assistant/backend/internal/handler/stream"
	"github.com/zhouzirui/campus-assistant/backend/internal/handler/ws"
	middlewarePkg "github.com/zhouzirui/campus-assistant/backend/internal/middleware"
	quickactionModel "github.com/zhouzirui/campus-assistant/backend/internal/model/quickaction"
	assistantService "github.com/zhouzirui/campus-assistant/backend/internal/service/assistant"
	chatService "github.com/zhouzirui/campus-assistant/backend/internal/service/chat"
	"github.com/zhouzirui/campus-assistant/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg *config.Config, actions quickactionModel.Store, chatSvc *chatService.Service, assistantSvc *assistantService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(cfg.CORS.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	chatHandler := chat.New(chatSvc, assistantSvc)
	quickActionHandler := quickaction.New(actions, assistantSvc)
	streamHandler := stream.New(assistantSvc, chatSvc)
	wsHandler := ws.NewWebSocketHandler(assistantSvc, chatSvc, cfg.CORS.AllowedOrigins)

	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimit.Enabled() {
			api.Use(middlewarePkg.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst).Handler)
		}

		chatHandler.RegisterRoutes(api)
		quickActionHandler.RegisterRoutes(api)
		streamHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)
	})

	return r
}
