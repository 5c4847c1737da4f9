package quickaction

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/campus-assistant/backend/internal/analysis/intent"
	"github.com/zhouzirui/campus-assistant/backend/internal/config"
	"github.com/zhouzirui/campus-assistant/backend/internal/model/quickaction"
	assistantservice "github.com/zhouzirui/campus-assistant/backend/internal/service/assistant"
	chatservice "github.com/zhouzirui/campus-assistant/backend/internal/service/chat"
)

func setupRouter(t *testing.T) (*chi.Mux, *assistantservice.Service, string) {
	t.Helper()

	store := quickaction.NewMemoryStore(quickaction.Seed())
	chatSvc := chatservice.NewService()
	assistant, err := assistantservice.NewService(context.Background(), chatSvc, store, config.AssistantConfig{})
	if err != nil {
		t.Fatalf("assistant.NewService err: %v", err)
	}
	session, _ := chatSvc.CreateSession(context.Background())

	r := chi.NewRouter()
	New(store, assistant).RegisterRoutes(r)
	return r, assistant, session.ID
}

func post(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestListActions(t *testing.T) {
	r, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/quick-actions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var actions []quickaction.Action
	if err := json.NewDecoder(resp.Body).Decode(&actions); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(actions) != len(quickaction.Seed()) {
		t.Fatalf("expected %d actions, got %d", len(quickaction.Seed()), len(actions))
	}
}

func TestListActionsByCategory(t *testing.T) {
	r, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/quick-actions?category=%20ADMIN", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var actions []quickaction.Action
	if err := json.NewDecoder(resp.Body).Decode(&actions); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(actions) != 2 || actions[0].ID != "registration" || actions[1].ID != "contact-info" {
		t.Fatalf("unexpected admin actions: %+v", actions)
	}
}

func TestListActionsUnknownCategory(t *testing.T) {
	r, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/quick-actions?category=sports", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCampusMapMatchesTypedQuery(t *testing.T) {
	r, assistant, sessionID := setupRouter(t)

	resp := post(r, "/quick-actions/campus-map", map[string]string{"sessionId": sessionID})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var viaAction assistantservice.Exchange
	if err := json.NewDecoder(resp.Body).Decode(&viaAction); err != nil {
		t.Fatalf("decode err: %v", err)
	}

	typed, err := assistant.Submit(context.Background(), sessionID, "Where is the library located?")
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}

	if viaAction.User.Content != typed.User.Content {
		t.Fatalf("user content differs: %q vs %q", viaAction.User.Content, typed.User.Content)
	}
	if viaAction.Reply.Category != typed.Reply.Category || viaAction.Reply.Content != typed.Reply.Content {
		t.Fatalf("reply differs: %s vs %s", viaAction.Reply.Category, typed.Reply.Category)
	}
	// The category hint is display only; the classifier decides.
	if viaAction.Reply.Category != intent.Library {
		t.Fatalf("expected library, got %s", viaAction.Reply.Category)
	}
}

func TestInvokeUnknownAction(t *testing.T) {
	r, _, sessionID := setupRouter(t)

	if resp := post(r, "/quick-actions/nope", map[string]string{"sessionId": sessionID}); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestInvokeActionRequiresSession(t *testing.T) {
	r, _, _ := setupRouter(t)

	if resp := post(r, "/quick-actions/campus-map", map[string]string{}); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if resp := post(r, "/quick-actions/campus-map", map[string]string{"sessionId": "missing"}); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
