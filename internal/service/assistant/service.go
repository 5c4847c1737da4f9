package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/campus-assistant/backend/internal/analysis/intent"
	"github.com/zhouzirui/campus-assistant/backend/internal/config"
	"github.com/zhouzirui/campus-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/campus-assistant/backend/internal/model/quickaction"
	chatservice "github.com/zhouzirui/campus-assistant/backend/internal/service/chat"
)

var (
	ErrEmptyUtterance      = errors.New("utterance is empty")
	ErrQuickActionNotFound = errors.New("quick action not found")
)

// Reply is the classified answer to one utterance.
type Reply struct {
	Category intent.Category
	Keyword  string
	Message  *schema.Message
}

// Exchange pairs a stored user turn with the bot turn it produced.
type Exchange struct {
	User  chat.Message `json:"user"`
	Reply chat.Message `json:"reply"`
}

// Service is the session layer between the transport handlers and the classifier.
type Service struct {
	chatSvc *chatservice.Service
	actions quickaction.Store
	chain   compose.Runnable[string, Reply]
	delay   time.Duration

	mu         sync.Mutex
	responding map[string]int
}

// NewService compiles the reply chain and binds it to the conversation log.
func NewService(ctx context.Context, chatSvc *chatservice.Service, actions quickaction.Store, cfg config.AssistantConfig) (*Service, error) {
	chain := compose.NewChain[string, Reply]()
	chain.AppendLambda(compose.InvokableLambda(classifyUtterance))
	chain.AppendLambda(compose.InvokableLambda(renderReply))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile reply chain: %w", err)
	}

	return &Service{
		chatSvc:    chatSvc,
		actions:    actions,
		chain:      runnable,
		delay:      cfg.TypingDelay,
		responding: make(map[string]int),
	}, nil
}

func classifyUtterance(_ context.Context, utterance string) (intent.Decision, error) {
	return intent.Classify(utterance), nil
}

func renderReply(_ context.Context, decision intent.Decision) (Reply, error) {
	return Reply{
		Category: decision.Category,
		Keyword:  decision.Keyword,
		Message:  schema.AssistantMessage(decision.Response, nil),
	}, nil
}

// Reply classifies an utterance without touching any session.
func (s *Service) Reply(ctx context.Context, utterance string) (Reply, error) {
	reply, err := s.chain.Invoke(ctx, utterance)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to run reply chain: %w", err)
	}
	return reply, nil
}

// TypingDelay returns the configured pause before each reply.
func (s *Service) TypingDelay() time.Duration {
	return s.delay
}

// Accept stores the user's utterance. Blank input is rejected and nothing is stored.
func (s *Service) Accept(ctx context.Context, sessionID, utterance string) (chat.Message, error) {
	if strings.TrimSpace(utterance) == "" {
		return chat.Message{}, ErrEmptyUtterance
	}

	return s.chatSvc.SaveMessage(ctx, chat.Message{
		SessionID: sessionID,
		Sender:    chat.SenderUser,
		Content:   utterance,
	})
}

// Respond waits out the typing delay, classifies the utterance and stores the bot turn.
// It runs after Accept, so the reply is stored even if ctx is cancelled mid-delay:
// a stored user turn is always followed by its bot turn.
func (s *Service) Respond(ctx context.Context, sessionID, utterance string) (chat.Message, error) {
	ctx = context.WithoutCancel(ctx)

	if _, err := s.chatSvc.GetSession(ctx, sessionID); err != nil {
		return chat.Message{}, err
	}

	s.markResponding(sessionID)
	defer s.clearResponding(sessionID)

	if err := s.wait(ctx); err != nil {
		return chat.Message{}, err
	}

	reply, err := s.Reply(ctx, utterance)
	if err != nil {
		return chat.Message{}, err
	}

	saved, err := s.chatSvc.SaveMessage(ctx, chat.Message{
		SessionID: sessionID,
		Sender:    chat.SenderBot,
		Content:   reply.Message.Content,
		Category:  reply.Category,
	})
	if err != nil {
		return chat.Message{}, err
	}

	log.Printf("[assistant] replied session=%s category=%s keyword=%q", sessionID, reply.Category, reply.Keyword)
	return saved, nil
}

// Submit runs a full turn: Accept followed by Respond.
func (s *Service) Submit(ctx context.Context, sessionID, utterance string) (Exchange, error) {
	user, err := s.Accept(ctx, sessionID, utterance)
	if err != nil {
		return Exchange{}, err
	}

	bot, err := s.Respond(ctx, sessionID, utterance)
	if err != nil {
		return Exchange{User: user}, err
	}

	return Exchange{User: user, Reply: bot}, nil
}

// QuickAction looks up a shortcut by id.
func (s *Service) QuickAction(actionID string) (quickaction.Action, error) {
	if s.actions == nil {
		return quickaction.Action{}, ErrQuickActionNotFound
	}
	action, ok := s.actions.FindByID(actionID)
	if !ok {
		return quickaction.Action{}, ErrQuickActionNotFound
	}
	return action, nil
}

// InvokeQuickAction submits the shortcut's canned query as if the user had typed it.
func (s *Service) InvokeQuickAction(ctx context.Context, sessionID, actionID string) (Exchange, error) {
	action, err := s.QuickAction(actionID)
	if err != nil {
		return Exchange{}, err
	}
	return s.Submit(ctx, sessionID, action.Query)
}

// IsResponding reports whether a reply is pending for the session.
func (s *Service) IsResponding(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responding[sessionID] > 0
}

func (s *Service) markResponding(sessionID string) {
	s.mu.Lock()
	s.responding[sessionID]++
	s.mu.Unlock()
}

func (s *Service) clearResponding(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.responding[sessionID] <= 1 {
		delete(s.responding, sessionID)
		return
	}
	s.responding[sessionID]--
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
