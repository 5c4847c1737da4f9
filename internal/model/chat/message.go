package chat

import (
	"time"

	"github.com/zhouzirui/campus-assistant/backend/internal/analysis/intent"
)

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single immutable turn in a session transcript.
type Message struct {
	ID        string          `json:"id"`
	SessionID string          `json:"sessionId"`
	Sender    Sender          `json:"sender"`
	Content   string          `json:"content"`
	Category  intent.Category `json:"category,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// IsBot reports whether the assistant produced the message.
func (m Message) IsBot() bool {
	return m.Sender == SenderBot
}
