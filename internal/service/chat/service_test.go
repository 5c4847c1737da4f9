package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/zhouzirui/campus-assistant/backend/internal/analysis/intent"
	model "github.com/zhouzirui/campus-assistant/backend/internal/model/chat"
	chat "github.com/zhouzirui/campus-assistant/backend/internal/service/chat"
)

func TestServiceGetSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}

	if got.ID != session.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, session.ID)
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	if _, err := svc.GetSession(ctx, "missing"); err == nil {
		t.Fatal("expected error for missing session")
	}
}

func TestCreateSessionSeedsGreeting(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	transcript, err := svc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}

	if len(transcript) != 1 {
		t.Fatalf("expected greeting only, got %d messages", len(transcript))
	}
	if !transcript[0].IsBot() || transcript[0].Content != intent.Greeting {
		t.Fatalf("unexpected first message: %+v", transcript[0])
	}
	if transcript[0].Category != intent.General {
		t.Fatalf("greeting should carry general category, got %q", transcript[0].Category)
	}
}

func TestSaveMessageKeepsInsertionOrder(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx)

	contents := []string{"first", "second", "third"}
	for _, content := range contents {
		if _, err := svc.SaveMessage(ctx, model.Message{SessionID: session.ID, Sender: model.SenderUser, Content: content}); err != nil {
			t.Fatalf("SaveMessage err: %v", err)
		}
	}

	transcript, _ := svc.LoadTranscript(ctx, session.ID)
	if len(transcript) != len(contents)+1 {
		t.Fatalf("unexpected transcript length: %d", len(transcript))
	}
	for i, content := range contents {
		if transcript[i+1].Content != content {
			t.Fatalf("message %d: got %q want %q", i+1, transcript[i+1].Content, content)
		}
	}
	for i := 1; i < len(transcript); i++ {
		if transcript[i].ID <= transcript[i-1].ID {
			t.Fatalf("message ids not increasing: %s <= %s", transcript[i].ID, transcript[i-1].ID)
		}
	}
}

func TestSaveMessageEnforcesCategoryInvariant(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx)

	cases := []struct {
		name string
		msg  model.Message
		want error
	}{
		{"user with category", model.Message{Sender: model.SenderUser, Content: "hi", Category: intent.Dining}, chat.ErrInvalidCategory},
		{"bot without category", model.Message{Sender: model.SenderBot, Content: "hi"}, chat.ErrInvalidCategory},
		{"bot with unknown category", model.Message{Sender: model.SenderBot, Content: "hi", Category: "sports"}, chat.ErrInvalidCategory},
		{"unknown sender", model.Message{Sender: "system", Content: "hi"}, chat.ErrInvalidSender},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.msg.SessionID = session.ID
			if _, err := svc.SaveMessage(ctx, tc.msg); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	transcript, _ := svc.LoadTranscript(ctx, session.ID)
	if len(transcript) != 1 {
		t.Fatalf("rejected messages must not be stored, got %d messages", len(transcript))
	}
}

func TestSaveMessageUnknownSession(t *testing.T) {
	svc := chat.NewService()

	_, err := svc.SaveMessage(context.Background(), model.Message{SessionID: "missing", Sender: model.SenderUser, Content: "hi"})
	if !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestLoadTranscriptReturnsCopy(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx)

	transcript, _ := svc.LoadTranscript(ctx, session.ID)
	transcript[0].Content = "tampered"

	again, _ := svc.LoadTranscript(ctx, session.ID)
	if again[0].Content != intent.Greeting {
		t.Fatal("transcript mutated through returned slice")
	}
}

func TestDeleteSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx)

	if err := svc.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("DeleteSession err: %v", err)
	}
	if _, err := svc.LoadTranscript(ctx, session.ID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected transcript to be gone, got %v", err)
	}
	if err := svc.DeleteSession(ctx, session.ID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}
