package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/agrisaarthi/assistant-platform/internal/assistant"
	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/internal/storage"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
)

// newTestService builds a service over a fresh memory store with a reply
// delay long enough that timers never fire during a test; replies are
// driven by calling deliverReply directly.
func newTestService(t *testing.T) (*ConversationService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := NewConversationService(store, assistant.NewCannedProvider(), time.Hour, logger.Nop())
	t.Cleanup(svc.Close)
	return svc, store
}

func TestLoadSeedsWhenEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	sessions := svc.List()
	if len(sessions) != 3 {
		t.Fatalf("expected 3 seed sessions, got %d", len(sessions))
	}
	if sessions[0].ID != "session-1" {
		t.Errorf("expected seed session-1 first, got %s", sessions[0].ID)
	}
	if svc.Selected() != "" {
		t.Errorf("expected no selection, got %q", svc.Selected())
	}
}

func TestLoadSeedsOnCorruptData(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.Set(storage.KeySessions, "{not json"); err != nil {
		t.Fatal(err)
	}
	svc := NewConversationService(store, assistant.NewCannedProvider(), time.Hour, logger.Nop())
	defer svc.Close()

	if got := len(svc.List()); got != 3 {
		t.Fatalf("expected seed fallback of 3 sessions, got %d", got)
	}
}

func TestLoadRestoresPersistedState(t *testing.T) {
	store := storage.NewMemoryStore()

	first := NewConversationService(store, assistant.NewCannedProvider(), time.Hour, logger.Nop())
	created := first.CreateSession()
	first.Close()

	second := NewConversationService(store, assistant.NewCannedProvider(), time.Hour, logger.Nop())
	defer second.Close()

	sessions := second.List()
	if len(sessions) != 4 {
		t.Fatalf("expected 4 sessions after restart, got %d", len(sessions))
	}
	if sessions[0].ID != created.ID {
		t.Errorf("expected created session first, got %s", sessions[0].ID)
	}
	if second.Selected() != created.ID {
		t.Errorf("expected selection %s restored, got %q", created.ID, second.Selected())
	}
}

func TestCreateSessionPrependsAndSelects(t *testing.T) {
	svc, _ := newTestService(t)
	svc.now = func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }

	sess := svc.CreateSession()

	if !strings.HasPrefix(sess.ID, "session-") {
		t.Errorf("unexpected session id %q", sess.ID)
	}
	if sess.Title.English != "New Chat" || sess.Title.Hindi == "" {
		t.Errorf("expected multilingual default title, got %+v", sess.Title)
	}
	if len(sess.Messages) != 1 || sess.Messages[0].Type != model.MessageTypeAI {
		t.Fatalf("expected one seeded assistant greeting, got %+v", sess.Messages)
	}
	if sess.Messages[0].ID != 1 {
		t.Errorf("greeting id = %d, want 1", sess.Messages[0].ID)
	}

	sessions := svc.List()
	if sessions[0].ID != sess.ID {
		t.Errorf("expected new session prepended, got %s first", sessions[0].ID)
	}
	if svc.Selected() != sess.ID {
		t.Errorf("expected new session selected, got %q", svc.Selected())
	}
}

func TestSendMessageAppendsAndSummarizes(t *testing.T) {
	svc, _ := newTestService(t)
	sess := svc.CreateSession()

	msg := svc.SendMessage(sess.ID, "My tomato leaves are curling")
	if msg == nil {
		t.Fatal("expected message, got nil")
	}
	if msg.ID != 2 {
		t.Errorf("message id = %d, want 2", msg.ID)
	}
	if msg.Type != model.MessageTypeUser {
		t.Errorf("message type = %s, want user", msg.Type)
	}
	if !msg.Content.Complete() {
		t.Errorf("expected all language slots filled, got %+v", msg.Content)
	}
	if msg.Content.Hindi != "My tomato leaves are curling" {
		t.Errorf("expected verbatim text in every slot, got %q", msg.Content.Hindi)
	}

	got, err := svc.Get(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.LastMessage != "My tomato leaves are curling" {
		t.Errorf("lastMessage = %q", got.LastMessage)
	}
	if !got.Timestamp.After(sess.Timestamp) && !got.Timestamp.Equal(sess.Timestamp) {
		t.Errorf("session timestamp not refreshed")
	}
}

func TestSendMessageNoOps(t *testing.T) {
	svc, _ := newTestService(t)
	sess := svc.CreateSession()

	if msg := svc.SendMessage(sess.ID, "   \t\n"); msg != nil {
		t.Errorf("whitespace-only text should be a no-op, got %+v", msg)
	}
	if msg := svc.SendMessage("no-such-session", "hello"); msg != nil {
		t.Errorf("unknown session should be a no-op, got %+v", msg)
	}

	got, _ := svc.Get(sess.ID)
	if len(got.Messages) != 1 {
		t.Errorf("expected session untouched, got %d messages", len(got.Messages))
	}
}

func TestDeliverReplyAppendsAssistantTurn(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetLanguage(model.LanguageHindi)
	sess := svc.CreateSession()
	svc.SendMessage(sess.ID, "help me")

	svc.deliverReply(sess.ID)

	got, err := svc.Get(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got.Messages))
	}
	reply := got.Messages[2]
	if reply.Type != model.MessageTypeAI || reply.ID != 3 {
		t.Errorf("unexpected reply %+v", reply)
	}
	want := assistant.CannedReply()
	if reply.Content != want {
		t.Errorf("reply content = %+v", reply.Content)
	}
	if got.LastMessage != want.Hindi {
		t.Errorf("lastMessage = %q, want the Hindi reply", got.LastMessage)
	}
}

func TestDeliverReplySkipsDeletedSession(t *testing.T) {
	svc, _ := newTestService(t)
	sess := svc.CreateSession()
	svc.SendMessage(sess.ID, "hello")
	svc.DeleteSession(sess.ID)

	// Must not panic or resurrect the session.
	svc.deliverReply(sess.ID)

	if _, err := svc.Get(sess.ID); err == nil {
		t.Error("deleted session came back after reply")
	}
}

func TestDeleteSessionClearsSelection(t *testing.T) {
	svc, store := newTestService(t)
	sess := svc.CreateSession()

	svc.DeleteSession(sess.ID)

	if svc.Selected() != "" {
		t.Errorf("expected selection cleared, got %q", svc.Selected())
	}
	if _, ok, _ := store.Get(storage.KeySelectedSession); ok {
		t.Error("expected persisted selection removed")
	}
	if len(svc.List()) != 3 {
		t.Errorf("expected 3 remaining sessions, got %d", len(svc.List()))
	}
}

func TestDeleteUnselectedKeepsSelection(t *testing.T) {
	svc, _ := newTestService(t)
	sess := svc.CreateSession()

	svc.DeleteSession("session-2")

	if svc.Selected() != sess.ID {
		t.Errorf("selection changed to %q", svc.Selected())
	}
}

func TestArchiveToggle(t *testing.T) {
	svc, _ := newTestService(t)

	svc.ArchiveSession("session-1")
	got, _ := svc.Get("session-1")
	if !got.IsArchived {
		t.Fatal("expected session archived")
	}

	svc.ArchiveSession("session-1")
	got, _ = svc.Get("session-1")
	if got.IsArchived {
		t.Fatal("expected archive toggled off")
	}
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetLanguage(model.LanguageEnglish)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"title match case-insensitive", "WHEAT", []string{"session-1"}},
		{"last message match", "flowering stage", []string{"session-2"}},
		{"no match", "paddy", nil},
		{"empty query matches all", "", []string{"session-1", "session-2", "session-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Search(tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearchExcludesArchived(t *testing.T) {
	svc, _ := newTestService(t)
	svc.ArchiveSession("session-1")

	for _, sess := range svc.Search("wheat") {
		if sess.ID == "session-1" {
			t.Fatal("archived session returned by search")
		}
	}
}

func TestSearchUsesActiveLanguageTitle(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetLanguage(model.LanguageHindi)

	got := svc.Search("गेहूं")
	if len(got) != 1 || got[0].ID != "session-1" {
		t.Fatalf("expected Hindi title match for session-1, got %+v", got)
	}
}

func TestWriteFailuresKeepMemoryAuthoritative(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailWrites = true
	svc := NewConversationService(store, assistant.NewCannedProvider(), time.Hour, logger.Nop())
	defer svc.Close()

	sess := svc.CreateSession()
	if msg := svc.SendMessage(sess.ID, "still works"); msg == nil {
		t.Fatal("send failed under storage write errors")
	}
	got, err := svc.Get(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.LastMessage != "still works" {
		t.Errorf("in-memory state lost: lastMessage = %q", got.LastMessage)
	}
}

func TestPersistedSessionsRoundTrip(t *testing.T) {
	svc, store := newTestService(t)
	sess := svc.CreateSession()
	svc.SendMessage(sess.ID, "persist me")

	raw, ok, err := store.Get(storage.KeySessions)
	if err != nil || !ok {
		t.Fatalf("expected persisted sessions, ok=%v err=%v", ok, err)
	}

	var sessions []*model.Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		t.Fatalf("persisted payload not valid JSON: %v", err)
	}
	if sessions[0].ID != sess.ID || sessions[0].LastMessage != "persist me" {
		t.Errorf("unexpected persisted head session %+v", sessions[0])
	}
}

func TestSetLanguageIgnoresInvalid(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetLanguage(model.LanguageTamil)
	svc.SetLanguage(model.Language("klingon"))

	if svc.Language() != model.LanguageTamil {
		t.Errorf("language = %s, want tamil", svc.Language())
	}
}

func TestSelectUnknownSessionFails(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Select("nope"); err == nil {
		t.Fatal("expected error selecting unknown session")
	}
}
