// Package service provides business logic for the assistant platform.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agrisaarthi/assistant-platform/internal/assistant"
	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/internal/storage"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
	"github.com/agrisaarthi/assistant-platform/pkg/metrics"
)

// DefaultReplyDelay is how long the assistant waits before answering a
// user message, matching the original simulated latency.
const DefaultReplyDelay = time.Second

// ConversationService is the authoritative in-memory session list,
// mirrored to durable storage after every mutation. Persistence failures
// are logged, never surfaced: on read failure the seed set is used, on
// write failure the in-memory state stays authoritative.
type ConversationService struct {
	store      storage.Store
	provider   assistant.Provider
	logger     *logger.Logger
	replyDelay time.Duration
	now        func() time.Time

	mu         sync.RWMutex
	sessions   []*model.Session
	selectedID string
	language   model.Language
	timers     map[string]*time.Timer
	closed     bool
}

// NewConversationService creates the service and loads persisted state.
func NewConversationService(store storage.Store, provider assistant.Provider, replyDelay time.Duration, log *logger.Logger) *ConversationService {
	if replyDelay <= 0 {
		replyDelay = DefaultReplyDelay
	}
	s := &ConversationService{
		store:      store,
		provider:   provider,
		logger:     log,
		replyDelay: replyDelay,
		now:        time.Now,
		language:   model.LanguageEnglish,
		timers:     make(map[string]*time.Timer),
	}
	s.load()
	return s
}

// load reads the persisted session list and selection. Missing or
// malformed data falls back to the built-in seed set.
func (s *ConversationService) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.Get(storage.KeySessions)
	if err != nil {
		s.logger.Error("failed to load chat sessions", zap.Error(err))
	}

	if err == nil && ok {
		var sessions []*model.Session
		if uerr := json.Unmarshal([]byte(raw), &sessions); uerr != nil {
			s.logger.Error("failed to parse persisted sessions", zap.Error(uerr))
			s.sessions = seedSessions()
		} else {
			s.sessions = sessions
		}
	} else {
		s.sessions = seedSessions()
	}

	if id, ok, err := s.store.Get(storage.KeySelectedSession); err != nil {
		s.logger.Error("failed to load selected session", zap.Error(err))
	} else if ok {
		s.selectedID = id
	}
}

// SetLanguage switches the active display language used for lastMessage
// summaries of assistant turns and for search.
func (s *ConversationService) SetLanguage(lang model.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lang.Valid() {
		s.language = lang
	}
}

// Language returns the active display language.
func (s *ConversationService) Language() model.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// List returns a snapshot of all sessions in caller-controlled order
// (new sessions are prepended; no re-sort by recency happens here).
func (s *ConversationService) List() []*model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Session, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = sess.Clone()
	}
	return out
}

// Get returns a snapshot of one session.
func (s *ConversationService) Get(sessionID string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess := s.find(sessionID); sess != nil {
		return sess.Clone(), nil
	}
	return nil, fmt.Errorf("session not found")
}

// Selected returns the currently selected session id, or "" if none.
func (s *ConversationService) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// Select makes the given session the current selection.
func (s *ConversationService) Select(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(sessionID) == nil {
		return fmt.Errorf("session not found")
	}
	s.selectedID = sessionID
	s.persistSelected()
	return nil
}

// CreateSession creates a new session with the default multilingual title
// and a seeded assistant greeting, prepends it to the list, and selects it.
func (s *ConversationService) CreateSession() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &model.Session{
		ID:          fmt.Sprintf("session-%d", now.UnixMilli()),
		Title:       newChatTitle(),
		LastMessage: "",
		Timestamp:   now,
		Messages: []model.Message{
			{
				ID:        1,
				Type:      model.MessageTypeAI,
				Content:   greeting(),
				Timestamp: now,
			},
		},
	}

	s.sessions = append([]*model.Session{sess}, s.sessions...)
	s.selectedID = sess.ID
	s.persistSessions()
	s.persistSelected()

	metrics.SessionsTotal.Inc()
	s.logger.Info("session created", zap.String("session_id", sess.ID))
	return sess.Clone()
}

// SendMessage appends a user message with the text stored verbatim under
// all four language slots, refreshes lastMessage and the session
// timestamp, and schedules the deferred assistant reply. Empty or
// whitespace-only text and unknown session ids are silent no-ops,
// returning nil.
func (s *ConversationService) SendMessage(sessionID, text string) *model.Message {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	sess := s.find(sessionID)
	if sess == nil {
		s.mu.Unlock()
		return nil
	}

	now := s.now()
	msg := model.Message{
		ID:        len(sess.Messages) + 1,
		Type:      model.MessageTypeUser,
		Content:   model.Fill(text),
		Timestamp: now,
	}
	sess.Messages = append(sess.Messages, msg)
	sess.LastMessage = text
	sess.Timestamp = now
	s.persistSessions()

	if !s.closed {
		// The reply resolves the session by id when the timer fires, so
		// deleting the session first drops the reply silently.
		if prev, ok := s.timers[sessionID]; ok {
			prev.Stop()
		}
		s.timers[sessionID] = time.AfterFunc(s.replyDelay, func() {
			s.deliverReply(sessionID)
		})
	}
	s.mu.Unlock()

	metrics.MessagesTotal.WithLabelValues(string(model.MessageTypeUser)).Inc()
	return &msg
}

// deliverReply appends the assistant reply to the session, if it still
// exists. Fired from the timer scheduled by SendMessage.
func (s *ConversationService) deliverReply(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.mu.RLock()
	target := s.find(sessionID)
	var history []model.Message
	if target != nil {
		history = append(history, target.Messages...)
	}
	lang := s.language
	s.mu.RUnlock()

	if target == nil {
		return
	}

	reply, err := s.provider.Reply(ctx, lang, history)
	if err != nil {
		s.logger.Warn("assistant provider failed, using default reply", zap.Error(err))
		reply = assistant.CannedReply()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, sessionID)

	sess := s.find(sessionID)
	if sess == nil {
		// Deleted while the reply was pending.
		return
	}

	now := s.now()
	sess.Messages = append(sess.Messages, model.Message{
		ID:        len(sess.Messages) + 1,
		Type:      model.MessageTypeAI,
		Content:   reply,
		Timestamp: now,
	})
	sess.LastMessage = reply.Get(s.language)
	sess.Timestamp = now
	s.persistSessions()

	metrics.MessagesTotal.WithLabelValues(string(model.MessageTypeAI)).Inc()
}

// DeleteSession removes the session entirely. If it was selected, the
// selection clears; it is not reassigned. Unknown ids are a no-op.
func (s *ConversationService) DeleteSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.sessions[:0]
	removed := false
	for _, sess := range s.sessions {
		if sess.ID == sessionID {
			removed = true
			continue
		}
		kept = append(kept, sess)
	}
	if !removed {
		return
	}
	s.sessions = kept

	if timer, ok := s.timers[sessionID]; ok {
		timer.Stop()
		delete(s.timers, sessionID)
	}

	if s.selectedID == sessionID {
		s.selectedID = ""
	}
	s.persistSessions()
	s.persistSelected()
}

// ArchiveSession toggles the archived flag. Archiving hides a session
// from search; it is not deletion. Unknown ids are a no-op.
func (s *ConversationService) ArchiveSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.find(sessionID)
	if sess == nil {
		return
	}
	sess.IsArchived = !sess.IsArchived
	s.persistSessions()
}

// Search returns the non-archived sessions whose title in the active
// language or lastMessage contains the query, case-insensitively.
func (s *ConversationService) Search(query string) []*model.Session {
	s.mu.RLock()
	sessions := make([]*model.Session, len(s.sessions))
	for i, sess := range s.sessions {
		sessions[i] = sess.Clone()
	}
	lang := s.language
	s.mu.RUnlock()

	return FilterSessions(sessions, query, lang)
}

// Close cancels outstanding reply timers. Replies already in flight still
// apply by id and no-op if their session is gone.
func (s *ConversationService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// find returns the live session with the given id. Callers hold s.mu.
func (s *ConversationService) find(sessionID string) *model.Session {
	for _, sess := range s.sessions {
		if sess.ID == sessionID {
			return sess
		}
	}
	return nil
}

// persistSessions mirrors the full session list to storage. Callers hold
// s.mu. Failures are logged; in-memory state stays authoritative.
func (s *ConversationService) persistSessions() {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		s.logger.Error("failed to serialize sessions", zap.Error(err))
		return
	}
	if err := s.store.Set(storage.KeySessions, string(data)); err != nil {
		s.logger.Error("failed to persist sessions", zap.Error(err))
	}
}

// persistSelected mirrors the selection to storage. Callers hold s.mu.
func (s *ConversationService) persistSelected() {
	var err error
	if s.selectedID == "" {
		err = s.store.Delete(storage.KeySelectedSession)
	} else {
		err = s.store.Set(storage.KeySelectedSession, s.selectedID)
	}
	if err != nil {
		s.logger.Error("failed to persist selected session", zap.Error(err))
	}
}

// FilterSessions returns the sessions matching the search contract:
// not archived, and title in the given language or lastMessage contains
// the query, case-insensitively.
func FilterSessions(sessions []*model.Session, query string, lang model.Language) []*model.Session {
	q := strings.ToLower(query)
	var out []*model.Session
	for _, sess := range sessions {
		if sess.IsArchived {
			continue
		}
		if strings.Contains(strings.ToLower(sess.Title.Get(lang)), q) ||
			strings.Contains(strings.ToLower(sess.LastMessage), q) {
			out = append(out, sess)
		}
	}
	return out
}
