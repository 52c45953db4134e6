package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	applog "github.com/zhouzirui/yara-ai/internal/log"
	"github.com/zhouzirui/yara-ai/internal/model/chat"
	"github.com/zhouzirui/yara-ai/internal/model/persona"
	"github.com/zhouzirui/yara-ai/internal/service/ai"
	"github.com/zhouzirui/yara-ai/internal/service/document"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrUnknownChannel  = errors.New("unknown chat channel")
	ErrPersonaNotFound = errors.New("persona not found")
)

// Responder produces the assistant reply for a user turn.
type Responder interface {
	GenerateResponse(ctx context.Context, p persona.Persona, history []chat.Message, userMessage string) (*schema.Message, error)
}

// Options configure the chat service.
type Options struct {
	PersonaID           string
	TypingDelay         time.Duration
	DefaultDocumentType document.Type
	Now                 func() time.Time
}

// Pending is a reply computed in stage one and not yet in the transcript.
type Pending struct {
	SessionID   string
	UserMessage chat.Message
	Reply       string
	Category    string
	Delay       time.Duration
}

// Service encapsulates conversation state management. Everything lives in
// memory and is gone when the process exits.
type Service struct {
	responder Responder
	personas  persona.Store
	opts      Options
	log       *zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]chat.Session
	messages map[string][]chat.Message
}

// NewService bootstraps the in-memory chat service.
func NewService(responder Responder, personas persona.Store, opts Options, logger *zerolog.Logger) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultDocumentType == "" {
		opts.DefaultDocumentType = document.Word
	}
	return &Service{
		responder: responder,
		personas:  personas,
		opts:      opts,
		log:       applog.OrNop(logger),
		sessions:  make(map[string]chat.Session),
		messages:  make(map[string][]chat.Message),
	}
}

// CreateSession provisions an anonymous session for a chat surface.
func (s *Service) CreateSession(_ context.Context, channel chat.Channel) (chat.Session, error) {
	if !channel.Valid() {
		return chat.Session{}, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
	if _, ok := s.personas.FindByID(s.opts.PersonaID); !ok {
		return chat.Session{}, fmt.Errorf("%w: %q", ErrPersonaNotFound, s.opts.PersonaID)
	}

	session := chat.Session{
		ID:           uuid.NewString(),
		Channel:      channel,
		PersonaID:    s.opts.PersonaID,
		DocumentType: string(s.opts.DefaultDocumentType),
		CreatedAt:    s.opts.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.messages[session.ID] = make([]chat.Message, 0, 16)
	s.mu.Unlock()

	s.log.Debug().Str("session", session.ID).Str("channel", string(channel)).Msg("session created")
	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// SetDocumentType records the document type selected in the session.
func (s *Service) SetDocumentType(_ context.Context, sessionID string, t document.Type) (chat.Session, error) {
	parsed, err := document.ParseType(string(t))
	if err != nil {
		return chat.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	session.DocumentType = string(parsed)
	s.sessions[sessionID] = session
	return session, nil
}

// LoadTranscript returns stored messages for the provided session.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}

// Submit computes the reply right away and records the user's message once the
// reply exists. The reply reaches the transcript only when the caller hands it
// to Deliver, typically after waiting Pending.Delay.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (Pending, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Pending{}, ErrEmptyMessage
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return Pending{}, err
	}
	p, ok := s.personas.FindByID(session.PersonaID)
	if !ok {
		return Pending{}, fmt.Errorf("%w: %q", ErrPersonaNotFound, session.PersonaID)
	}

	history, err := s.LoadTranscript(ctx, sessionID)
	if err != nil {
		return Pending{}, err
	}

	reply, err := s.responder.GenerateResponse(ctx, p, history, text)
	if err != nil {
		return Pending{}, fmt.Errorf("generate reply: %w", err)
	}

	// 回复生成成功后才写入用户消息，失败时不留下无人应答的一轮
	userMessage, err := s.append(sessionID, chat.Message{Sender: chat.SenderUser, Content: text})
	if err != nil {
		return Pending{}, err
	}

	category := ai.CategoryOf(reply)
	s.log.Info().Str("session", sessionID).Str("category", category).Msg("reply prepared")

	return Pending{
		SessionID:   sessionID,
		UserMessage: userMessage,
		Reply:       reply.Content,
		Category:    category,
		Delay:       s.opts.TypingDelay,
	}, nil
}

// Deliver appends a pending reply to its transcript as a bot message.
func (s *Service) Deliver(_ context.Context, pending Pending) (chat.Message, error) {
	return s.append(pending.SessionID, chat.Message{
		Sender:   chat.SenderBot,
		Content:  pending.Reply,
		Category: pending.Category,
	})
}

func (s *Service) append(sessionID string, message chat.Message) (chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return chat.Message{}, ErrSessionNotFound
	}

	message.ID = uuid.NewString()
	message.SessionID = sessionID
	if message.CreatedAt.IsZero() {
		message.CreatedAt = s.opts.Now().UTC()
	}

	s.messages[sessionID] = append(s.messages[sessionID], message)
	return message, nil
}
