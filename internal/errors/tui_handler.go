package errors

import (
	"sync"
	"time"
)

// TUIHandler queues messages for the TUI status line instead of printing them.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	lastID   uint64
	onError  func(msg Message)
}

var _ ErrorHandler = (*TUIHandler)(nil)

// Message is one status line entry. IDs increase with every message.
type Message struct {
	ID        uint64
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// MessageType classifies a Message for styling.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// maxMessages bounds the history kept for a long TUI session.
const maxMessages = 50

// NewTUIHandler creates a handler that calls onMessage for every new message.
func NewTUIHandler(onMessage func(msg Message)) *TUIHandler {
	return &TUIHandler{onError: onMessage}
}

func (h *TUIHandler) Error(msg string)   { h.push(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.push(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.push(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.push(msg, MessageTypeSuccess) }

func (h *TUIHandler) push(text string, kind MessageType) {
	h.mu.Lock()
	h.lastID++
	message := Message{ID: h.lastID, Text: text, Type: kind, Timestamp: time.Now()}
	h.messages = append(h.messages, message)
	if len(h.messages) > maxMessages {
		h.messages = h.messages[len(h.messages)-maxMessages:]
	}
	notify := h.onError
	h.mu.Unlock()

	if notify != nil {
		notify(message)
	}
}

// GetLatest returns the most recent message still queued.
func (h *TUIHandler) GetLatest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// LatestID returns the ID of the last message pushed, or 0 before the first.
func (h *TUIHandler) LatestID() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastID
}

// ClearThrough drops messages with an ID up to and including id. Messages
// pushed later stay queued.
func (h *TUIHandler) ClearThrough(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	kept := h.messages[:0]
	for _, m := range h.messages {
		if m.ID > id {
			kept = append(kept, m)
		}
	}
	h.messages = kept
}

// Clear drops all queued messages.
func (h *TUIHandler) Clear() {
	h.ClearThrough(h.LatestID())
}

// GetAll returns a copy of the queued messages, oldest first.
func (h *TUIHandler) GetAll() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}
