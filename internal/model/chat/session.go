package chat

import "time"

// Channel is the surface a conversation runs in.
type Channel string

const (
	// ChannelWidget is the inline chat section.
	ChannelWidget Channel = "widget"
	// ChannelModal is the pop-up chat window.
	ChannelModal Channel = "modal"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	return c == ChannelWidget || c == ChannelModal
}

// Session captures a transient anonymous conversation and the page state that
// travels with it.
type Session struct {
	ID           string    `json:"id"`
	Channel      Channel   `json:"channel"`
	PersonaID    string    `json:"personaId"`
	DocumentType string    `json:"documentType"`
	CreatedAt    time.Time `json:"createdAt"`
}
