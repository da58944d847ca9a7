package yelphelp

import (
	"fmt"
	"time"
)

const (
	// StartEventType is the type of StartEvent.
	StartEventType = "start"

	// MessageEventType is the type of MessageEvent sent by a human user.
	MessageEventType = "message"
)

// Event defines an interface that each inbound event from an Adapter must satisfy.
type Event interface {
	EventType() string
}

// StartEvent tells that the chat platform confirmed the session.
type StartEvent struct {
	StartedAt time.Time
}

var _ Event = (*StartEvent)(nil)

// EventType returns StartEventType.
func (*StartEvent) EventType() string {
	return StartEventType
}

// MessageEvent represents an incoming message.
// A message without SubType is one that is sent by a human user.
type MessageEvent struct {
	Type      string
	SubType   string
	UserID    string
	ChannelID string
	BotID     string
	Text      string
	SentAt    time.Time
}

var _ Event = (*MessageEvent)(nil)

// EventType returns the type given by the chat platform, which usually is MessageEventType.
func (e *MessageEvent) EventType() string {
	return e.Type
}

// User represents a chat platform account.
type User struct {
	ID       string
	Name     string
	RealName string
	IsBot    bool
	Deleted  bool
}

// Mention returns a string that tags the user in a message body.
func (u *User) Mention() string {
	return mention(u.ID)
}

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}
