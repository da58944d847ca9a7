package yelphelp

import "context"

// Adapter defines an interface that each chat platform integration must satisfy.
// An instance of its implementation can be passed to NewDispatcher to set up a bot.
type Adapter interface {
	// Run is called on Dispatcher.Run, and the Adapter initiates its interaction with the chat platform.
	// This execution blocks until the given context is canceled.
	// When the platform confirms the session, the Adapter passes StartEvent to enqueueEvent.
	// When the platform sends a message, the Adapter converts the payload into MessageEvent and passes it to enqueueEvent.
	// Critical states are escalated via notifyErr; BotNonContinuableError stops the Dispatcher.
	Run(ctx context.Context, enqueueEvent func(Event) error, notifyErr func(error))

	// PostMessageToChannel posts the given text to the channel with the given name.
	PostMessageToChannel(ctx context.Context, channel string, text string) error

	// PostMessageToUser sends the given text to the user with the given username as a direct message.
	PostMessageToUser(ctx context.Context, username string, text string) error

	// GetUserByID resolves the given user identifier to a User.
	// ErrUserNotFound is returned when no such user exists.
	GetUserByID(ctx context.Context, id string) (*User, error)
}
