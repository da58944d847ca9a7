package yelphelp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned when an outbound operation is attempted before the session starts.
	ErrNotReady = errors.New("connection is not ready")

	// ErrUserNotFound is returned when the sender can not be resolved to a user.
	ErrUserNotFound = errors.New("user not found")

	// ErrParseMiss is returned by a Command when the expected argument is absent from the message.
	ErrParseMiss = errors.New("expected argument is not given")

	// ErrNotImplemented is returned by a Command that is reserved but not built yet.
	ErrNotImplemented = errors.New("command is not implemented")
)

// BotNonContinuableError represents a critical error that the bot can't continue its operation.
// When Dispatcher receives this error, it must stop the bot and should inform administrators with Alerter.
type BotNonContinuableError struct {
	err string
}

// Error returns a detailed message about the bot's non-continuable state.
func (e BotNonContinuableError) Error() string {
	return e.err
}

// NewBotNonContinuableError creates and returns a new BotNonContinuableError instance.
func NewBotNonContinuableError(errorContent string) error {
	return &BotNonContinuableError{err: errorContent}
}

// BlockedInputError indicates the incoming event is blocked due to a lack of worker resources.
// An excessive increase in message volume may result in this error.
// Upon this occurrence, Dispatcher does not wait until the event can be enqueued, but just skip the overflowing message and proceed with its operation.
type BlockedInputError struct {
	ContinuationCount int
}

// Error returns the detailed message about this blocking situation including the number of continuous occurrences.
func (e BlockedInputError) Error() string {
	return fmt.Sprintf("continuously failed to enqueue input (%d continuation)", e.ContinuationCount)
}

// NewBlockedInputError creates and returns a new BlockedInputError instance.
func NewBlockedInputError(i int) error {
	return &BlockedInputError{ContinuationCount: i}
}
