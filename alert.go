package yelphelp

import (
	"context"
	"errors"
	"fmt"
)

// Alerter notifies administrators when the bot is in a critical state.
// This is recommended to design one Alerter implementation deal with one and only one communication channel.
// To notify via multiple communication channels, register as many Alerter implementations as required with multiple Dispatcher.RegisterAlerter calls.
type Alerter interface {
	// Alert sends a notification to administrators so they can acknowledge the current critical state.
	Alert(context.Context, error) error
}

type alerters []Alerter

func (a *alerters) appendAlerter(alerter Alerter) {
	*a = append(*a, alerter)
}

func (a *alerters) alertAll(ctx context.Context, err error) error {
	var errs []error
	for _, alerter := range *a {
		// Considering the irregular state of the bot and importance of alert,
		// it is safer to be panic-proof.
		func() {
			defer func() {
				if r := recover(); r != nil {
					e, ok := r.(error)
					if ok {
						errs = append(errs, fmt.Errorf("panic on alerting via %T: %w", alerter, e))
						return
					}

					errs = append(errs, fmt.Errorf("panic on alerting via %T: %+v", alerter, r))
				}
			}()

			err := alerter.Alert(ctx, err)
			if err != nil {
				errs = append(errs, fmt.Errorf("failed to send alert via %T: %w", alerter, err))
			}
		}()
	}

	// Nil when every alerter succeeded.
	return errors.Join(errs...)
}

// UserAlerter sends an alert to an operator as a direct message.
// Because the message goes through the chat platform, this can not tell a lost connection.
type UserAlerter struct {
	dispatcher *Dispatcher
	username   string
}

var _ Alerter = (*UserAlerter)(nil)

// NewUserAlerter creates and returns a new UserAlerter that messages the given username via the given Dispatcher.
func NewUserAlerter(dispatcher *Dispatcher, username string) *UserAlerter {
	return &UserAlerter{
		dispatcher: dispatcher,
		username:   username,
	}
}

// Alert sends the given error to the operator.
func (a *UserAlerter) Alert(ctx context.Context, err error) error {
	msg := fmt.Sprintf("Critical error on yelphelp: %s.", err.Error())
	return a.dispatcher.postToUser(ctx, a.username, msg)
}
