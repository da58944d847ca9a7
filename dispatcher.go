package yelphelp

import (
	"context"
	"errors"

	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-kasumi/worker"
)

// Dispatcher receives inbound chat events, finds the corresponding Command and posts its result back to the chat platform.
//
//	adapter, _ := slack.NewAdapter(slack.NewConfig())
//	dispatcher := yelphelp.NewDispatcher(yelphelp.NewConfig(), adapter)
//	dispatcher.AppendCommand(searchbyphone.NewCommand(yelpClient, dispatcher))
//	err := dispatcher.Run(ctx)
type Dispatcher struct {
	config   *Config
	adapter  Adapter
	state    *ConnectionState
	commands *Commands
	alerters *alerters
	worker   worker.Worker
}

var _ Alerter = (*Dispatcher)(nil)

// DispatcherOption defines function that Dispatcher's functional option must satisfy.
type DispatcherOption func(*Dispatcher)

// WithWorker creates and returns DispatcherOption to set preferred worker.Worker implementation.
// When this is not given, Run starts a worker with Config.Worker setting.
func WithWorker(w worker.Worker) DispatcherOption {
	return func(d *Dispatcher) {
		d.worker = w
	}
}

// WithAlerter creates and returns DispatcherOption to register the given Alerter.
func WithAlerter(alerter Alerter) DispatcherOption {
	return func(d *Dispatcher) {
		d.alerters.appendAlerter(alerter)
	}
}

// NewDispatcher creates and returns a new Dispatcher with the given Config and Adapter.
// When Config.AdminUser is set, UserAlerter for that user is registered.
func NewDispatcher(config *Config, adapter Adapter, options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		config:   config,
		adapter:  adapter,
		state:    NewConnectionState(),
		commands: NewCommands(),
		alerters: &alerters{},
	}

	for _, opt := range options {
		opt(d)
	}

	if config.AdminUser != "" {
		d.alerters.appendAlerter(NewUserAlerter(d, config.AdminUser))
	}

	return d
}

// State returns the ConnectionState owned by this Dispatcher.
func (d *Dispatcher) State() *ConnectionState {
	return d.state
}

// AppendCommand appends given Command implementation to the registry.
func (d *Dispatcher) AppendCommand(command Command) {
	d.commands.Append(command)
}

// RegisterAlerter registers the given Alerter.
func (d *Dispatcher) RegisterAlerter(alerter Alerter) {
	d.alerters.appendAlerter(alerter)
}

// Alert passes the given error to all registered Alerter implementations.
func (d *Dispatcher) Alert(ctx context.Context, err error) error {
	return d.alerters.alertAll(ctx, err)
}

// OnStart is called when the chat platform confirms the session.
func (d *Dispatcher) OnStart() {
	if d.state.markReady() {
		logger.Info("Bot is ready.")
	}
}

// OnMessage handles an incoming message.
// Nothing is posted when the message is a system message, the sender can not be resolved,
// the command is unknown or not implemented, or the command's argument is missing.
func (d *Dispatcher) OnMessage(ctx context.Context, event *MessageEvent) {
	// Only messages from a person are handled.
	if event.SubType != "" {
		return
	}

	if event.EventType() != MessageEventType {
		return
	}

	keyword, ok := ExtractCommand(event.Text)
	if !ok {
		return
	}

	user := d.GetUserByID(ctx, event.UserID)
	if user == nil {
		logger.Debugf("Sender could not be resolved: %s.", event.UserID)
		return
	}

	if d.config.HelpCommand != "" && keyword == d.config.HelpCommand {
		d.PostToChannel(ctx, d.config.Channel, d.commands.Helps().String())
		return
	}

	command := d.commands.Find(keyword)
	if command == nil {
		logger.Debugf("No command corresponds to %s.", keyword)
		return
	}

	input := &Input{
		Command: keyword,
		Event:   event,
		Sender:  user,
	}
	res, err := command.Execute(ctx, input)
	switch {
	case errors.Is(err, ErrNotImplemented):
		logger.Infof("Command is not implemented: %+v", err)
		return

	case errors.Is(err, ErrParseMiss):
		logger.Debugf("Command %s is given without expected argument: %s.", keyword, event.Text)
		return

	case err != nil:
		logger.Errorf("Error on command execution. Command: %s. Error: %+v", keyword, err)
		return

	}

	if res == nil {
		return
	}

	channel := res.Channel
	if channel == "" {
		channel = d.config.Channel
	}
	d.PostToChannel(ctx, channel, res.Content)
}

// PostToChannel posts the given message to the given channel.
// This is a no-op until the session starts.
func (d *Dispatcher) PostToChannel(ctx context.Context, channel string, message string) {
	if !d.state.Ready() {
		logger.Debugf("Skip posting to %s: %s", channel, ErrNotReady)
		return
	}

	err := d.adapter.PostMessageToChannel(ctx, channel, message)
	if err != nil {
		logger.Errorf("Failed to post message to channel %s: %+v", channel, err)
	}
}

// PostToUser sends the given message to the given user as a direct message.
// This is a no-op until the session starts.
func (d *Dispatcher) PostToUser(ctx context.Context, username string, message string) {
	err := d.postToUser(ctx, username, message)
	if errors.Is(err, ErrNotReady) {
		logger.Debugf("Skip posting to %s: %s", username, err)
	} else if err != nil {
		logger.Errorf("Failed to post message to user %s: %+v", username, err)
	}
}

func (d *Dispatcher) postToUser(ctx context.Context, username string, message string) error {
	if !d.state.Ready() {
		return ErrNotReady
	}

	return d.adapter.PostMessageToUser(ctx, username, message)
}

// GetUserByID resolves the given user identifier.
// nil is returned when the session is not started, the user is not found, or the lookup fails.
func (d *Dispatcher) GetUserByID(ctx context.Context, id string) *User {
	if !d.state.Ready() {
		return nil
	}

	user, err := d.adapter.GetUserByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return nil
	} else if err != nil {
		logger.Warnf("Failed to get user %s: %+v", id, err)
		return nil
	}

	return user
}
