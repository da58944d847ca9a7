package yelphelp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/oklahomer/go-kasumi/logger"
)

var (
	// ErrCommandInsufficientArgument depicts an error that not enough arguments are set to CommandBuilder.
	// This is returned on CommandBuilder.Build.
	ErrCommandInsufficientArgument = errors.New("Identifier and Func must be set")
)

// CommandResponse is returned by Command when the execution is finished.
type CommandResponse struct {
	// Channel is the name of the channel to post Content.
	// Dispatcher's default channel is used when this is empty.
	Channel string

	// Content is the message text to be posted.
	Content string
}

// Input is passed to Command.Execute and contains everything known about the incoming message.
type Input struct {
	// Command is the lower-cased command keyword.
	Command string

	// Event is the message that triggered the execution.
	Event *MessageEvent

	// Sender is the resolved user that sent the message.
	Sender *User
}

// Message returns the raw message text.
func (i *Input) Message() string {
	return i.Event.Text
}

// Command defines interface that all command MUST satisfy.
type Command interface {
	// Identifier returns the command keyword.
	// Identifiers are compared in a case-insensitive manner.
	Identifier() string

	// Execute receives input from user and returns response.
	Execute(context.Context, *Input) (*CommandResponse, error)

	// Instruction returns example of user input. This is listed on help command.
	// An empty string hides the command from the listing.
	Instruction() string
}

type commandFunc func(context.Context, *Input) (*CommandResponse, error)

type defaultCommand struct {
	identifier  string
	instruction string
	commandFunc commandFunc
}

var _ Command = (*defaultCommand)(nil)

func (command *defaultCommand) Identifier() string {
	return command.identifier
}

func (command *defaultCommand) Instruction() string {
	return command.instruction
}

func (command *defaultCommand) Execute(ctx context.Context, input *Input) (*CommandResponse, error) {
	return command.commandFunc(ctx, input)
}

// NotImplemented is a command function for reserved command names that have no behavior yet.
// This always returns ErrNotImplemented so the caller can tell "not built yet" from "ran and found nothing."
func NotImplemented(_ context.Context, input *Input) (*CommandResponse, error) {
	return nil, fmt.Errorf("%s: %w", input.Command, ErrNotImplemented)
}

// Commands stashes all registered Command.
type Commands struct {
	collection []Command
	mutex      sync.RWMutex
}

// NewCommands creates and returns new Commands instance.
func NewCommands() *Commands {
	return &Commands{
		collection: []Command{},
		mutex:      sync.RWMutex{},
	}
}

// Append let developers register new Command to its internal stash.
// If any command is registered with the same ID, the old one is replaced in favor of new one.
func (commands *Commands) Append(command Command) {
	commands.mutex.Lock()
	defer commands.mutex.Unlock()

	// See if command with the same identifier exists.
	for i, cmd := range commands.collection {
		if strings.EqualFold(cmd.Identifier(), command.Identifier()) {
			logger.Infof("replacing old command in favor of newly appending one: %s.", command.Identifier())
			commands.collection[i] = command
			return
		}
	}

	// Not stored, then append to the last.
	logger.Infof("appending new command: %s.", command.Identifier())
	commands.collection = append(commands.collection, command)
}

// Find returns the Command registered with the given keyword.
// nil is returned when no Command corresponds.
func (commands *Commands) Find(keyword string) Command {
	commands.mutex.RLock()
	defer commands.mutex.RUnlock()

	for _, command := range commands.collection {
		if strings.EqualFold(command.Identifier(), keyword) {
			return command
		}
	}

	return nil
}

// Helps returns underlying commands help messages in a form of *CommandHelps.
func (commands *Commands) Helps() *CommandHelps {
	commands.mutex.RLock()
	defer commands.mutex.RUnlock()

	helps := &CommandHelps{}
	for _, command := range commands.collection {
		instruction := command.Instruction()
		if instruction == "" {
			continue
		}

		h := &CommandHelp{
			Identifier:  command.Identifier(),
			Instruction: instruction,
		}
		*helps = append(*helps, h)
	}
	return helps
}

// CommandHelps is an alias to slice of CommandHelps' pointers.
type CommandHelps []*CommandHelp

// String returns the help message to be posted.
func (helps *CommandHelps) String() string {
	lines := []string{"*Here are some input instructions:*"}
	for _, h := range *helps {
		lines = append(lines, fmt.Sprintf("> *%s*: `%s`", h.Identifier, h.Instruction))
	}
	return strings.Join(lines, "\n")
}

// CommandHelp represents help messages for corresponding Command.
type CommandHelp struct {
	Identifier  string
	Instruction string
}

// NewCommandBuilder returns new CommandBuilder instance.
func NewCommandBuilder() *CommandBuilder {
	return &CommandBuilder{}
}

// CommandBuilder helps to construct Command.
// Developer may set desired property as she goes and call CommandBuilder.Build or CommandBuilder.MustBuild to construct Command at the end.
type CommandBuilder struct {
	identifier  string
	instruction string
	commandFunc commandFunc
}

// Identifier is a setter for Command identifier, which also is the command keyword.
func (builder *CommandBuilder) Identifier(id string) *CommandBuilder {
	builder.identifier = id
	return builder
}

// Instruction is a setter to provide an instruction of command execution.
// This should be used to provide command usage for end users.
func (builder *CommandBuilder) Instruction(instruction string) *CommandBuilder {
	builder.instruction = instruction
	return builder
}

// Func is a setter to provide command function.
// Pass NotImplemented for a reserved command name.
func (builder *CommandBuilder) Func(fn func(context.Context, *Input) (*CommandResponse, error)) *CommandBuilder {
	builder.commandFunc = fn
	return builder
}

// Build builds new Command instance with provided values.
func (builder *CommandBuilder) Build() (Command, error) {
	if builder.identifier == "" || builder.commandFunc == nil {
		return nil, ErrCommandInsufficientArgument
	}

	return &defaultCommand{
		identifier:  strings.ToLower(builder.identifier),
		instruction: builder.instruction,
		commandFunc: builder.commandFunc,
	}, nil
}

// MustBuild is like Build but panics if any error occurs on Build.
// It simplifies safe initialization of global variables holding built Command instances.
func (builder *CommandBuilder) MustBuild() Command {
	command, err := builder.Build()
	if err != nil {
		panic(fmt.Errorf("error on building Command: %w", err))
	}

	return command
}
