package yelphelp

import (
	"github.com/oklahomer/go-kasumi/worker"
)

// Config is a serializable struct that contains some configuration variables.
type Config struct {
	// Channel is the name of the channel that every reply is posted to.
	Channel string `json:"channel" yaml:"channel" env:"YELPHELP_CHANNEL"`

	// HelpCommand is the keyword that lists registered commands' instructions.
	// Empty string disables the help command.
	HelpCommand string `json:"help_command" yaml:"help_command" env:"YELPHELP_HELP_COMMAND"`

	// AdminUser is the username of the operator that receives alerts as a direct message.
	// Empty string disables this alerting.
	AdminUser string `json:"admin_user" yaml:"admin_user" env:"YELPHELP_ADMIN_USER"`

	// Worker is the setting of the worker pool that handles each message.
	Worker *worker.Config `json:"worker" yaml:"worker"`
}

// NewConfig creates and returns a new Config instance with default settings.
// Use json.Unmarshal, yaml.Unmarshal, or manual manipulation to override those default values.
func NewConfig() *Config {
	workerConfig := worker.NewConfig()

	// Bot interaction involves IO-intensive jobs such as calling the search API on behalf of the user.
	// Messages are dropped when the queue is full since users do not expect belated responses.
	workerConfig.WorkerNum = 100
	workerConfig.QueueSize = 10

	return &Config{
		Channel:     "general",
		HelpCommand: "help",
		AdminUser:   "",
		Worker:      workerConfig,
	}
}
