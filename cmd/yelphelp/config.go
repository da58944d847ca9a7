package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/yelphelp/yelphelp"
	"github.com/yelphelp/yelphelp/slack"
	"github.com/yelphelp/yelphelp/yelp"
	"gopkg.in/yaml.v2"
)

type config struct {
	Dispatcher *yelphelp.Config `json:"dispatcher" yaml:"dispatcher"`
	Slack      *slack.Config    `json:"slack" yaml:"slack"`
	Yelp       *yelp.Config     `json:"yelp" yaml:"yelp"`
	StatusAddr string           `json:"status_addr" yaml:"status_addr" env:"YELPHELP_STATUS_ADDR"`
}

// readConfig builds the configuration in the order of default values, the given YAML file, .env file, and environment variables.
// The file path can be empty.
func readConfig(path string, dotEnvFiles ...string) (*config, error) {
	// Populate with default configuration value by calling each constructor.
	c := &config{
		Dispatcher: yelphelp.NewConfig(),
		Slack:      slack.NewConfig(),
		Yelp:       yelp.NewConfig(),
	}

	if path != "" {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}

		err = yaml.Unmarshal(body, c)
		if err != nil {
			return nil, fmt.Errorf("failed to read yaml: %w", err)
		}
	}

	// Variables already set in the process environment take precedence over .env.
	err := godotenv.Load(dotEnvFiles...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	for _, target := range []interface{}{c, c.Dispatcher, c.Slack, c.Yelp} {
		if err := env.Parse(target); err != nil {
			return nil, fmt.Errorf("failed to read environment variables: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *config) validate() error {
	switch {
	case c.Slack.BotToken == "":
		return errors.New("SLACK_TOKEN must be set")

	case c.Slack.AppToken == "":
		return errors.New("SLACK_APP_TOKEN must be set")

	case c.Yelp.APIKey == "":
		return errors.New("YELP_API_KEY must be set")

	default:
		return nil

	}
}
