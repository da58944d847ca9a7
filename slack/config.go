package slack

import (
	"time"

	"github.com/oklahomer/go-kasumi/retry"
	"github.com/yelphelp/yelphelp"
)

// Config contains some configuration variables for Slack Adapter.
type Config struct {
	BotToken    string                `json:"bot_token" yaml:"bot_token" env:"SLACK_TOKEN"`
	AppToken    string                `json:"app_token" yaml:"app_token" env:"SLACK_APP_TOKEN"`
	RetryPolicy *retry.Policy         `json:"retry_policy" yaml:"retry_policy"`
	Cache       *yelphelp.CacheConfig `json:"cache" yaml:"cache"`
	Debug       bool                  `json:"debug" yaml:"debug"`
}

// NewConfig returns initialized Config struct with default settings.
// Tokens are empty at this point. Those can be set by feeding this instance to json.Unmarshal/yaml.Unmarshal,
// by reading environment variables, or by direct assignment.
func NewConfig() *Config {
	return &Config{
		BotToken: "",
		AppToken: "",
		RetryPolicy: &retry.Policy{
			Trial:    10,
			Interval: 500 * time.Millisecond,
		},
		Cache: yelphelp.NewCacheConfig(),
		Debug: false,
	}
}
