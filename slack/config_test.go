package slack

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"gopkg.in/yaml.v2"
)

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	if config == nil {
		t.Fatal("config struct is not returned.")
	}

	if config.BotToken != "" {
		t.Errorf("bot token must be empty at this point, but was %s.", config.BotToken)
	}

	if config.AppToken != "" {
		t.Errorf("app token must be empty at this point, but was %s.", config.AppToken)
	}

	if config.RetryPolicy == nil || config.RetryPolicy.Trial == 0 {
		t.Errorf("default retry policy is not set: %#v.", config.RetryPolicy)
	}

	if config.Cache == nil {
		t.Error("default cache setting is not set.")
	}
}

func TestConfigUnmarshalYaml(t *testing.T) {
	config := NewConfig()

	botToken := "xoxb-myToken"
	appToken := "xapp-myToken"
	yamlBytes := []byte(fmt.Sprintf("bot_token: %s\napp_token: %s\ncache:\n  expires_in: 5m", botToken, appToken))

	if err := yaml.Unmarshal(yamlBytes, config); err != nil {
		t.Fatalf("error on parsing given YAML structure: %s. %s.", string(yamlBytes), err.Error())
	}

	if config.BotToken != botToken {
		t.Errorf("given bot token was not set: %s.", config.BotToken)
	}

	if config.AppToken != appToken {
		t.Errorf("given app token was not set: %s.", config.AppToken)
	}

	if config.Cache.ExpiresIn != 5*time.Minute {
		t.Errorf("cache expiration is not updated with given value: %s.", config.Cache.ExpiresIn)
	}

	if config.RetryPolicy == nil {
		t.Error("default retry policy must be kept when not given.")
	}
}

func TestConfigUnmarshalJson(t *testing.T) {
	config := NewConfig()

	botToken := "xoxb-myToken"
	appToken := "xapp-myToken"
	jsonBytes := []byte(fmt.Sprintf(`{"bot_token": "%s", "app_token": "%s", "debug": true}`, botToken, appToken))

	if err := json.Unmarshal(jsonBytes, config); err != nil {
		t.Fatalf("error on parsing given JSON structure: %s. %s.", string(jsonBytes), err.Error())
	}

	if config.BotToken != botToken {
		t.Errorf("given bot token was not set: %s.", config.BotToken)
	}

	if config.AppToken != appToken {
		t.Errorf("given app token was not set: %s.", config.AppToken)
	}

	if !config.Debug {
		t.Error("debug flag is not updated with given value.")
	}
}
