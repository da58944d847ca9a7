/*
Package main runs yelphelp, a Slack bot that answers business search requests with Yelp Fusion API.

	./yelphelp -config=/path/to/config/app.yml

Secrets are read from environment variables or a .env file:

	SLACK_TOKEN=xoxb-XXXX
	SLACK_APP_TOKEN=xapp-XXXX
	YELP_API_KEY=XXXX
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklahomer/go-kasumi/logger"
	"github.com/yelphelp/yelphelp"
	"github.com/yelphelp/yelphelp/plugins/reserved"
	"github.com/yelphelp/yelphelp/plugins/searchbyphone"
	"github.com/yelphelp/yelphelp/slack"
	"github.com/yelphelp/yelphelp/yelp"
)

func main() {
	var path = flag.String("config", "", "path to application configuration file.")
	flag.Parse()

	cfg, err := readConfig(*path)
	if err != nil {
		logger.Errorf("Failed to read configuration: %+v", err)
		os.Exit(1)
	}

	dispatcher, err := setupDispatcher(cfg)
	if err != nil {
		logger.Errorf("Failed to set up: %+v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.StatusAddr != "" {
		go runStatusServer(ctx, cfg.StatusAddr, dispatcher.State())
	}

	// Blocks til the context is canceled or the connection is hopelessly lost.
	err = dispatcher.Run(ctx)
	if err != nil {
		logger.Errorf("Bot stopped: %+v", err)
		stop()
		os.Exit(1)
	}
	logger.Info("Stopped due to signal reception.")
}

func setupDispatcher(cfg *config) (*yelphelp.Dispatcher, error) {
	adapter, err := slack.NewAdapter(cfg.Slack)
	if err != nil {
		return nil, err
	}

	dispatcher := yelphelp.NewDispatcher(cfg.Dispatcher, adapter)

	client := yelp.NewClient(cfg.Yelp)
	dispatcher.AppendCommand(searchbyphone.NewCommand(client, dispatcher))
	for _, command := range reserved.Commands(client) {
		dispatcher.AppendCommand(command)
	}

	return dispatcher, nil
}
