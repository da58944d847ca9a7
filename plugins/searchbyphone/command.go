// Package searchbyphone provides a command that looks up a business with its phone number.
package searchbyphone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oklahomer/go-kasumi/logger"
	"github.com/yelphelp/yelphelp"
	"github.com/yelphelp/yelphelp/yelp"
)

const (
	// Identifier is the command keyword.
	Identifier = "searchbyphone"

	// NotFoundMessage is posted when no business is found or the search fails.
	NotFoundMessage = "No restaurant found using that phone number"
)

// BusinessSearcher defines an interface that searches businesses with a phone number.
// *yelp.Client satisfies this.
type BusinessSearcher interface {
	BusinessesByPhone(ctx context.Context, phoneNumber string) (*yelp.SearchResult, error)
}

var _ BusinessSearcher = (*yelp.Client)(nil)

// NewCommand creates a searchbyphone command with the given BusinessSearcher.
// When the search is rejected for an invalid API key, the error is passed to the given Alerter.
// alerter can be nil.
func NewCommand(searcher BusinessSearcher, alerter yelphelp.Alerter) yelphelp.Command {
	return yelphelp.NewCommandBuilder().
		Identifier(Identifier).
		Instruction("SearchByPhone 19055555555").
		Func(func(ctx context.Context, input *yelphelp.Input) (*yelphelp.CommandResponse, error) {
			return search(ctx, searcher, alerter, input)
		}).
		MustBuild()
}

func search(ctx context.Context, searcher BusinessSearcher, alerter yelphelp.Alerter, input *yelphelp.Input) (*yelphelp.CommandResponse, error) {
	phoneNumber, ok := yelphelp.ExtractPhoneNumber(input.Message())
	if !ok {
		return nil, yelphelp.ErrParseMiss
	}

	result, err := searcher.BusinessesByPhone(ctx, phoneNumber)
	if err != nil {
		var apiErr *yelp.APIError
		if alerter != nil && errors.As(err, &apiErr) && apiErr.Unauthorized() {
			if e := alerter.Alert(ctx, fmt.Errorf("search API rejected the request: %w", err)); e != nil {
				logger.Errorf("Failed to send alert: %+v", e)
			}
		}

		return &yelphelp.CommandResponse{Content: NotFoundMessage}, nil
	}

	if len(result.Businesses) == 0 || result.Businesses[0] == nil {
		return &yelphelp.CommandResponse{Content: NotFoundMessage}, nil
	}

	return &yelphelp.CommandResponse{Content: Format(input.Sender, result.Businesses[0])}, nil
}

// Format builds a reply that mentions the sender and describes the given business.
func Format(sender *yelphelp.User, business *yelp.Business) string {
	address := ""
	if location := business.Location; location != nil {
		var parts []string
		for _, part := range []string{location.Address1, location.City} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		address = strings.Join(parts, ", ")
	}

	return fmt.Sprintf("*Hey %s, I think I found what you're looking for:*\n> %s\n> %s\n> %s",
		sender.Mention(), business.Name, address, business.Phone)
}
